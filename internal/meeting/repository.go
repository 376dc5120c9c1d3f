package meeting

import (
	"context"
	"time"

	"github.com/bookclub/bookclub-api/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store defines the persistence operations the meeting service needs.
type Store interface {
	Insert(ctx context.Context, req CreateRequest) (Meeting, error)
	Get(ctx context.Context, rawID string) (Meeting, error)
	Update(ctx context.Context, rawID string, req UpdateRequest) (Meeting, error)
	List(ctx context.Context) ([]Meeting, error)
	Delete(ctx context.Context, rawID string) error
}

// Repository is the MongoDB-backed meeting store.
type Repository struct {
	core *repository.Mongo[meetingDocument, Meeting]
}

func NewRepository(col *mongo.Collection) *Repository {
	return &Repository{core: repository.NewMongo[meetingDocument, Meeting]("meeting", col)}
}

// Insert stores a new meeting, stamping firstSuggested from the server clock,
// and returns it with the store-assigned identifier.
func (r *Repository) Insert(ctx context.Context, req CreateRequest) (Meeting, error) {
	record := newRecord(req)
	id, err := r.core.Insert(ctx, record)
	if err != nil {
		return Meeting{}, err
	}
	return Meeting{
		ID:             id,
		Date:           record.Date,
		Location:       record.Location,
		Title:          record.Title,
		Author:         record.Author,
		Description:    record.Description,
		PitchedBy:      record.PitchedBy,
		FirstSuggested: record.FirstSuggested,
		Supporters:     record.Supporters,
	}, nil
}

func (r *Repository) Get(ctx context.Context, rawID string) (Meeting, error) {
	return r.core.Get(ctx, rawID)
}

// Update applies a partial update atomically and returns the new meeting.
func (r *Repository) Update(ctx context.Context, rawID string, req UpdateRequest) (Meeting, error) {
	return r.core.Update(ctx, rawID, buildUpdate(req))
}

func (r *Repository) List(ctx context.Context) ([]Meeting, error) {
	return r.core.List(ctx, nil)
}

func (r *Repository) Delete(ctx context.Context, rawID string) error {
	return r.core.Delete(ctx, rawID)
}

func newRecord(req CreateRequest) meetingRecord {
	supporters := req.Supporters
	if supporters == nil {
		supporters = []string{}
	}
	return meetingRecord{
		Date:           req.Date,
		Location:       req.Location,
		Title:          req.Title,
		Author:         req.Author,
		Description:    req.Description,
		PitchedBy:      req.PitchedBy,
		FirstSuggested: time.Now().UTC().Truncate(time.Millisecond),
		Supporters:     supporters,
	}
}

// buildUpdate turns a partial update into the ordered field-set sequence,
// renaming request attributes to their stored names.
func buildUpdate(req UpdateRequest) []repository.Op {
	var ops []repository.Op
	if req.Date != nil {
		ops = append(ops, repository.Set("date", *req.Date))
	}
	if req.Location != nil {
		ops = append(ops, repository.Set("location", *req.Location))
	}
	if req.Title != nil {
		ops = append(ops, repository.Set("title", *req.Title))
	}
	if req.Author != nil {
		ops = append(ops, repository.Set("author", *req.Author))
	}
	if req.Description != nil {
		ops = append(ops, repository.Set("description", *req.Description))
	}
	if req.PitchedBy != nil {
		ops = append(ops, repository.Set("pitchedBy", *req.PitchedBy))
	}
	if req.Supporters != nil {
		ops = append(ops, repository.Set("supporters", *req.Supporters))
	}
	return ops
}
