package book

import (
	"context"
	"time"

	"github.com/bookclub/bookclub-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store defines the persistence operations the book service needs.
type Store interface {
	Insert(ctx context.Context, req CreateRequest) (Book, error)
	Get(ctx context.Context, rawID string) (Book, error)
	Update(ctx context.Context, rawID string, req UpdateRequest) (Book, error)
	List(ctx context.Context, sorted bool) ([]Book, error)
	Delete(ctx context.Context, rawID string) error
	Vote(ctx context.Context, rawID, supporter string) (Book, error)
}

// popularitySort orders by supporter count, ties broken by the oldest
// suggestion. Matches the compound index deployed at startup.
var popularitySort = bson.D{{Key: "supporterCount", Value: -1}, {Key: "firstSuggested", Value: 1}}

// Repository is the MongoDB-backed book store.
type Repository struct {
	core *repository.Mongo[bookDocument, Book]
}

func NewRepository(col *mongo.Collection) *Repository {
	return &Repository{core: repository.NewMongo[bookDocument, Book]("book", col)}
}

// Insert stores a new book, stamping firstSuggested from the server clock,
// and returns it with the store-assigned identifier.
func (r *Repository) Insert(ctx context.Context, req CreateRequest) (Book, error) {
	record := newRecord(req)
	id, err := r.core.Insert(ctx, record)
	if err != nil {
		return Book{}, err
	}
	return Book{
		ID:             id,
		Title:          record.Title,
		Author:         record.Author,
		Description:    record.Description,
		PageCount:      record.PageCount,
		PitchBy:        record.PitchBy,
		FirstSuggested: record.FirstSuggested,
		Supporters:     record.Supporters,
	}, nil
}

func (r *Repository) Get(ctx context.Context, rawID string) (Book, error) {
	return r.core.Get(ctx, rawID)
}

// Update applies a partial update atomically and returns the new book.
func (r *Repository) Update(ctx context.Context, rawID string, req UpdateRequest) (Book, error) {
	return r.core.Update(ctx, rawID, buildUpdate(req))
}

func (r *Repository) List(ctx context.Context, sorted bool) ([]Book, error) {
	if sorted {
		return r.core.List(ctx, popularitySort)
	}
	return r.core.List(ctx, nil)
}

func (r *Repository) Delete(ctx context.Context, rawID string) error {
	return r.core.Delete(ctx, rawID)
}

// Vote adds supporter to the book's supporter set. The set union and the
// supporterCount recomputation happen in one atomic find-and-modify, so a
// repeated vote changes nothing and concurrent votes cannot drop entries.
func (r *Repository) Vote(ctx context.Context, rawID, supporter string) (Book, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{{Key: "supporters", Value: bson.D{
			{Key: "$setUnion", Value: bson.A{"$supporters", bson.A{supporter}}},
		}}}}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "supporterCount", Value: bson.D{
			{Key: "$size", Value: "$supporters"},
		}}}}},
	}
	return r.core.Modify(ctx, rawID, update)
}

func newRecord(req CreateRequest) bookRecord {
	supporters := req.Supporters
	if supporters == nil {
		supporters = []string{}
	}
	return bookRecord{
		Title:          req.Title,
		Author:         req.Author,
		Description:    req.Description,
		PageCount:      req.PageCount,
		PitchBy:        req.PitchBy,
		FirstSuggested: time.Now().UTC().Truncate(time.Millisecond),
		Supporters:     supporters,
		SupporterCount: len(supporters),
	}
}

// buildUpdate turns a partial update into the ordered field-set sequence,
// renaming request attributes to their stored names. A supporters replacement
// also refreshes the derived supporterCount.
func buildUpdate(req UpdateRequest) []repository.Op {
	var ops []repository.Op
	if req.Title != nil {
		ops = append(ops, repository.Set("title", *req.Title))
	}
	if req.Author != nil {
		ops = append(ops, repository.Set("author", *req.Author))
	}
	if req.Description != nil {
		ops = append(ops, repository.Set("description", *req.Description))
	}
	if req.PageCount != nil {
		ops = append(ops, repository.Set("pageCount", *req.PageCount))
	}
	if req.PitchBy != nil {
		ops = append(ops, repository.Set("pitchBy", *req.PitchBy))
	}
	if req.Supporters != nil {
		ops = append(ops, repository.Set("supporters", *req.Supporters))
		ops = append(ops, repository.Set("supporterCount", len(*req.Supporters)))
	}
	return ops
}
