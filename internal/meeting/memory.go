package meeting

import (
	"context"
	"sync"
	"time"

	"github.com/bookclub/bookclub-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used for unit tests and as a fallback
// when no MongoDB is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	meetings map[string]Meeting
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{meetings: make(map[string]Meeting)}
}

func (m *MemoryStore) Insert(_ context.Context, req CreateRequest) (Meeting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := Meeting{
		ID:             primitive.NewObjectID().Hex(),
		Date:           req.Date,
		Location:       req.Location,
		Title:          req.Title,
		Author:         req.Author,
		Description:    req.Description,
		PitchedBy:      req.PitchedBy,
		FirstSuggested: time.Now().UTC().Truncate(time.Millisecond),
		Supporters:     append([]string{}, req.Supporters...),
	}
	m.meetings[mt.ID] = mt
	return copyMeeting(mt), nil
}

func (m *MemoryStore) Get(_ context.Context, rawID string) (Meeting, error) {
	if _, err := repository.ParseID("meeting", rawID); err != nil {
		return Meeting{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	mt, ok := m.meetings[rawID]
	if !ok {
		return Meeting{}, &repository.Error{Kind: repository.KindNotFound, Entity: "meeting"}
	}
	return copyMeeting(mt), nil
}

func (m *MemoryStore) Update(_ context.Context, rawID string, req UpdateRequest) (Meeting, error) {
	if _, err := repository.ParseID("meeting", rawID); err != nil {
		return Meeting{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	mt, ok := m.meetings[rawID]
	if !ok {
		return Meeting{}, &repository.Error{Kind: repository.KindNotFound, Entity: "meeting"}
	}
	if req.Date != nil {
		mt.Date = req.Date
	}
	if req.Location != nil {
		mt.Location = req.Location
	}
	if req.Title != nil {
		mt.Title = *req.Title
	}
	if req.Author != nil {
		mt.Author = *req.Author
	}
	if req.Description != nil {
		mt.Description = *req.Description
	}
	if req.PitchedBy != nil {
		mt.PitchedBy = *req.PitchedBy
	}
	if req.Supporters != nil {
		mt.Supporters = append([]string{}, (*req.Supporters)...)
	}
	m.meetings[rawID] = mt
	return copyMeeting(mt), nil
}

func (m *MemoryStore) List(_ context.Context) ([]Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Meeting, 0, len(m.meetings))
	for _, mt := range m.meetings {
		out = append(out, copyMeeting(mt))
	}
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, rawID string) error {
	if _, err := repository.ParseID("meeting", rawID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.meetings, rawID)
	return nil
}

func copyMeeting(mt Meeting) Meeting {
	mt.Supporters = append([]string{}, mt.Supporters...)
	return mt
}
