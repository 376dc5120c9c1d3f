package book

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bookclub/bookclub-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used for unit tests and as a fallback
// when no MongoDB is configured. It honors the same observable contract as
// Repository: identifier validation, not-found reporting, set-deduplicated
// votes and idempotent deletes.
type MemoryStore struct {
	mu    sync.RWMutex
	books map[string]Book
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{books: make(map[string]Book)}
}

func (m *MemoryStore) Insert(_ context.Context, req CreateRequest) (Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	supporters := append([]string{}, req.Supporters...)
	b := Book{
		ID:             primitive.NewObjectID().Hex(),
		Title:          req.Title,
		Author:         req.Author,
		Description:    req.Description,
		PageCount:      req.PageCount,
		PitchBy:        req.PitchBy,
		FirstSuggested: time.Now().UTC().Truncate(time.Millisecond),
		Supporters:     supporters,
	}
	m.books[b.ID] = b
	return copyBook(b), nil
}

func (m *MemoryStore) Get(_ context.Context, rawID string) (Book, error) {
	if _, err := repository.ParseID("book", rawID); err != nil {
		return Book{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.books[rawID]
	if !ok {
		return Book{}, &repository.Error{Kind: repository.KindNotFound, Entity: "book"}
	}
	return copyBook(b), nil
}

func (m *MemoryStore) Update(_ context.Context, rawID string, req UpdateRequest) (Book, error) {
	if _, err := repository.ParseID("book", rawID); err != nil {
		return Book{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[rawID]
	if !ok {
		return Book{}, &repository.Error{Kind: repository.KindNotFound, Entity: "book"}
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.PageCount != nil {
		b.PageCount = *req.PageCount
	}
	if req.PitchBy != nil {
		b.PitchBy = *req.PitchBy
	}
	if req.Supporters != nil {
		b.Supporters = append([]string{}, (*req.Supporters)...)
	}
	m.books[rawID] = b
	return copyBook(b), nil
}

func (m *MemoryStore) List(_ context.Context, sorted bool) ([]Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Book, 0, len(m.books))
	for _, b := range m.books {
		out = append(out, copyBook(b))
	}
	if sorted {
		sort.Slice(out, func(i, j int) bool {
			if len(out[i].Supporters) != len(out[j].Supporters) {
				return len(out[i].Supporters) > len(out[j].Supporters)
			}
			return out[i].FirstSuggested.Before(out[j].FirstSuggested)
		})
	}
	return out, nil
}

func (m *MemoryStore) Delete(_ context.Context, rawID string) error {
	if _, err := repository.ParseID("book", rawID); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.books, rawID)
	return nil
}

func (m *MemoryStore) Vote(_ context.Context, rawID, supporter string) (Book, error) {
	if _, err := repository.ParseID("book", rawID); err != nil {
		return Book{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.books[rawID]
	if !ok {
		return Book{}, &repository.Error{Kind: repository.KindNotFound, Entity: "book"}
	}
	if !contains(b.Supporters, supporter) {
		b.Supporters = append(append([]string{}, b.Supporters...), supporter)
		m.books[rawID] = b
	}
	return copyBook(b), nil
}

func copyBook(b Book) Book {
	b.Supporters = append([]string{}, b.Supporters...)
	return b
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
