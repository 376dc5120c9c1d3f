package book

import (
	"context"

	"github.com/bookclub/bookclub-api/internal/service"
)

// Service is the books domain. It forwards every call to its store and maps
// repository errors into the two-tier service taxonomy.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Book, error) {
	b, err := s.store.Insert(ctx, req)
	return b, service.FromRepository(err)
}

func (s *Service) Get(ctx context.Context, rawID string) (Book, error) {
	b, err := s.store.Get(ctx, rawID)
	return b, service.FromRepository(err)
}

func (s *Service) Update(ctx context.Context, rawID string, req UpdateRequest) (Book, error) {
	b, err := s.store.Update(ctx, rawID, req)
	return b, service.FromRepository(err)
}

func (s *Service) List(ctx context.Context, sorted bool) ([]Book, error) {
	books, err := s.store.List(ctx, sorted)
	return books, service.FromRepository(err)
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	return service.FromRepository(s.store.Delete(ctx, rawID))
}

func (s *Service) Vote(ctx context.Context, rawID, supporter string) (Book, error) {
	b, err := s.store.Vote(ctx, rawID, supporter)
	return b, service.FromRepository(err)
}
