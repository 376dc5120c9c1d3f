package meeting

import (
	"context"

	"github.com/bookclub/bookclub-api/internal/service"
)

// Service is the meetings domain. It forwards every call to its store and
// maps repository errors into the two-tier service taxonomy.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Meeting, error) {
	mt, err := s.store.Insert(ctx, req)
	return mt, service.FromRepository(err)
}

func (s *Service) Get(ctx context.Context, rawID string) (Meeting, error) {
	mt, err := s.store.Get(ctx, rawID)
	return mt, service.FromRepository(err)
}

func (s *Service) Update(ctx context.Context, rawID string, req UpdateRequest) (Meeting, error) {
	mt, err := s.store.Update(ctx, rawID, req)
	return mt, service.FromRepository(err)
}

func (s *Service) List(ctx context.Context) ([]Meeting, error) {
	meetings, err := s.store.List(ctx)
	return meetings, service.FromRepository(err)
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	return service.FromRepository(s.store.Delete(ctx, rawID))
}
