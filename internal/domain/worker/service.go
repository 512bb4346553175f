package worker

import "context"

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, w Worker) (string, error) {
	return s.Store.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, id string, w Worker) error {
	return s.Store.Update(ctx, id, w)
}

func (s *Service) Get(ctx context.Context, id string) (*Worker, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]Worker, error) {
	return s.Store.List(ctx, includeInactive)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.Store.Deactivate(ctx, id)
}
