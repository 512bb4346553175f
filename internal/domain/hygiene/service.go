package hygiene

import (
	"context"
	"time"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Create(ctx context.Context, test LabTest) (LabTest, error) {
	if test.Result == "" {
		test.Result = ResultPending
	}
	return s.Store.Create(ctx, test)
}

func (s *Service) Update(ctx context.Context, id string, test LabTest) (LabTest, error) {
	return s.Store.Update(ctx, id, test)
}

func (s *Service) Get(ctx context.Context, id string) (*LabTest, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, result string, limit, offset int) ([]LabTest, error) {
	return s.Store.List(ctx, result, limit, offset)
}

func (s *Service) ExpiringWithin(ctx context.Context, now time.Time, days int) ([]LabTest, error) {
	return s.Store.ExpiringBefore(ctx, now.AddDate(0, 0, days))
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
