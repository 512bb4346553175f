package reports

import (
	"context"

	"github.com/apurva4122/barcoding-sub001/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) ActiveWorkerCount(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM workers WHERE active").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) PendingLabTests(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM lab_tests WHERE result = 'pending'").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) FailedLabTests(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM lab_tests WHERE result = 'fail'").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
