package attendance

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

func (s *Service) Upsert(ctx context.Context, rec Record) (Record, error) {
	return s.Store.Upsert(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, workerID string, date time.Time) error {
	return s.Store.Delete(ctx, workerID, date)
}

func (s *Service) ListRange(ctx context.Context, workerID string, from, to time.Time) ([]Record, error) {
	return s.Store.ListRange(ctx, workerID, from, to)
}

func (s *Service) SummaryForDate(ctx context.Context, date time.Time) (DailySummary, error) {
	return s.Store.SummaryForDate(ctx, date)
}

// MonthWindow returns the first and last day of the month as date-only values.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
