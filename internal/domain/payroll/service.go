package payroll

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

type Service struct {
	Workers    *worker.Store
	Attendance *attendance.Store
}

func NewService(workers *worker.Store, att *attendance.Store) *Service {
	return &Service{Workers: workers, Attendance: att}
}

// MonthlySalary loads the worker and the month's attendance and runs the
// calculator over them.
func (s *Service) MonthlySalary(ctx context.Context, workerID string, year int, month time.Month, opts Options) (*WorkerSalary, error) {
	w, err := s.Workers.Get(ctx, workerID)
	if err != nil {
		return nil, err
	}

	from, to := attendance.MonthWindow(year, month)
	records, err := s.Attendance.ListRange(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	result, err := CalculateMonthlySalary(*w, records, year, month, opts)
	if err != nil {
		return nil, err
	}
	return &WorkerSalary{WorkerID: w.ID, Name: w.Name, Gender: w.Gender, Result: result}, nil
}

// MonthlySheet computes the salary of every active worker for the month.
// Workers whose gender maps to no pay policy are skipped with a warning so
// one bad row cannot sink the whole sheet.
func (s *Service) MonthlySheet(ctx context.Context, year int, month time.Month, opts Options) ([]WorkerSalary, error) {
	workers, err := s.Workers.List(ctx, false)
	if err != nil {
		return nil, err
	}

	from, to := attendance.MonthWindow(year, month)
	records, err := s.Attendance.ListRange(ctx, "", from, to)
	if err != nil {
		return nil, err
	}

	sheet := make([]WorkerSalary, 0, len(workers))
	for _, w := range workers {
		result, err := CalculateMonthlySalary(w, records, year, month, opts)
		if err != nil {
			if errors.Is(err, ErrUnknownPayPolicy) {
				slog.Warn("skipping worker without pay policy", "workerId", w.ID, "gender", w.Gender)
				continue
			}
			return nil, err
		}
		sheet = append(sheet, WorkerSalary{WorkerID: w.ID, Name: w.Name, Gender: w.Gender, Result: result})
	}
	return sheet, nil
}

// MonthlyTotal sums the month's total salary across active workers, for the
// dashboard.
func (s *Service) MonthlyTotal(ctx context.Context, year int, month time.Month, opts Options) (float64, error) {
	sheet, err := s.MonthlySheet(ctx, year, month, opts)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, row := range sheet {
		total += row.TotalSalary
	}
	return round2(total), nil
}
