package reports

import (
	"context"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/hygiene"
	"github.com/apurva4122/barcoding-sub001/internal/domain/payroll"
	"github.com/apurva4122/barcoding-sub001/internal/domain/tracking"
)

// DashboardSummary is the home-screen snapshot: headcount, today's
// attendance, package pipeline, hygiene state and month-to-date payroll.
type DashboardSummary struct {
	ActiveWorkers     int                     `json:"activeWorkers"`
	TodayAttendance   attendance.DailySummary `json:"todayAttendance"`
	PackagesByStatus  map[string]int          `json:"packagesByStatus"`
	PendingLabTests   int                     `json:"pendingLabTests"`
	FailedLabTests    int                     `json:"failedLabTests"`
	ExpiringLabTests  []hygiene.LabTest       `json:"expiringLabTests"`
	MonthPayrollTotal float64                 `json:"monthPayrollTotal"`
}

type Service struct {
	Store      *Store
	Attendance *attendance.Store
	Packages   *tracking.Store
	LabTests   *hygiene.Store
	Payroll    *payroll.Service
}

func NewService(store *Store, att *attendance.Store, packages *tracking.Store, labTests *hygiene.Store, pay *payroll.Service) *Service {
	return &Service{Store: store, Attendance: att, Packages: packages, LabTests: labTests, Payroll: pay}
}

const expiryHorizonDays = 30

func (s *Service) Dashboard(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.ActiveWorkers, err = s.Store.ActiveWorkerCount(ctx); err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if summary.TodayAttendance, err = s.Attendance.SummaryForDate(ctx, today); err != nil {
		return nil, err
	}

	if summary.PackagesByStatus, err = s.Packages.CountByStatus(ctx); err != nil {
		return nil, err
	}

	if summary.PendingLabTests, err = s.Store.PendingLabTests(ctx); err != nil {
		return nil, err
	}
	if summary.FailedLabTests, err = s.Store.FailedLabTests(ctx); err != nil {
		return nil, err
	}
	if summary.ExpiringLabTests, err = s.LabTests.ExpiringBefore(ctx, today.AddDate(0, 0, expiryHorizonDays)); err != nil {
		return nil, err
	}

	total, err := s.Payroll.MonthlyTotal(ctx, now.Year(), now.Month(), payroll.DefaultOptions(now))
	if err != nil {
		return nil, err
	}
	summary.MonthPayrollTotal = total

	return summary, nil
}
