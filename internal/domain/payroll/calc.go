package payroll

import (
	"math"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

// CalculateMonthlySalary computes the salary a worker has accrued for the
// given month. Records need not be pre-filtered: entries for other workers or
// other months are ignored here. The function is pure — it reads the records,
// mutates nothing, and never panics on odd input; anomalies degrade to a zero
// result except an unmapped gender, which is an error.
func CalculateMonthlySalary(w worker.Worker, records []attendance.Record, year int, month time.Month, opts Options) (Result, error) {
	policy, err := PolicyForGender(w.Gender)
	if err != nil {
		return Result{}, err
	}
	if w.BaseSalary == nil || *w.BaseSalary <= 0 {
		return Result{}, nil
	}

	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	lastDay, ok := processedDays(year, month, asOf)
	if !ok {
		// Future month: nothing accrued yet.
		return Result{}, nil
	}

	rates := policy.Rates(*w.BaseSalary, year, month)
	byDay := monthRecords(w.ID, records, year, month)

	var accrued, overtimeHours float64
	var lateMinutes, absentDays, halfDays int

	for d := 1; d <= lastDay; d++ {
		weekday := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
		if !policy.CoversDay(weekday) {
			continue
		}
		eligible := policy.OvertimeEligible(weekday)

		rec, found := byDay[d]
		if !found {
			// No record means the worker showed up: the day sheet only
			// captures exceptions.
			accrued += rates.Daily
			if opts.DefaultOvertime && eligible {
				overtimeHours++
			}
			continue
		}

		switch rec.Status {
		case attendance.StatusAbsent:
			absentDays++
		case attendance.StatusHalfDay:
			accrued += rates.Daily * 0.5
			halfDays++
			if rec.Overtime && eligible {
				overtimeHours++
				if opts.IncludeLateDeduction {
					lateMinutes += rec.LateMinutes
				}
			}
		default:
			// Present; an unrecognized status degrades the same way.
			accrued += rates.Daily
			if rec.Overtime && eligible {
				overtimeHours++
				if opts.IncludeLateDeduction {
					lateMinutes += rec.LateMinutes
				}
			}
		}
	}

	effectiveOvertime := overtimeHours - float64(lateMinutes)/60
	if effectiveOvertime < 0 {
		effectiveOvertime = 0
	}
	overtimePay := effectiveOvertime * rates.Hourly * OvertimeMultiplier

	base := round2(accrued + overtimePay)
	var bonus float64
	if opts.IncludeBonus {
		bonus = AttendanceBonus(absentDays, halfDays, policy.BonusTiers())
	}

	return Result{
		BaseSalary:           base,
		Bonus:                round2(bonus),
		OvertimeCompensation: round2(overtimePay),
		TotalSalary:          round2(base + bonus),
		HasBonus:             bonus > 0,
	}, nil
}

// AttendanceBonus applies the tiered incentive: a clean month pays the full
// tier, exactly one effective absence pays the reduced tier, more pays
// nothing. Two half-days compound into one effective absence; a lone
// half-day costs nothing.
func AttendanceBonus(absentDays, halfDays int, tiers BonusTiers) float64 {
	switch absentDays + halfDays/2 {
	case 0:
		return tiers.Perfect
	case 1:
		return tiers.SingleAbsence
	default:
		return 0
	}
}

// processedDays returns how many leading days of the month count as of the
// given date: the whole month once it has passed, only the elapsed days of
// the current month, and none of a future month.
func processedDays(year int, month time.Month, asOf time.Time) (int, bool) {
	if asOf.Year() == year && asOf.Month() == month {
		return asOf.Day(), true
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	asOfDate := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	if first.After(asOfDate) {
		return 0, false
	}
	return daysInMonth(year, month), true
}

// monthRecords indexes the worker's records for the month by day-of-month.
// At most one record exists per (worker, date); if the input carries
// duplicates anyway, the last one wins.
func monthRecords(workerID string, records []attendance.Record, year int, month time.Month) map[int]attendance.Record {
	byDay := make(map[int]attendance.Record)
	for _, rec := range records {
		if rec.WorkerID != workerID {
			continue
		}
		if rec.Date.Year() != year || rec.Date.Month() != month {
			continue
		}
		byDay[rec.Date.Day()] = rec
	}
	return byDay
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
