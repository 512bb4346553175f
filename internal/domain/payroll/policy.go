package payroll

import (
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

// PayPolicy describes how a class of workers accrues pay over a month.
// Policies are stateless; one instance serves every worker of the class.
type PayPolicy interface {
	Code() string
	// Rates derives the per-day and per-hour rates for the given month.
	Rates(baseSalary float64, year int, month time.Month) DayRates
	// CoversDay reports whether the weekday is processed at all.
	CoversDay(day time.Weekday) bool
	// OvertimeEligible reports whether overtime may accrue on the weekday.
	OvertimeEligible(day time.Weekday) bool
	BonusTiers() BonusTiers
}

func PolicyForGender(gender string) (PayPolicy, error) {
	switch gender {
	case worker.GenderMale:
		return MonthlySalaried(), nil
	case worker.GenderFemale:
		return DailyWage(), nil
	default:
		return nil, ErrUnknownPayPolicy
	}
}

// MonthlySalaried spreads a monthly salary across every day of the month.
// The weekly off day is paid, so it sits in the denominator alongside the
// working days; it just never earns overtime.
func MonthlySalaried() PayPolicy { return monthlySalaried{} }

type monthlySalaried struct{}

func (monthlySalaried) Code() string { return "monthly_salaried" }

func (monthlySalaried) Rates(baseSalary float64, year int, month time.Month) DayRates {
	working, offDays := countMonthDays(year, month)
	daily := baseSalary / float64(working+offDays)
	return DayRates{Daily: daily, Hourly: daily / SalariedShiftHours}
}

func (monthlySalaried) CoversDay(time.Weekday) bool { return true }

func (monthlySalaried) OvertimeEligible(day time.Weekday) bool { return day != WeeklyOffDay }

func (monthlySalaried) BonusTiers() BonusTiers { return SalariedBonusTiers }

// DailyWage pays a fixed wage per worked day. The weekly off day is skipped
// outright: no pay, no overtime, and absences on it count for nothing.
func DailyWage() PayPolicy { return dailyWage{} }

type dailyWage struct{}

func (dailyWage) Code() string { return "daily_wage" }

func (dailyWage) Rates(baseSalary float64, _ int, _ time.Month) DayRates {
	return DayRates{Daily: baseSalary, Hourly: baseSalary / DailyWageShiftHours}
}

func (dailyWage) CoversDay(day time.Weekday) bool { return day != WeeklyOffDay }

func (dailyWage) OvertimeEligible(day time.Weekday) bool { return day != WeeklyOffDay }

func (dailyWage) BonusTiers() BonusTiers { return DailyWageBonusTiers }

func countMonthDays(year int, month time.Month) (working, offDays int) {
	total := daysInMonth(year, month)
	for d := 1; d <= total; d++ {
		if time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday() == WeeklyOffDay {
			offDays++
		} else {
			working++
		}
	}
	return working, offDays
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
