package payroll

import "time"

// Result is the monthly salary breakdown for one worker. It is a read-only
// projection; nothing here is persisted.
type Result struct {
	// BaseSalary is the attendance-driven pay including overtime compensation.
	BaseSalary float64 `json:"baseSalary"`
	Bonus      float64 `json:"bonus"`
	// OvertimeCompensation is the overtime portion already included in
	// BaseSalary, reported separately for transparency.
	OvertimeCompensation float64 `json:"overtimeCompensation"`
	TotalSalary          float64 `json:"totalSalary"`
	HasBonus             bool    `json:"hasBonus"`
}

type WorkerSalary struct {
	WorkerID string `json:"workerId"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Result
}

type BonusTiers struct {
	Perfect       float64
	SingleAbsence float64
}

type DayRates struct {
	Daily  float64
	Hourly float64
}

// Options collects the calculator's feature switches. AsOf is the clock: the
// current month is paid up to that day only.
type Options struct {
	// DefaultOvertime treats days without an attendance record as
	// overtime-eligible.
	DefaultOvertime      bool
	IncludeBonus         bool
	IncludeLateDeduction bool
	AsOf                 time.Time
}

func DefaultOptions(asOf time.Time) Options {
	return Options{
		IncludeBonus:         true,
		IncludeLateDeduction: true,
		AsOf:                 asOf,
	}
}
