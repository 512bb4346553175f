package payroll

import "time"

// WeeklyOffDay is the packhouse closure day. Salaried workers are paid for
// it; daily-wage workers are simply not scheduled on it.
const WeeklyOffDay = time.Tuesday

const (
	SalariedShiftHours  = 10.0
	DailyWageShiftHours = 9.0
	OvertimeMultiplier  = 2.0
)

// Attendance bonus tiers per pay policy. Exposed as variables so tests can
// assert against the same figures the calculator uses.
var (
	SalariedBonusTiers  = BonusTiers{Perfect: 1000, SingleAbsence: 500}
	DailyWageBonusTiers = BonusTiers{Perfect: 500, SingleAbsence: 250}
)
