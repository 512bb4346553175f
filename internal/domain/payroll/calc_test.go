package payroll

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

// January 2025: 31 days, Tuesdays on the 7th, 14th, 21st and 28th.
const (
	fixtureYear  = 2025
	fixtureMonth = time.January

	fixtureDays     = 31
	fixtureOffDays  = 4
	fixtureWorkDays = 27
)

// afterFixtureMonth makes January 2025 a fully-elapsed month.
var afterFixtureMonth = time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)

func salary(v float64) *float64 { return &v }

func day(d int) time.Time {
	return time.Date(fixtureYear, fixtureMonth, d, 0, 0, 0, 0, time.UTC)
}

func maleWorker(base float64) worker.Worker {
	return worker.Worker{ID: "w-male", Name: "Ramesh", Gender: worker.GenderMale, BaseSalary: salary(base)}
}

func femaleWorker(base float64) worker.Worker {
	return worker.Worker{ID: "w-female", Name: "Sunita", Gender: worker.GenderFemale, BaseSalary: salary(base)}
}

func record(workerID string, d int, status string, overtime bool, lateMinutes int) attendance.Record {
	return attendance.Record{
		WorkerID:    workerID,
		Date:        day(d),
		Status:      status,
		Overtime:    overtime,
		LateMinutes: lateMinutes,
	}
}

func fullMonthPresent(workerID string, overtime bool) []attendance.Record {
	records := make([]attendance.Record, 0, fixtureDays)
	for d := 1; d <= fixtureDays; d++ {
		records = append(records, record(workerID, d, attendance.StatusPresent, overtime, 0))
	}
	return records
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMissingOrZeroSalaryPaysNothing(t *testing.T) {
	records := fullMonthPresent("w-male", true)

	for name, base := range map[string]*float64{
		"nil":      nil,
		"zero":     salary(0),
		"negative": salary(-100),
	} {
		w := maleWorker(0)
		w.BaseSalary = base
		result, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if result != (Result{}) {
			t.Fatalf("%s: expected zero result, got %+v", name, result)
		}
	}
}

func TestFullMonthSalariedWorker(t *testing.T) {
	w := maleWorker(30000)
	result, err := CalculateMonthlySalary(w, fullMonthPresent(w.ID, false), fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The monthly salary spreads over all 31 days, off days included, so a
	// full month collapses back to the configured salary.
	if !almostEqual(result.BaseSalary, 30000) {
		t.Fatalf("expected base 30000, got %v", result.BaseSalary)
	}
	if result.OvertimeCompensation != 0 {
		t.Fatalf("expected no overtime pay, got %v", result.OvertimeCompensation)
	}
	if result.Bonus != SalariedBonusTiers.Perfect {
		t.Fatalf("expected perfect-attendance bonus %v, got %v", SalariedBonusTiers.Perfect, result.Bonus)
	}
	if !result.HasBonus {
		t.Fatal("expected HasBonus")
	}
	if !almostEqual(result.TotalSalary, 31000) {
		t.Fatalf("expected total 31000, got %v", result.TotalSalary)
	}
}

func TestCurrentMonthOnlyAccruesElapsedDays(t *testing.T) {
	asOf := day(10)

	male, err := CalculateMonthlySalary(maleWorker(31000), nil, fixtureYear, fixtureMonth, DefaultOptions(asOf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := round2(10 * 31000.0 / fixtureDays)
	if male.BaseSalary != expected {
		t.Fatalf("expected base %v for 10 elapsed days, got %v", expected, male.BaseSalary)
	}

	// Days 1-10 contain one off day (the 7th), so a daily-wage worker is
	// paid for nine days.
	female, err := CalculateMonthlySalary(femaleWorker(450), nil, fixtureYear, fixtureMonth, DefaultOptions(asOf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(female.BaseSalary, 9*450) {
		t.Fatalf("expected base %v, got %v", 9*450, female.BaseSalary)
	}
}

func TestFutureMonthReturnsZero(t *testing.T) {
	before := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)
	result, err := CalculateMonthlySalary(maleWorker(30000), fullMonthPresent("w-male", true), fixtureYear, fixtureMonth, DefaultOptions(before))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != (Result{}) {
		t.Fatalf("expected zero result for a future month, got %+v", result)
	}
}

func TestUnknownGenderIsAnError(t *testing.T) {
	w := maleWorker(30000)
	w.Gender = "other"
	_, err := CalculateMonthlySalary(w, nil, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if !errors.Is(err, ErrUnknownPayPolicy) {
		t.Fatalf("expected ErrUnknownPayPolicy, got %v", err)
	}
}

func TestOffDaySkippedForDailyWage(t *testing.T) {
	w := femaleWorker(450)
	opts := DefaultOptions(afterFixtureMonth)

	baseline, err := CalculateMonthlySalary(w, nil, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A present-with-overtime record on the off day must contribute nothing.
	withOffDayRecord, err := CalculateMonthlySalary(w, []attendance.Record{
		record(w.ID, 7, attendance.StatusPresent, true, 0),
	}, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withOffDayRecord != baseline {
		t.Fatalf("off-day record changed the result: %+v vs %+v", withOffDayRecord, baseline)
	}

	// Neither must an absence on the off day cost the bonus.
	withOffDayAbsence, err := CalculateMonthlySalary(w, []attendance.Record{
		record(w.ID, 7, attendance.StatusAbsent, false, 0),
	}, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withOffDayAbsence.Bonus != DailyWageBonusTiers.Perfect {
		t.Fatalf("expected perfect bonus despite off-day absence, got %v", withOffDayAbsence.Bonus)
	}
}

func TestOffDayAbsenceCountsForSalaried(t *testing.T) {
	w := maleWorker(31000)
	result, err := CalculateMonthlySalary(w, []attendance.Record{
		record(w.ID, 7, attendance.StatusAbsent, false, 0),
	}, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedBase := round2(30 * 31000.0 / fixtureDays)
	if result.BaseSalary != expectedBase {
		t.Fatalf("expected base %v, got %v", expectedBase, result.BaseSalary)
	}
	if result.Bonus != SalariedBonusTiers.SingleAbsence {
		t.Fatalf("expected single-absence bonus %v, got %v", SalariedBonusTiers.SingleAbsence, result.Bonus)
	}
}

func TestHalfDayBonusTiering(t *testing.T) {
	w := maleWorker(30000)
	opts := DefaultOptions(afterFixtureMonth)

	oneHalf, err := CalculateMonthlySalary(w, []attendance.Record{
		record(w.ID, 2, attendance.StatusHalfDay, false, 0),
	}, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if oneHalf.Bonus != SalariedBonusTiers.Perfect {
		t.Fatalf("one half-day should keep the perfect tier, got %v", oneHalf.Bonus)
	}

	twoHalves, err := CalculateMonthlySalary(w, []attendance.Record{
		record(w.ID, 2, attendance.StatusHalfDay, false, 0),
		record(w.ID, 3, attendance.StatusHalfDay, false, 0),
	}, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if twoHalves.Bonus != SalariedBonusTiers.SingleAbsence {
		t.Fatalf("two half-days should drop to the single-absence tier, got %v", twoHalves.Bonus)
	}
}

func TestAttendanceBonusTiers(t *testing.T) {
	cases := []struct {
		absent, half int
		expected     float64
	}{
		{0, 0, SalariedBonusTiers.Perfect},
		{0, 1, SalariedBonusTiers.Perfect},
		{0, 2, SalariedBonusTiers.SingleAbsence},
		{1, 0, SalariedBonusTiers.SingleAbsence},
		{1, 1, SalariedBonusTiers.SingleAbsence},
		{2, 0, 0},
		{1, 2, 0},
		{0, 4, 0},
	}
	for _, tc := range cases {
		got := AttendanceBonus(tc.absent, tc.half, SalariedBonusTiers)
		if got != tc.expected {
			t.Fatalf("absent=%d half=%d: expected %v, got %v", tc.absent, tc.half, tc.expected, got)
		}
	}
}

func TestOvertimeAccrual(t *testing.T) {
	w := maleWorker(31000)
	result, err := CalculateMonthlySalary(w, fullMonthPresent(w.ID, true), fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	daily := 31000.0 / fixtureDays
	hourly := daily / SalariedShiftHours
	expectedOvertime := round2(fixtureWorkDays * hourly * OvertimeMultiplier)
	if result.OvertimeCompensation != expectedOvertime {
		t.Fatalf("expected overtime %v, got %v", expectedOvertime, result.OvertimeCompensation)
	}
	if !almostEqual(result.BaseSalary, round2(31000+fixtureWorkDays*hourly*OvertimeMultiplier)) {
		t.Fatalf("overtime must be included in base, got %v", result.BaseSalary)
	}
}

func TestLateMinutesReduceOvertime(t *testing.T) {
	w := maleWorker(31000)
	daily := 31000.0 / fixtureDays
	hourly := daily / SalariedShiftHours

	records := fullMonthPresent(w.ID, false)
	// The 2nd is a Wednesday: one overtime hour, 90 minutes late.
	records[1] = record(w.ID, 2, attendance.StatusPresent, true, 90)

	result, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1h accrued minus 1.5h late floors at zero.
	if result.OvertimeCompensation != 0 {
		t.Fatalf("expected overtime floored at zero, got %v", result.OvertimeCompensation)
	}
	if !almostEqual(result.BaseSalary, 31000) {
		t.Fatalf("expected base unchanged at 31000, got %v", result.BaseSalary)
	}

	// 30 minutes late leaves half an overtime hour.
	records[1] = record(w.ID, 2, attendance.StatusPresent, true, 30)
	result, err = CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := round2(0.5 * hourly * OvertimeMultiplier)
	if result.OvertimeCompensation != expected {
		t.Fatalf("expected overtime %v, got %v", expected, result.OvertimeCompensation)
	}
}

func TestLateDeductionCanBeDisabled(t *testing.T) {
	w := maleWorker(31000)
	records := fullMonthPresent(w.ID, false)
	records[1] = record(w.ID, 2, attendance.StatusPresent, true, 90)

	opts := DefaultOptions(afterFixtureMonth)
	opts.IncludeLateDeduction = false

	result, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	daily := 31000.0 / fixtureDays
	expected := round2(daily / SalariedShiftHours * OvertimeMultiplier)
	if result.OvertimeCompensation != expected {
		t.Fatalf("expected full overtime hour %v, got %v", expected, result.OvertimeCompensation)
	}
}

func TestBonusCanBeDisabled(t *testing.T) {
	w := maleWorker(30000)
	opts := DefaultOptions(afterFixtureMonth)
	opts.IncludeBonus = false

	result, err := CalculateMonthlySalary(w, fullMonthPresent(w.ID, false), fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Bonus != 0 || result.HasBonus {
		t.Fatalf("expected no bonus, got %+v", result)
	}
	if !almostEqual(result.TotalSalary, result.BaseSalary) {
		t.Fatalf("total should equal base without bonus, got %+v", result)
	}
}

func TestMissingRecordsDefaultToPresent(t *testing.T) {
	for _, defaultOvertime := range []bool{false, true} {
		for _, w := range []worker.Worker{maleWorker(31000), femaleWorker(450)} {
			opts := DefaultOptions(afterFixtureMonth)
			opts.DefaultOvertime = defaultOvertime

			implicit, err := CalculateMonthlySalary(w, nil, fixtureYear, fixtureMonth, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			explicit, err := CalculateMonthlySalary(w, fullMonthPresent(w.ID, defaultOvertime), fixtureYear, fixtureMonth, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if implicit != explicit {
				t.Fatalf("gender=%s defaultOvertime=%v: implicit %+v != explicit %+v", w.Gender, defaultOvertime, implicit, explicit)
			}
		}
	}
}

func TestForeignRecordsAreIgnored(t *testing.T) {
	w := maleWorker(30000)
	opts := DefaultOptions(afterFixtureMonth)

	baseline, err := CalculateMonthlySalary(w, nil, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noise := []attendance.Record{
		{WorkerID: "someone-else", Date: day(3), Status: attendance.StatusAbsent},
		{WorkerID: w.ID, Date: time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
		{WorkerID: w.ID, Date: time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
	}
	withNoise, err := CalculateMonthlySalary(w, noise, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withNoise != baseline {
		t.Fatalf("foreign records changed the result: %+v vs %+v", withNoise, baseline)
	}
}

func TestCalculationIsIdempotent(t *testing.T) {
	w := femaleWorker(450)
	records := []attendance.Record{
		record(w.ID, 2, attendance.StatusHalfDay, true, 20),
		record(w.ID, 3, attendance.StatusAbsent, false, 0),
		record(w.ID, 6, attendance.StatusPresent, true, 45),
	}
	opts := DefaultOptions(afterFixtureMonth)

	first, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("results differ across calls: %+v vs %+v", first, second)
	}
}

func TestReturnedFieldsAreRounded(t *testing.T) {
	// An awkward salary makes every intermediate rate repeat in decimal.
	w := maleWorker(10000)
	records := fullMonthPresent(w.ID, true)
	records[4] = record(w.ID, 5, attendance.StatusHalfDay, true, 25)

	result, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, value := range map[string]float64{
		"baseSalary":           result.BaseSalary,
		"bonus":                result.Bonus,
		"overtimeCompensation": result.OvertimeCompensation,
		"totalSalary":          result.TotalSalary,
	} {
		if value != round2(value) {
			t.Fatalf("%s not rounded to 2 decimals: %v", name, value)
		}
	}
}

func TestHalfDayPaysHalfRateAndAllowsOvertime(t *testing.T) {
	w := femaleWorker(450)
	records := fullMonthPresent(w.ID, false)
	// The 8th is a Wednesday: half day with an overtime hour.
	records[7] = record(w.ID, 8, attendance.StatusHalfDay, true, 0)

	result, err := CalculateMonthlySalary(w, records, fixtureYear, fixtureMonth, DefaultOptions(afterFixtureMonth))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hourly := 450.0 / DailyWageShiftHours
	expected := round2(float64(fixtureWorkDays-1)*450 + 225 + hourly*OvertimeMultiplier)
	if result.BaseSalary != expected {
		t.Fatalf("expected base %v, got %v", expected, result.BaseSalary)
	}
}
