package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half_day"
)

// Record holds one attendance entry per worker per calendar date. The date
// carries no time-of-day component; comparisons use year/month/day only.
type Record struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"workerId"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Overtime    bool      `json:"overtime"`
	LateMinutes int       `json:"lateMinutes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DailySummary struct {
	Date    time.Time `json:"date"`
	Present int       `json:"present"`
	Absent  int       `json:"absent"`
	HalfDay int       `json:"halfDay"`
}

func ValidStatus(value string) bool {
	switch value {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	default:
		return false
	}
}
