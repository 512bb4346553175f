package worker

import "time"

// Gender picks the pay model: male workers draw a monthly salary, female
// workers a daily wage. See internal/domain/payroll for the rate rules.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Worker struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`
	Gender string `json:"gender"`
	// BaseSalary is a monthly amount for male workers and a per-day wage for
	// female workers. Nil or non-positive values compute to a zero salary.
	BaseSalary *float64   `json:"baseSalary,omitempty"`
	Role       string     `json:"role,omitempty"`
	Active     bool       `json:"active"`
	JoinedOn   *time.Time `json:"joinedOn,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ValidGender(value string) bool {
	return value == GenderMale || value == GenderFemale
}
