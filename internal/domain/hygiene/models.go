package hygiene

import "time"

const (
	ResultPending = "pending"
	ResultPass    = "pass"
	ResultFail    = "fail"
)

// LabTest is one hygiene or lab-test entry: a sample sent out, its verdict,
// and how long the certificate stays valid.
type LabTest struct {
	ID         string     `json:"id"`
	SampleName string     `json:"sampleName"`
	TestType   string     `json:"testType"`
	Result     string     `json:"result"`
	TestedOn   time.Time  `json:"testedOn"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ValidResult(value string) bool {
	switch value {
	case ResultPending, ResultPass, ResultFail:
		return true
	default:
		return false
	}
}
