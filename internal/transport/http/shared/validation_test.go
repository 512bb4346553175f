package shared

import "testing"

type samplePayload struct {
	Name   string  `validate:"required"`
	Gender string  `validate:"required,oneof=male female"`
	Salary float64 `validate:"gte=0"`
}

func TestValidateStructPasses(t *testing.T) {
	issues := ValidateStruct(samplePayload{Name: "Ramesh", Gender: "male", Salary: 100})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestValidateStructReportsFields(t *testing.T) {
	issues := ValidateStruct(samplePayload{Gender: "other", Salary: -1})
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", issues)
	}

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	for _, expected := range []string{"name", "gender", "salary"} {
		if !fields[expected] {
			t.Fatalf("expected an issue for %q, got %+v", expected, issues)
		}
	}
}
