package payroll

import (
	"bytes"
	"testing"
	"time"

	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

func TestRenderPayslipProducesPDF(t *testing.T) {
	w := worker.Worker{Name: "Ramesh Kumar", Gender: worker.GenderMale}
	result := Result{
		BaseSalary:           30000,
		Bonus:                1000,
		OvertimeCompensation: 400,
		TotalSalary:          31000,
		HasBonus:             true,
	}

	pdf, err := RenderPayslip(w, 2025, time.January, result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got prefix %q", pdf[:min(len(pdf), 8)])
	}
}
