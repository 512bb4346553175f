package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
)

// Payslip computes the worker's salary for the month and renders it as a PDF.
func (s *Service) Payslip(ctx context.Context, workerID string, year int, month time.Month, opts Options) ([]byte, error) {
	w, err := s.Workers.Get(ctx, workerID)
	if err != nil {
		return nil, err
	}

	from, to := attendance.MonthWindow(year, month)
	records, err := s.Attendance.ListRange(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	result, err := CalculateMonthlySalary(*w, records, year, month, opts)
	if err != nil {
		return nil, err
	}
	return RenderPayslip(*w, year, month, result)
}

// RenderPayslip renders a one-page PDF payslip for the worker and month.
func RenderPayslip(w worker.Worker, year int, month time.Month, result Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Worker: %s", w.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", month.String(), year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base pay: %.2f", result.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime (included in base): %.2f", result.OvertimeCompensation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance bonus: %.2f", result.Bonus))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", result.TotalSalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
