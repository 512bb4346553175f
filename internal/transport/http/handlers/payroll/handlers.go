package payrollhandler

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/domain/payroll"
	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/salaries", h.handleSheet)
		r.Get("/workers/{workerID}/salary", h.handleWorkerSalary)
		r.Get("/workers/{workerID}/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleSheet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	year, month, opts, ok := h.parsePeriodOptions(w, r, requestID)
	if !ok {
		return
	}

	sheet, err := h.Service.MonthlySheet(r.Context(), year, month, opts)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "salary_sheet_failed", "failed to compute salary sheet", requestID)
		return
	}

	var total float64
	for _, row := range sheet {
		total += row.TotalSalary
	}
	total = math.Round(total*100) / 100
	api.Success(w, map[string]any{
		"year":    year,
		"month":   int(month),
		"rows":    sheet,
		"total":   total,
		"count":   len(sheet),
		"options": opts,
	}, requestID)
}

func (h *Handler) handleWorkerSalary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	year, month, opts, ok := h.parsePeriodOptions(w, r, requestID)
	if !ok {
		return
	}

	salary, err := h.Service.MonthlySalary(r.Context(), chi.URLParam(r, "workerID"), year, month, opts)
	if errors.Is(err, worker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "worker_not_found", "worker not found", requestID)
		return
	}
	if errors.Is(err, payroll.ErrUnknownPayPolicy) {
		api.Fail(w, http.StatusUnprocessableEntity, "unknown_pay_policy", "no pay policy for this worker's gender", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "salary_failed", "failed to compute salary", requestID)
		return
	}
	api.Success(w, salary, requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	year, month, opts, ok := h.parsePeriodOptions(w, r, requestID)
	if !ok {
		return
	}

	pdf, err := h.Service.Payslip(r.Context(), chi.URLParam(r, "workerID"), year, month, opts)
	if errors.Is(err, worker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "worker_not_found", "worker not found", requestID)
		return
	}
	if errors.Is(err, payroll.ErrUnknownPayPolicy) {
		api.Fail(w, http.StatusUnprocessableEntity, "unknown_pay_policy", "no pay policy for this worker's gender", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=payslip.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) parsePeriodOptions(w http.ResponseWriter, r *http.Request, requestID string) (int, time.Month, payroll.Options, bool) {
	now := time.Now().UTC()
	year, month, err := shared.ParsePeriod(r, now)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_query", err.Error(), requestID)
		return 0, 0, payroll.Options{}, false
	}

	opts := payroll.DefaultOptions(now)
	query := r.URL.Query()
	if query.Get("defaultOvertime") == "true" {
		opts.DefaultOvertime = true
	}
	if query.Get("includeBonus") == "false" {
		opts.IncludeBonus = false
	}
	if query.Get("includeLateDeduction") == "false" {
		opts.IncludeLateDeduction = false
	}
	return year, month, opts, true
}
