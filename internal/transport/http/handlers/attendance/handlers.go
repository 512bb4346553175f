package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/domain/attendance"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleUpsert)
		r.Delete("/", h.handleDelete)
		r.Get("/summary", h.handleSummary)
	})
}

type attendancePayload struct {
	WorkerID    string `json:"workerId" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=present absent half_day"`
	Overtime    bool   `json:"overtime"`
	LateMinutes int    `json:"lateMinutes" validate:"gte=0"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	query := r.URL.Query()
	from, to, ok := h.parseRange(w, requestID, query.Get("from"), query.Get("to"))
	if !ok {
		return
	}

	records, err := h.Service.ListRange(r.Context(), query.Get("workerId"), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	var payload attendancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return
	}

	date, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "date must be a YYYY-MM-DD date", requestID)
		return
	}

	record, err := h.Service.Upsert(r.Context(), attendance.Record{
		WorkerID:    payload.WorkerID,
		Date:        date,
		Status:      payload.Status,
		Overtime:    payload.Overtime,
		LateMinutes: payload.LateMinutes,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_save_failed", "failed to save attendance", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	query := r.URL.Query()
	workerID := query.Get("workerId")
	if workerID == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "workerId is required", requestID)
		return
	}
	rawDate := query.Get("date")
	if rawDate == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "date is required", requestID)
		return
	}
	date, err := shared.ParseDate(rawDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "date must be a YYYY-MM-DD date", requestID)
		return
	}

	err = h.Service.Delete(r.Context(), workerID, date)
	if errors.Is(err, attendance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "attendance_not_found", "attendance record not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_delete_failed", "failed to delete attendance", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_query", "date must be a YYYY-MM-DD date", requestID)
			return
		}
		date = parsed
	}

	summary, err := h.Service.SummaryForDate(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_summary_failed", "failed to build summary", requestID)
		return
	}
	api.Success(w, summary, requestID)
}

func (h *Handler) parseRange(w http.ResponseWriter, requestID, rawFrom, rawTo string) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from, to := attendance.MonthWindow(now.Year(), now.Month())

	if rawFrom != "" {
		parsed, err := shared.ParseDate(rawFrom)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_query", "from must be a YYYY-MM-DD date", requestID)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if rawTo != "" {
		parsed, err := shared.ParseDate(rawTo)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_query", "to must be a YYYY-MM-DD date", requestID)
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	if to.Before(from) {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "to must not be before from", requestID)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
