package workershandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/domain/worker"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *worker.Service
}

func NewHandler(service *worker.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/workers", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{workerID}", h.handleGet)
		r.Put("/{workerID}", h.handleUpdate)
		r.Delete("/{workerID}", h.handleDeactivate)
	})
}

type workerPayload struct {
	Name       string   `json:"name" validate:"required"`
	Phone      string   `json:"phone"`
	Gender     string   `json:"gender" validate:"required,oneof=male female"`
	BaseSalary *float64 `json:"baseSalary" validate:"omitempty,gte=0"`
	Role       string   `json:"role"`
	Active     *bool    `json:"active"`
	JoinedOn   string   `json:"joinedOn"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"
	workers, err := h.Service.List(r.Context(), includeInactive)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "workers_list_failed", "failed to list workers", requestID)
		return
	}
	api.Success(w, workers, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	record, ok := h.decodePayload(w, r, requestID)
	if !ok {
		return
	}

	id, err := h.Service.Create(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worker_create_failed", "failed to create worker", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	record, err := h.Service.Get(r.Context(), chi.URLParam(r, "workerID"))
	if errors.Is(err, worker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "worker_not_found", "worker not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worker_get_failed", "failed to load worker", requestID)
		return
	}
	api.Success(w, record, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	record, ok := h.decodePayload(w, r, requestID)
	if !ok {
		return
	}

	err := h.Service.Update(r.Context(), chi.URLParam(r, "workerID"), record)
	if errors.Is(err, worker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "worker_not_found", "worker not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worker_update_failed", "failed to update worker", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	err := h.Service.Deactivate(r.Context(), chi.URLParam(r, "workerID"))
	if errors.Is(err, worker.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "worker_not_found", "worker not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worker_deactivate_failed", "failed to deactivate worker", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deactivated"}, requestID)
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, requestID string) (worker.Worker, bool) {
	var payload workerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return worker.Worker{}, false
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return worker.Worker{}, false
	}

	record := worker.Worker{
		Name:       payload.Name,
		Phone:      payload.Phone,
		Gender:     payload.Gender,
		BaseSalary: payload.BaseSalary,
		Role:       payload.Role,
		Active:     true,
	}
	if payload.Active != nil {
		record.Active = *payload.Active
	}
	if payload.JoinedOn != "" {
		joined, err := shared.ParseDate(payload.JoinedOn)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "joinedOn must be a YYYY-MM-DD date", requestID)
			return worker.Worker{}, false
		}
		record.JoinedOn = &joined
	}
	return record, true
}
