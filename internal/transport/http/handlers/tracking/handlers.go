package trackinghandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/domain/tracking"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *tracking.Service
}

func NewHandler(service *tracking.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{code}", h.handleGet)
		r.Get("/{code}/label", h.handleLabel)
		r.Get("/{code}/history", h.handleHistory)
		r.Post("/{code}/scan", h.handleScan)
	})
}

type packagePayload struct {
	Product  string   `json:"product" validate:"required"`
	BatchNo  string   `json:"batchNo"`
	WeightKg *float64 `json:"weightKg" validate:"omitempty,gt=0"`
	Code     string   `json:"code"`
}

type scanPayload struct {
	Status string `json:"status" validate:"required,oneof=packed dispatched delivered returned"`
	Note   string `json:"note"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !tracking.ValidStatus(status) {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "unknown package status", requestID)
		return
	}
	limit, offset := shared.ParseLimitOffset(r, 50, 200)

	packages, err := h.Service.List(r.Context(), status, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "packages_list_failed", "failed to list packages", requestID)
		return
	}
	api.Success(w, packages, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	var payload packagePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return
	}

	pkg, err := h.Service.Create(r.Context(), tracking.Package{
		Code:     payload.Code,
		Product:  payload.Product,
		BatchNo:  payload.BatchNo,
		WeightKg: payload.WeightKg,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "package_create_failed", "failed to create package", requestID)
		return
	}
	api.Created(w, pkg, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	pkg, err := h.Service.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if errors.Is(err, tracking.ErrPackageNotFound) {
		api.Fail(w, http.StatusNotFound, "package_not_found", "package not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "package_get_failed", "failed to load package", requestID)
		return
	}
	api.Success(w, pkg, requestID)
}

func (h *Handler) handleLabel(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	png, err := h.Service.LabelPNG(r.Context(), chi.URLParam(r, "code"))
	if errors.Is(err, tracking.ErrPackageNotFound) {
		api.Fail(w, http.StatusNotFound, "package_not_found", "package not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "label_failed", "failed to render label", requestID)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	events, err := h.Service.History(r.Context(), chi.URLParam(r, "code"))
	if errors.Is(err, tracking.ErrPackageNotFound) {
		api.Fail(w, http.StatusNotFound, "package_not_found", "package not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "history_failed", "failed to load scan history", requestID)
		return
	}
	api.Success(w, events, requestID)
}

func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	var payload scanPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return
	}

	event, err := h.Service.Scan(r.Context(), chi.URLParam(r, "code"), payload.Status, payload.Note)
	if errors.Is(err, tracking.ErrPackageNotFound) {
		api.Fail(w, http.StatusNotFound, "package_not_found", "package not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "scan_failed", "failed to record scan", requestID)
		return
	}
	api.Created(w, event, requestID)
}
