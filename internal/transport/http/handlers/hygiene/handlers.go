package hygienehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/domain/hygiene"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

type Handler struct {
	Service *hygiene.Service
}

func NewHandler(service *hygiene.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/lab-tests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{testID}", h.handleGet)
		r.Put("/{testID}", h.handleUpdate)
		r.Delete("/{testID}", h.handleDelete)
	})
}

type labTestPayload struct {
	SampleName string `json:"sampleName" validate:"required"`
	TestType   string `json:"testType" validate:"required"`
	Result     string `json:"result" validate:"omitempty,oneof=pending pass fail"`
	TestedOn   string `json:"testedOn" validate:"required"`
	ValidUntil string `json:"validUntil"`
	Notes      string `json:"notes"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	query := r.URL.Query()
	if raw := query.Get("expiringWithinDays"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			api.Fail(w, http.StatusBadRequest, "invalid_query", "expiringWithinDays must be a non-negative integer", requestID)
			return
		}
		tests, err := h.Service.ExpiringWithin(r.Context(), time.Now().UTC(), days)
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "lab_tests_list_failed", "failed to list lab tests", requestID)
			return
		}
		api.Success(w, tests, requestID)
		return
	}

	result := query.Get("result")
	if result != "" && !hygiene.ValidResult(result) {
		api.Fail(w, http.StatusBadRequest, "invalid_query", "unknown test result", requestID)
		return
	}
	limit, offset := shared.ParseLimitOffset(r, 50, 200)

	tests, err := h.Service.List(r.Context(), result, limit, offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lab_tests_list_failed", "failed to list lab tests", requestID)
		return
	}
	api.Success(w, tests, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	test, ok := h.decodePayload(w, r, requestID)
	if !ok {
		return
	}

	saved, err := h.Service.Create(r.Context(), test)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lab_test_create_failed", "failed to create lab test", requestID)
		return
	}
	api.Created(w, saved, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	test, err := h.Service.Get(r.Context(), chi.URLParam(r, "testID"))
	if errors.Is(err, hygiene.ErrTestNotFound) {
		api.Fail(w, http.StatusNotFound, "lab_test_not_found", "lab test not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lab_test_get_failed", "failed to load lab test", requestID)
		return
	}
	api.Success(w, test, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	test, ok := h.decodePayload(w, r, requestID)
	if !ok {
		return
	}

	saved, err := h.Service.Update(r.Context(), chi.URLParam(r, "testID"), test)
	if errors.Is(err, hygiene.ErrTestNotFound) {
		api.Fail(w, http.StatusNotFound, "lab_test_not_found", "lab test not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lab_test_update_failed", "failed to update lab test", requestID)
		return
	}
	api.Success(w, saved, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetSession(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}

	err := h.Service.Delete(r.Context(), chi.URLParam(r, "testID"))
	if errors.Is(err, hygiene.ErrTestNotFound) {
		api.Fail(w, http.StatusNotFound, "lab_test_not_found", "lab test not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "lab_test_delete_failed", "failed to delete lab test", requestID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, requestID string) (hygiene.LabTest, bool) {
	var payload labTestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return hygiene.LabTest{}, false
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return hygiene.LabTest{}, false
	}

	testedOn, err := shared.ParseDate(payload.TestedOn)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "testedOn must be a YYYY-MM-DD date", requestID)
		return hygiene.LabTest{}, false
	}

	test := hygiene.LabTest{
		SampleName: payload.SampleName,
		TestType:   payload.TestType,
		Result:     payload.Result,
		TestedOn:   testedOn,
		Notes:      payload.Notes,
	}
	if payload.ValidUntil != "" {
		validUntil, err := shared.ParseDate(payload.ValidUntil)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "validUntil must be a YYYY-MM-DD date", requestID)
			return hygiene.LabTest{}, false
		}
		test.ValidUntil = &validUntil
	}
	return test, true
}
