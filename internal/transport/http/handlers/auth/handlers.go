package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/apurva4122/barcoding-sub001/internal/auth"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/api"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/middleware"
	"github.com/apurva4122/barcoding-sub001/internal/transport/http/shared"
)

// Handler gates the app behind the single operator password. There is no
// user table: one configured password, one admin role.
type Handler struct {
	PasswordHash string
	JWTSecret    string
	TokenTTL     time.Duration
}

func NewHandler(passwordHash, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{PasswordHash: passwordHash, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

type loginPayload struct {
	Password string `json:"password" validate:"required"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if shared.Reject(w, requestID, shared.ValidateStruct(payload)) {
		return
	}

	if err := auth.CheckPassword(h.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "wrong password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.RoleAdmin, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, map[string]any{
		"token":     token,
		"expiresIn": int(h.TokenTTL.Seconds()),
	}, requestID)
}
