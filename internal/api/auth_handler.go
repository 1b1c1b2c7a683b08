package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/service"
	"github.com/slovocards/slovocards-api/internal/service/auth"
	"github.com/slovocards/slovocards-api/internal/store"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	users     *service.UserService
	tokens    auth.TokenService // may be nil when token issuance is disabled
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users *service.UserService, tokens auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		validator: validator.New(),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAuthRequest(w, r)
	if !ok {
		return
	}

	identity, err := h.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		status := MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to register user", "error", err, "username", req.Username)
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:   identity.UserID,
		Username: identity.Username,
		Token:    h.issueToken(r.Context(), identity),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAuthRequest(w, r)
	if !ok {
		return
	}

	identity, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to authenticate user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:   identity.UserID,
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
		Token:    h.issueToken(r.Context(), identity),
	})
}

func (h *AuthHandler) decodeAuthRequest(w http.ResponseWriter, r *http.Request) (*AuthRequest, bool) {
	var req AuthRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	req.Username = strings.TrimSpace(req.Username)
	if err := h.validator.Struct(req); err != nil || req.Username == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password required")
		return nil, false
	}

	return &req, true
}

func (h *AuthHandler) issueToken(ctx context.Context, identity *service.Identity) string {
	if h.tokens == nil {
		return ""
	}

	token, err := h.tokens.GenerateToken(ctx, identity.UserID, identity.IsAdmin)
	if err != nil {
		// Token issuance is supplemental; the header contract still
		// authenticates the client, so log and move on.
		slog.Error("failed to generate session token", "error", err, "user_id", identity.UserID)
		return ""
	}
	return token
}
