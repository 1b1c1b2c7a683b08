package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/service/auth"
)

// IdentityMiddleware resolves the caller's identity for protected routes.
//
// A verified Bearer token is preferred. Absent one, the legacy
// X-User-Id / X-Is-Admin headers are honored exactly as the deployed
// clients send them: trusted as-is, with no signature. That trust is a
// known weakness of the wire contract, preserved deliberately for
// compatibility; deployments that set a JWT secret migrate clients to
// tokens without breaking the old headers.
type IdentityMiddleware struct {
	tokens auth.TokenService // may be nil when no JWT secret is configured
}

// NewIdentityMiddleware creates an IdentityMiddleware. The token service
// may be nil, in which case only the legacy headers are consulted.
func NewIdentityMiddleware(tokens auth.TokenService) *IdentityMiddleware {
	return &IdentityMiddleware{tokens: tokens}
}

// Resolve populates the request context with identity claims when any
// are present. It never rejects; RequireUser and RequireAdmin do that.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := m.bearerClaims(r); claims != nil {
			ctx := shared.WithIdentity(r.Context(), claims.UserID, claims.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// The admin claim stands on its own: the accounts endpoint is
		// authorized by it without any user ID.
		ctx := shared.WithAdminClaim(r.Context(), r.Header.Get("X-Is-Admin") == "true")

		if userIDHeader := r.Header.Get("X-User-Id"); userIDHeader != "" {
			userID, err := strconv.ParseInt(userIDHeader, 10, 64)
			if err != nil {
				slog.Debug("unparseable X-User-Id header", "value", userIDHeader)
			} else {
				ctx = context.WithValue(ctx, shared.UserIDContextKey, userID)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *IdentityMiddleware) bearerClaims(r *http.Request) *auth.Claims {
	if m.tokens == nil {
		return nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil
	}

	claims, err := m.tokens.ValidateToken(r.Context(), parts[1])
	if err != nil {
		slog.Debug("bearer token rejected", "error", err)
		return nil
	}
	return claims
}

// RequireUser rejects requests that carry no user identity with a 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := shared.UserID(r.Context()); !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests without the admin claim with a 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !shared.IsAdmin(r.Context()) {
			shared.RespondWithError(w, r, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
