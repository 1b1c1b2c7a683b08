package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/mocks"
	"github.com/slovocards/slovocards-api/internal/service/auth"
)

// identityProbe captures the claims the middleware resolved into the
// request context.
type identityProbe struct {
	called  bool
	userID  int64
	hasUser bool
	isAdmin bool
}

func (p *identityProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.userID, p.hasUser = shared.UserID(r.Context())
		p.isAdmin = shared.IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestResolve_LegacyHeaders(t *testing.T) {
	tests := []struct {
		name          string
		userIDHeader  string
		isAdminHeader string
		wantUser      bool
		wantUserID    int64
		wantAdmin     bool
	}{
		{"user only", "42", "", true, 42, false},
		{"user and admin", "1", "true", true, 1, true},
		{"admin without user", "", "true", false, 0, true},
		{"no headers", "", "", false, 0, false},
		{"unparseable user id", "abc", "", false, 0, false},
		{"admin header not literally true", "42", "TRUE", true, 42, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			probe := &identityProbe{}
			mw := NewIdentityMiddleware(nil)

			req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
			if tc.userIDHeader != "" {
				req.Header.Set("X-User-Id", tc.userIDHeader)
			}
			if tc.isAdminHeader != "" {
				req.Header.Set("X-Is-Admin", tc.isAdminHeader)
			}

			w := httptest.NewRecorder()
			mw.Resolve(probe.handler()).ServeHTTP(w, req)

			assert.True(t, probe.called)
			assert.Equal(t, tc.wantUser, probe.hasUser)
			if tc.wantUser {
				assert.Equal(t, tc.wantUserID, probe.userID)
			}
			assert.Equal(t, tc.wantAdmin, probe.isAdmin)
		})
	}
}

func TestResolve_BearerTokenPreferred(t *testing.T) {
	probe := &identityProbe{}
	tokens := &mocks.MockTokenService{
		Claims: &auth.Claims{UserID: 99, IsAdmin: true},
	}
	mw := NewIdentityMiddleware(tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	// Conflicting legacy headers lose to the verified token
	req.Header.Set("X-User-Id", "1")
	req.Header.Set("X-Is-Admin", "false")

	w := httptest.NewRecorder()
	mw.Resolve(probe.handler()).ServeHTTP(w, req)

	assert.True(t, probe.hasUser)
	assert.Equal(t, int64(99), probe.userID)
	assert.True(t, probe.isAdmin)
}

func TestResolve_RejectedTokenFallsBackToHeaders(t *testing.T) {
	probe := &identityProbe{}
	tokens := &mocks.MockTokenService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrInvalidToken
		},
	}
	mw := NewIdentityMiddleware(tokens)

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	req.Header.Set("X-User-Id", "42")

	w := httptest.NewRecorder()
	mw.Resolve(probe.handler()).ServeHTTP(w, req)

	assert.True(t, probe.hasUser)
	assert.Equal(t, int64(42), probe.userID)
}

func TestResolve_MalformedAuthorizationHeader(t *testing.T) {
	probe := &identityProbe{}
	mw := NewIdentityMiddleware(&mocks.MockTokenService{
		Claims: &auth.Claims{UserID: 99},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	w := httptest.NewRecorder()
	mw.Resolve(probe.handler()).ServeHTTP(w, req)

	// Non-Bearer schemes are ignored, not errors
	assert.True(t, probe.called)
	assert.False(t, probe.hasUser)
}

func TestRequireUser(t *testing.T) {
	probe := &identityProbe{}

	// Without identity
	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	w := httptest.NewRecorder()
	RequireUser(probe.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), "User ID required")

	// With identity
	req = httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	req = req.WithContext(shared.WithIdentity(req.Context(), 42, false))
	w = httptest.NewRecorder()
	RequireUser(probe.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, probe.called)
}

func TestRequireAdmin(t *testing.T) {
	probe := &identityProbe{}

	// Regular user is forbidden
	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req = req.WithContext(shared.WithIdentity(req.Context(), 42, false))
	w := httptest.NewRecorder()
	RequireAdmin(probe.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, probe.called)
	assert.Contains(t, w.Body.String(), "Admin access required")

	// The admin claim alone suffices, no user ID needed
	req = httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	req = req.WithContext(shared.WithAdminClaim(req.Context(), true))
	w = httptest.NewRecorder()
	RequireAdmin(probe.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, probe.called)
}
