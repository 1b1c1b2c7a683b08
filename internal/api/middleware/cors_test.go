package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the next handler")
	})

	tests := []struct {
		path    string
		methods string
	}{
		{"/api/auth/login", "POST, OPTIONS"},
		{"/api/auth/register", "POST, OPTIONS"},
		{"/api/categories", "GET, POST, OPTIONS"},
		{"/api/cards", "GET, POST, PUT, DELETE, OPTIONS"},
		{"/api/cards/3/progress", "GET, POST, PUT, DELETE, OPTIONS"},
		{"/api/groups/5/cards", "GET, POST, PUT, DELETE, OPTIONS"},
		{"/api/accounts", "GET, OPTIONS"},
		{"/api/translate", "POST, OPTIONS"},
		{"/health", "GET, POST, PUT, DELETE, OPTIONS"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tc.path, nil)
			w := httptest.NewRecorder()
			CORS(next).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Body.String())
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.methods, w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, Authorization, X-User-Id, X-Is-Admin",
				w.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
		})
	}
}

func TestCORS_PassesThroughNonPreflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
	w := httptest.NewRecorder()
	CORS(next).ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
