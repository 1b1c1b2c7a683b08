package middleware

import (
	"net/http"
	"strings"
)

const (
	corsAllowedHeaders = "Content-Type, Authorization, X-User-Id, X-Is-Admin"
	corsMaxAge         = "86400"
)

// corsMethods maps each resource prefix to the method list advertised in
// preflight responses.
var corsMethods = []struct {
	prefix  string
	methods string
}{
	{"/api/auth", "POST, OPTIONS"},
	{"/api/categories", "GET, POST, OPTIONS"},
	{"/api/accounts", "GET, OPTIONS"},
	{"/api/translate", "POST, OPTIONS"},
	{"/api/cards", "GET, POST, PUT, DELETE, OPTIONS"},
	{"/api/groups", "GET, POST, PUT, DELETE, OPTIONS"},
}

// CORS applies the cross-origin contract: every response allows any
// origin, and OPTIONS preflights are answered directly with a 200, the
// resource's method list, and an empty body.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", methodsFor(r.URL.Path))
			w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func methodsFor(path string) string {
	for _, entry := range corsMethods {
		if strings.HasPrefix(path, entry.prefix) {
			return entry.methods
		}
	}
	return "GET, POST, PUT, DELETE, OPTIONS"
}
