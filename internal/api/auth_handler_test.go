package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/mocks"
	"github.com/slovocards/slovocards-api/internal/service"
)

type authHandlerFixture struct {
	db       *sql.DB
	dbMock   sqlmock.Sqlmock
	users    *mocks.MockUserStore
	admins   *mocks.MockAdminStore
	verifier *mocks.MockPasswordVerifier
	tokens   *mocks.MockTokenService
	handler  *AuthHandler
}

func newAuthHandlerFixture(t *testing.T) *authHandlerFixture {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &authHandlerFixture{
		db:       db,
		dbMock:   dbMock,
		users:    mocks.NewMockUserStore(),
		admins:   mocks.NewMockAdminStore(),
		verifier: &mocks.MockPasswordVerifier{},
		tokens:   &mocks.MockTokenService{Token: "session-token"},
	}

	userService := service.NewUserService(
		db, f.users, f.admins, mocks.NewMockCategoryStore(),
		&mocks.MockPasswordHasher{}, f.verifier, nil)
	f.handler = NewAuthHandler(userService, f.tokens)
	return f
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	w := postJSON(t, f.handler.Register, "/api/auth/register",
		AuthRequest{Username: "anna", Password: "secret123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	body := decodeBody(t, w)
	assert.Equal(t, "anna", body["username"])
	assert.Equal(t, float64(1), body["userId"])
	assert.Equal(t, "session-token", body["token"])
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.users.Users["anna"] = &domain.User{ID: 1, Username: "anna", HashedPassword: "x"}

	w := postJSON(t, f.handler.Register, "/api/auth/register",
		AuthRequest{Username: "anna", Password: "secret123"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username already exists", decodeBody(t, w)["error"])
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	f := newAuthHandlerFixture(t)

	tests := []struct {
		name string
		req  AuthRequest
	}{
		{"no username", AuthRequest{Password: "secret123"}},
		{"no password", AuthRequest{Username: "anna"}},
		{"whitespace username", AuthRequest{Username: "   ", Password: "secret123"}},
		{"empty body", AuthRequest{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, f.handler.Register, "/api/auth/register", tc.req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Username and password required", decodeBody(t, w)["error"])
		})
	}
}

func TestAuthHandler_Register_AbsentBody(t *testing.T) {
	f := newAuthHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	w := httptest.NewRecorder()
	f.handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username and password required", decodeBody(t, w)["error"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = true

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "anna", Password: "secret123"})

	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["userId"])
	assert.Equal(t, "anna", body["username"])
	assert.Equal(t, "session-token", body["token"])
	// isAdmin is omitted for regular users
	_, present := body["isAdmin"]
	assert.False(t, present)
}

func TestAuthHandler_Login_AdminCarriesClaim(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.admins.Admins["boss"] = &domain.Admin{ID: 1, Username: "boss", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = true

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "boss", Password: "secret123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["isAdmin"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = false

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "anna", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	f := newAuthHandlerFixture(t)

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "nobody", Password: "secret123"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestAuthHandler_TokenIssuanceDisabled(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = true

	// No token service configured
	f.handler.tokens = nil

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "anna", Password: "secret123"})

	assert.Equal(t, http.StatusOK, w.Code)
	_, present := decodeBody(t, w)["token"]
	assert.False(t, present)
}

func TestAuthHandler_TokenFailureIsNotFatal(t *testing.T) {
	f := newAuthHandlerFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = true

	f.tokens.GenerateTokenFn = func(ctx context.Context, userID int64, isAdmin bool) (string, error) {
		return "", assert.AnError
	}

	w := postJSON(t, f.handler.Login, "/api/auth/login",
		AuthRequest{Username: "anna", Password: "secret123"})

	// Login still succeeds; the token is simply absent
	assert.Equal(t, http.StatusOK, w.Code)
	_, present := decodeBody(t, w)["token"]
	assert.False(t, present)
}
