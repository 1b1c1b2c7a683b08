package api

import (
	"log/slog"
	"net/http"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// AccountsHandler handles the admin-only user progress report.
type AccountsHandler struct {
	users store.UserStore
}

// NewAccountsHandler creates a new AccountsHandler with the given
// dependencies.
func NewAccountsHandler(users store.UserStore) *AccountsHandler {
	return &AccountsHandler{users: users}
}

// List handles GET /api/accounts. Admin only; returns every non-admin
// user with their learned-card percentage, newest accounts first.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.users.ListAccounts(r.Context())
	if err != nil {
		slog.Error("failed to list accounts", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	if accounts == nil {
		accounts = []*domain.AccountSummary{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"users": accounts,
	})
}
