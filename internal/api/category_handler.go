package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// CategoryHandler handles category listing and creation.
type CategoryHandler struct {
	categories store.CategoryStore
	validator  *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given
// dependencies.
func NewCategoryHandler(categories store.CategoryStore) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		validator:  validator.New(),
	}
}

// List handles GET /api/categories. Returns the caller's categories,
// oldest first.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
		return
	}

	categories, err := h.categories.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("failed to list categories", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list categories")
		return
	}

	if categories == nil {
		categories = []*domain.Category{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

// Create handles POST /api/categories. Admin only; the route is guarded
// by the admin middleware.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
		return
	}

	var req CreateCategoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := domain.NewCategory(userID, req.Name, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.categories.Create(r.Context(), category); err != nil {
		if errors.Is(err, store.ErrCategoryExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Category already exists")
			return
		}
		slog.Error("failed to create category", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"categoryId": category.ID,
	})
}
