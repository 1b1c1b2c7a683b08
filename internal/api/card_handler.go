package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/slovocards/slovocards-api/internal/api/shared"
	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// CardHandler handles the shared card library: listing with per-user
// progress, admin content management, and the caller's learned flag.
type CardHandler struct {
	cards     store.CardStore
	progress  store.ProgressStore
	validator *validator.Validate
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cards store.CardStore, progress store.ProgressStore) *CardHandler {
	return &CardHandler{
		cards:     cards,
		progress:  progress,
		validator: validator.New(),
	}
}

// List handles GET /api/cards. With a groupId query parameter the
// listing is restricted to that group; otherwise every card is returned.
// Each row carries the caller's learned flag and category metadata, with
// nulls tolerated for uncategorized cards.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
		return
	}

	var (
		cards []*domain.CardWithProgress
		err   error
	)

	if groupParam := r.URL.Query().Get("groupId"); groupParam != "" {
		groupID, parseErr := strconv.ParseInt(groupParam, 10, 64)
		if parseErr != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid groupId")
			return
		}
		cards, err = h.cards.ListByGroup(r.Context(), userID, groupID)
	} else {
		cards, err = h.cards.List(r.Context(), userID)
	}

	if err != nil {
		slog.Error("failed to list cards", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list cards")
		return
	}

	if cards == nil {
		cards = []*domain.CardWithProgress{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"cards": cards,
	})
}

// Create handles POST /api/cards. Admin only.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Russian and english words required")
		return
	}

	card, err := domain.NewCard(req.Russian, req.English, req.RussianExample, req.EnglishExample, req.CategoryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.cards.Create(r.Context(), card); err != nil {
		status := MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to create card", "error", err)
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"cardId": card.ID,
	})
}

// Update handles PUT /api/cards/{cardID}. Admin only; replaces the
// card's content fields and category.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathID(r, "cardID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req UpdateCardRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Russian and english words required")
		return
	}

	card, err := domain.NewCard(req.Russian, req.English, req.RussianExample, req.EnglishExample, req.CategoryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	card.ID = cardID

	if err := h.cards.UpdateContent(r.Context(), card); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Card not found")
			return
		}
		slog.Error("failed to update card", "error", err, "card_id", cardID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// UpdateProgress handles PUT /api/cards/{cardID}/progress. Available to
// every authenticated user regardless of admin status; the upsert is
// idempotent per (user, card).
func (h *CardHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID required")
		return
	}

	cardID, err := getPathID(r, "cardID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req UpdateProgressRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Learned == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "learned flag required")
		return
	}

	if err := h.progress.Upsert(r.Context(), userID, cardID, *req.Learned); err != nil {
		slog.Error("failed to update progress",
			"error", err, "user_id", userID, "card_id", cardID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Delete handles DELETE /api/cards/{cardID}. Admin only; cascades
// memberships and progress before the card row.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, err := getPathID(r, "cardID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.cards.Delete(r.Context(), cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Card not found")
			return
		}
		slog.Error("failed to delete card", "error", err, "card_id", cardID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
