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

// GroupHandler handles card group management: listing with card counts,
// creation, updates, membership and deletion.
type GroupHandler struct {
	groups    store.GroupStore
	validator *validator.Validate
}

// NewGroupHandler creates a new GroupHandler with the given dependencies.
func NewGroupHandler(groups store.GroupStore) *GroupHandler {
	return &GroupHandler{
		groups:    groups,
		validator: validator.New(),
	}
}

// List handles GET /api/groups. Returns group summaries with card
// counts, newest first.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.ListSummaries(r.Context())
	if err != nil {
		slog.Error("failed to list groups", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list groups")
		return
	}

	if groups == nil {
		groups = []*domain.GroupSummary{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"groups": groups,
	})
}

// Create handles POST /api/groups. Admin only.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := domain.NewGroup(req.Name, req.Description, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.groups.Create(r.Context(), group); err != nil {
		slog.Error("failed to create group", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create group")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"groupId": group.ID,
	})
}

// Update handles PUT /api/groups/{groupID}. Admin only.
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "groupID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid group ID")
		return
	}

	var req UpdateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := domain.NewGroup(req.Name, req.Description, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	group.ID = groupID

	if err := h.groups.Update(r.Context(), group); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Group not found")
			return
		}
		slog.Error("failed to update group", "error", err, "group_id", groupID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update group")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// AddCards handles POST /api/groups/{groupID}/cards. Admin only;
// duplicate memberships are skipped, so retries are safe.
func (h *GroupHandler) AddCards(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "groupID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid group ID")
		return
	}

	var req AddCardsToGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "cardIds required")
		return
	}

	if err := h.groups.AddCards(r.Context(), groupID, req.CardIDs); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// RemoveCard handles DELETE /api/groups/{groupID}/cards/{cardID}.
// Admin only; detaches a single card from the group.
func (h *GroupHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "groupID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid group ID")
		return
	}
	cardID, err := getPathID(r, "cardID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.groups.RemoveCard(r.Context(), groupID, cardID); err != nil {
		slog.Error("failed to remove card from group",
			"error", err, "group_id", groupID, "card_id", cardID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to remove card from group")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Delete handles DELETE /api/groups/{groupID}. Admin only; memberships
// cascade with the group. Cards and progress survive.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	groupID, err := getPathID(r, "groupID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid group ID")
		return
	}

	if err := h.groups.Delete(r.Context(), groupID); err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Group not found")
			return
		}
		slog.Error("failed to delete group", "error", err, "group_id", groupID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete group")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}
