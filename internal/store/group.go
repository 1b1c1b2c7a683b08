package store

import (
	"context"

	"github.com/slovocards/slovocards-api/internal/domain"
)

// GroupStore defines the interface for card group persistence.
type GroupStore interface {
	// ListSummaries returns all groups with their card counts,
	// newest first.
	ListSummaries(ctx context.Context) ([]*domain.GroupSummary, error)

	// Create saves a new group and fills in its generated ID.
	Create(ctx context.Context, group *domain.Group) error

	// Update replaces the group's name, description and color.
	// Returns ErrGroupNotFound if the group does not exist.
	Update(ctx context.Context, group *domain.Group) error

	// Delete removes a group and its memberships in one transaction.
	// Cards and progress rows are untouched.
	Delete(ctx context.Context, groupID int64) error

	// AddCards attaches the given cards to the group. Memberships that
	// already exist are skipped, so the call is idempotent.
	AddCards(ctx context.Context, groupID int64, cardIDs []int64) error

	// RemoveCard detaches a single card from the group.
	RemoveCard(ctx context.Context, groupID, cardID int64) error
}
