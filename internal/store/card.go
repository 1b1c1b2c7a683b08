package store

import (
	"context"

	"github.com/slovocards/slovocards-api/internal/domain"
)

// CardStore defines the interface for card persistence.
type CardStore interface {
	// List returns all cards, newest first, each joined with the given
	// user's learned flag and the card's category metadata.
	List(ctx context.Context, userID int64) ([]*domain.CardWithProgress, error)

	// ListByGroup returns the cards belonging to the given group,
	// newest first, joined the same way as List.
	ListByGroup(ctx context.Context, userID, groupID int64) ([]*domain.CardWithProgress, error)

	// Create saves a new card and fills in its generated ID.
	Create(ctx context.Context, card *domain.Card) error

	// UpdateContent replaces a card's word fields, examples and category.
	// Returns ErrCardNotFound if the card does not exist.
	UpdateContent(ctx context.Context, card *domain.Card) error

	// Delete removes a card together with its group memberships and all
	// users' progress rows, in one transaction.
	Delete(ctx context.Context, cardID int64) error
}

// ProgressStore defines the interface for per-user learning progress.
type ProgressStore interface {
	// Upsert records whether the user has learned the card. At most one
	// row exists per (user, card) pair; repeated identical calls are
	// idempotent.
	Upsert(ctx context.Context, userID, cardID int64, learned bool) error
}
