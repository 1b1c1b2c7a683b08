package store

import (
	"context"
	"database/sql"

	"github.com/slovocards/slovocards-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// ListByUser returns the categories owned by the given user,
	// oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Category, error)

	// Create saves a new category and fills in its generated ID.
	// Returns ErrCategoryExists if the owner already has a category
	// with the same name.
	Create(ctx context.Context, category *domain.Category) error

	// CreateDefaults seeds the fixed starter categories for a newly
	// registered user.
	CreateDefaults(ctx context.Context, userID int64) error

	// WithTx returns a new CategoryStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
