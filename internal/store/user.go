package store

import (
	"context"
	"database/sql"

	"github.com/slovocards/slovocards-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry
	// its hashed password.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains the hashed password for verification.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListAccounts returns per-user aggregate progress for the accounts
	// report, newest users first. Usernames present in the admins table
	// are excluded.
	ListAccounts(ctx context.Context) ([]*domain.AccountSummary, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}

// AdminStore defines the interface for admin identity persistence.
type AdminStore interface {
	// GetByUsername retrieves an admin by username.
	// Returns ErrAdminNotFound if the admin does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// UpdatePassword replaces the admin's stored password hash. Used by
	// the first-login bootstrap that adopts the caller's password when
	// the stored hash is still the sentinel value.
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}
