package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/store"
)

// AdminStore implements the store.AdminStore interface using a PostgreSQL
// database as the storage backend. Admin rows are provisioned out of band
// (see cmd/adminhash); this store only reads them and supports the
// first-login password adoption.
type AdminStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAdminStore creates a new PostgreSQL implementation of the AdminStore
// interface.
func NewAdminStore(db store.DBTX, logger *slog.Logger) *AdminStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminStore{
		db:     db,
		logger: logger.With(slog.String("component", "admin_store")),
	}
}

var _ store.AdminStore = (*AdminStore)(nil)

// GetByUsername implements store.AdminStore.GetByUsername.
// Returns store.ErrAdminNotFound if the admin does not exist.
func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = $1
	`

	var admin domain.Admin
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.HashedPassword,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAdminNotFound
		}
		log.Error("failed to get admin by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &admin, nil
}

// UpdatePassword implements store.AdminStore.UpdatePassword.
func (s *AdminStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = $1 WHERE id = $2`,
		hashedPassword, id,
	)
	if err != nil {
		log.Error("failed to update admin password",
			slog.String("error", err.Error()),
			slog.Int64("admin_id", id))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrAdminNotFound
	}

	log.Info("admin password updated", slog.Int64("admin_id", id))
	return nil
}
