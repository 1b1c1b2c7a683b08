package postgres

import (
	"context"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/store"
)

// ProgressStore implements the store.ProgressStore interface using a
// PostgreSQL database as the storage backend.
type ProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface.
func NewProgressStore(db store.DBTX, logger *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// Upsert implements store.ProgressStore.Upsert.
// The unique (user_id, card_id) constraint guarantees at most one row per
// pair; a conflict updates the learned flag in place.
func (s *ProgressStore) Upsert(ctx context.Context, userID, cardID int64, learned bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO user_progress (user_id, card_id, is_learned, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET is_learned = $3, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, userID, cardID, learned); err != nil {
		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int64("card_id", cardID))
		return MapError(err)
	}

	log.Debug("progress updated",
		slog.Int64("user_id", userID),
		slog.Int64("card_id", cardID),
		slog.Bool("learned", learned))
	return nil
}
