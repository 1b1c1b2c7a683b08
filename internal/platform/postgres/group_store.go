package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/store"
)

// GroupStore implements the store.GroupStore interface using a PostgreSQL
// database as the storage backend.
type GroupStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewGroupStore creates a new PostgreSQL implementation of the GroupStore
// interface.
func NewGroupStore(db *sql.DB, logger *slog.Logger) *GroupStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GroupStore{
		db:     db,
		logger: logger.With(slog.String("component", "group_store")),
	}
}

var _ store.GroupStore = (*GroupStore)(nil)

// ListSummaries implements store.GroupStore.ListSummaries.
func (s *GroupStore) ListSummaries(ctx context.Context) ([]*domain.GroupSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT g.id, g.name, COALESCE(g.description, ''), g.color, g.created_at,
		       COUNT(cg.card_id) AS card_count
		FROM groups g
		LEFT JOIN card_groups cg ON g.id = cg.group_id
		GROUP BY g.id, g.name, g.description, g.color, g.created_at
		ORDER BY g.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list groups", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var groups []*domain.GroupSummary
	for rows.Next() {
		var g domain.GroupSummary
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Color, &g.CreatedAt, &g.CardCount); err != nil {
			return nil, MapError(err)
		}
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return groups, nil
}

// Create implements store.GroupStore.Create.
func (s *GroupStore) Create(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO groups (name, description, color, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		group.Name,
		group.Description,
		group.Color,
		group.CreatedAt,
	).Scan(&group.ID)

	if err != nil {
		log.Error("failed to create group", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("group created",
		slog.Int64("group_id", group.ID),
		slog.String("name", group.Name))
	return nil
}

// Update implements store.GroupStore.Update.
// Returns store.ErrGroupNotFound if the group does not exist.
func (s *GroupStore) Update(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE groups SET name = $1, description = $2, color = $3 WHERE id = $4`,
		group.Name, group.Description, group.Color, group.ID,
	)
	if err != nil {
		log.Error("failed to update group",
			slog.String("error", err.Error()),
			slog.Int64("group_id", group.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrGroupNotFound
	}

	return nil
}

// Delete implements store.GroupStore.Delete.
// Memberships go first, then the group row, in one transaction.
func (s *GroupStore) Delete(ctx context.Context, groupID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM card_groups WHERE group_id = $1`, groupID); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, groupID)
		if err != nil {
			return MapError(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return MapError(err)
		}
		if affected == 0 {
			return store.ErrGroupNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("group deleted", slog.Int64("group_id", groupID))
	return nil
}

// AddCards implements store.GroupStore.AddCards.
// Existing memberships are skipped via ON CONFLICT DO NOTHING, so the
// batch is idempotent. The batch runs in one transaction.
func (s *GroupStore) AddCards(ctx context.Context, groupID int64, cardIDs []int64) error {
	if len(cardIDs) == 0 {
		return nil
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO card_groups (card_id, group_id)
			VALUES ($1, $2)
			ON CONFLICT (card_id, group_id) DO NOTHING
		`
		for _, cardID := range cardIDs {
			if _, err := tx.ExecContext(ctx, query, cardID, groupID); err != nil {
				return MapError(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("cards added to group",
		slog.Int64("group_id", groupID),
		slog.Int("card_count", len(cardIDs)))
	return nil
}

// RemoveCard implements store.GroupStore.RemoveCard.
func (s *GroupStore) RemoveCard(ctx context.Context, groupID, cardID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM card_groups WHERE card_id = $1 AND group_id = $2`,
		cardID, groupID,
	); err != nil {
		log.Error("failed to remove card from group",
			slog.String("error", err.Error()),
			slog.Int64("group_id", groupID),
			slog.Int64("card_id", cardID))
		return MapError(err)
	}

	return nil
}
