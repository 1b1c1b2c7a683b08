package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/store"
)

// CardStore implements the store.CardStore interface using a PostgreSQL
// database as the storage backend. It holds the root connection rather
// than a DBTX because card deletion runs a multi-statement cascade in
// its own transaction.
type CardStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewCardStore creates a new PostgreSQL implementation of the CardStore
// interface.
func NewCardStore(db *sql.DB, logger *slog.Logger) *CardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

var _ store.CardStore = (*CardStore)(nil)

// cardColumns is the shared SELECT list for card listings: the card, the
// caller's learned flag, and category metadata with NULLs tolerated.
const cardColumns = `
	c.id, c.russian, c.russian_example, c.english, c.english_example,
	COALESCE(up.is_learned, FALSE) AS is_learned,
	cat.id, cat.name, cat.color
`

// List implements store.CardStore.List.
func (s *CardStore) List(ctx context.Context, userID int64) ([]*domain.CardWithProgress, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		LEFT JOIN categories cat ON c.category_id = cat.id
		LEFT JOIN user_progress up ON c.id = up.card_id AND up.user_id = $1
		ORDER BY c.created_at DESC
	`
	return s.queryCards(ctx, query, userID)
}

// ListByGroup implements store.CardStore.ListByGroup.
func (s *CardStore) ListByGroup(ctx context.Context, userID, groupID int64) ([]*domain.CardWithProgress, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		INNER JOIN card_groups cg ON c.id = cg.card_id
		LEFT JOIN categories cat ON c.category_id = cat.id
		LEFT JOIN user_progress up ON c.id = up.card_id AND up.user_id = $1
		WHERE cg.group_id = $2
		ORDER BY c.created_at DESC
	`
	return s.queryCards(ctx, query, userID, groupID)
}

func (s *CardStore) queryCards(ctx context.Context, query string, args ...any) ([]*domain.CardWithProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list cards", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var cards []*domain.CardWithProgress
	for rows.Next() {
		var card domain.CardWithProgress
		if err := rows.Scan(
			&card.ID,
			&card.Russian,
			&card.RussianExample,
			&card.English,
			&card.EnglishExample,
			&card.Learned,
			&card.CategoryID,
			&card.CategoryName,
			&card.CategoryColor,
		); err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, &card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Create implements store.CardStore.Create.
func (s *CardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO cards (category_id, russian, english, russian_example, english_example, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		card.CategoryID,
		card.Russian,
		card.English,
		card.RussianExample,
		card.EnglishExample,
		card.CreatedAt,
	).Scan(&card.ID)

	if err != nil {
		log.Error("failed to create card", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("card created",
		slog.Int64("card_id", card.ID),
		slog.String("russian", card.Russian))
	return nil
}

// UpdateContent implements store.CardStore.UpdateContent.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *CardStore) UpdateContent(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE cards
		SET russian = $1, english = $2, russian_example = $3, english_example = $4, category_id = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		card.Russian,
		card.English,
		card.RussianExample,
		card.EnglishExample,
		card.CategoryID,
		card.ID,
	)
	if err != nil {
		log.Error("failed to update card",
			slog.String("error", err.Error()),
			slog.Int64("card_id", card.ID))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrCardNotFound
	}

	return nil
}

// Delete implements store.CardStore.Delete.
// Removes memberships, progress rows and the card itself in one
// transaction; the cascade either applies fully or not at all.
func (s *CardStore) Delete(ctx context.Context, cardID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM card_groups WHERE card_id = $1`, cardID); err != nil {
			return MapError(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM user_progress WHERE card_id = $1`, cardID); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, cardID)
		if err != nil {
			return MapError(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return MapError(err)
		}
		if affected == 0 {
			return store.ErrCardNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("card deleted", slog.Int64("card_id", cardID))
	return nil
}
