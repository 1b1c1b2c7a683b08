package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface using a
// PostgreSQL database as the storage backend.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface.
func NewCategoryStore(db store.DBTX, logger *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*CategoryStore)(nil)

// ListByUser implements store.CategoryStore.ListByUser.
func (s *CategoryStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, color, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list categories",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.Color, &cat.CreatedAt); err != nil {
			return nil, MapError(err)
		}
		categories = append(categories, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return categories, nil
}

// Create implements store.CategoryStore.Create.
// Returns store.ErrCategoryExists if the owner already has a category
// with the same name.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO categories (user_id, name, color, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		category.UserID,
		category.Name,
		category.Color,
		category.CreatedAt,
	).Scan(&category.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("category already exists",
				slog.Int64("user_id", category.UserID),
				slog.String("name", category.Name))
			return store.ErrCategoryExists
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.Int64("user_id", category.UserID))
		return MapError(err)
	}

	log.Info("category created",
		slog.Int64("category_id", category.ID),
		slog.Int64("user_id", category.UserID))
	return nil
}

// CreateDefaults implements store.CategoryStore.CreateDefaults.
// Runs in the caller's transaction when reached through WithTx, so a
// failed seed rolls back the registration as a whole.
func (s *CategoryStore) CreateDefaults(ctx context.Context, userID int64) error {
	for _, cat := range domain.DefaultCategories(userID) {
		if err := s.Create(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}

// WithTx implements store.CategoryStore.WithTx.
func (s *CategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &CategoryStore{db: tx, logger: s.logger}
}
