package mocks

import (
	"context"
	"database/sql"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing.
type MockCategoryStore struct {
	ListByUserFn     func(ctx context.Context, userID int64) ([]*domain.Category, error)
	CreateFn         func(ctx context.Context, category *domain.Category) error
	CreateDefaultsFn func(ctx context.Context, userID int64) error

	// Data for the default implementation
	Categories []*domain.Category
	LastID     int64

	// SeededUserIDs records CreateDefaults calls.
	SeededUserIDs []int64
}

// NewMockCategoryStore creates a mock store with initialized defaults.
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{}
}

// ListByUser implements the store.CategoryStore interface.
func (m *MockCategoryStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Category, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var out []*domain.Category
	for _, c := range m.Categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Create implements the store.CategoryStore interface.
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	for _, c := range m.Categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return store.ErrCategoryExists
		}
	}

	m.LastID++
	category.ID = m.LastID
	m.Categories = append(m.Categories, category)
	return nil
}

// CreateDefaults implements the store.CategoryStore interface.
func (m *MockCategoryStore) CreateDefaults(ctx context.Context, userID int64) error {
	if m.CreateDefaultsFn != nil {
		return m.CreateDefaultsFn(ctx, userID)
	}

	m.SeededUserIDs = append(m.SeededUserIDs, userID)
	for _, c := range domain.DefaultCategories(userID) {
		if err := m.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// WithTx implements the store.CategoryStore interface.
func (m *MockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return m
}

var _ store.CategoryStore = (*MockCategoryStore)(nil)
