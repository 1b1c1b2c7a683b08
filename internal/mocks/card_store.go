package mocks

import (
	"context"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// MockCardStore implements store.CardStore for testing.
type MockCardStore struct {
	ListFn          func(ctx context.Context, userID int64) ([]*domain.CardWithProgress, error)
	ListByGroupFn   func(ctx context.Context, userID, groupID int64) ([]*domain.CardWithProgress, error)
	CreateFn        func(ctx context.Context, card *domain.Card) error
	UpdateContentFn func(ctx context.Context, card *domain.Card) error
	DeleteFn        func(ctx context.Context, cardID int64) error

	// Data for the default implementation
	Cards  []*domain.CardWithProgress
	LastID int64

	// DeletedIDs records Delete calls.
	DeletedIDs []int64
}

// NewMockCardStore creates a mock store with initialized defaults.
func NewMockCardStore() *MockCardStore {
	return &MockCardStore{}
}

// List implements the store.CardStore interface.
func (m *MockCardStore) List(ctx context.Context, userID int64) ([]*domain.CardWithProgress, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}
	return m.Cards, nil
}

// ListByGroup implements the store.CardStore interface.
func (m *MockCardStore) ListByGroup(ctx context.Context, userID, groupID int64) ([]*domain.CardWithProgress, error) {
	if m.ListByGroupFn != nil {
		return m.ListByGroupFn(ctx, userID, groupID)
	}
	return m.Cards, nil
}

// Create implements the store.CardStore interface.
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}

	m.LastID++
	card.ID = m.LastID
	return nil
}

// UpdateContent implements the store.CardStore interface.
func (m *MockCardStore) UpdateContent(ctx context.Context, card *domain.Card) error {
	if m.UpdateContentFn != nil {
		return m.UpdateContentFn(ctx, card)
	}
	return nil
}

// Delete implements the store.CardStore interface.
func (m *MockCardStore) Delete(ctx context.Context, cardID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, cardID)
	}
	m.DeletedIDs = append(m.DeletedIDs, cardID)
	return nil
}

var _ store.CardStore = (*MockCardStore)(nil)

// MockProgressStore implements store.ProgressStore for testing.
type MockProgressStore struct {
	UpsertFn func(ctx context.Context, userID, cardID int64, learned bool) error

	// Upserts records Upsert calls in order.
	Upserts []ProgressUpsert
}

// ProgressUpsert is one recorded Upsert call.
type ProgressUpsert struct {
	UserID  int64
	CardID  int64
	Learned bool
}

// NewMockProgressStore creates a mock store with initialized defaults.
func NewMockProgressStore() *MockProgressStore {
	return &MockProgressStore{}
}

// Upsert implements the store.ProgressStore interface.
func (m *MockProgressStore) Upsert(ctx context.Context, userID, cardID int64, learned bool) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, userID, cardID, learned)
	}
	m.Upserts = append(m.Upserts, ProgressUpsert{UserID: userID, CardID: cardID, Learned: learned})
	return nil
}

var _ store.ProgressStore = (*MockProgressStore)(nil)
