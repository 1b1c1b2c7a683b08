package mocks

import (
	"context"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// MockGroupStore implements store.GroupStore for testing.
type MockGroupStore struct {
	ListSummariesFn func(ctx context.Context) ([]*domain.GroupSummary, error)
	CreateFn        func(ctx context.Context, group *domain.Group) error
	UpdateFn        func(ctx context.Context, group *domain.Group) error
	DeleteFn        func(ctx context.Context, groupID int64) error
	AddCardsFn      func(ctx context.Context, groupID int64, cardIDs []int64) error
	RemoveCardFn    func(ctx context.Context, groupID, cardID int64) error

	// Data for the default implementation
	Groups []*domain.GroupSummary
	LastID int64

	// Memberships records AddCards calls by group ID.
	Memberships map[int64][]int64
}

// NewMockGroupStore creates a mock store with initialized defaults.
func NewMockGroupStore() *MockGroupStore {
	return &MockGroupStore{Memberships: make(map[int64][]int64)}
}

// ListSummaries implements the store.GroupStore interface.
func (m *MockGroupStore) ListSummaries(ctx context.Context) ([]*domain.GroupSummary, error) {
	if m.ListSummariesFn != nil {
		return m.ListSummariesFn(ctx)
	}
	return m.Groups, nil
}

// Create implements the store.GroupStore interface.
func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, group)
	}

	m.LastID++
	group.ID = m.LastID
	m.Groups = append(m.Groups, &domain.GroupSummary{Group: *group})
	return nil
}

// Update implements the store.GroupStore interface.
func (m *MockGroupStore) Update(ctx context.Context, group *domain.Group) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, group)
	}

	for _, g := range m.Groups {
		if g.ID == group.ID {
			g.Name = group.Name
			g.Description = group.Description
			g.Color = group.Color
			return nil
		}
	}
	return store.ErrGroupNotFound
}

// Delete implements the store.GroupStore interface.
func (m *MockGroupStore) Delete(ctx context.Context, groupID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, groupID)
	}

	for i, g := range m.Groups {
		if g.ID == groupID {
			m.Groups = append(m.Groups[:i], m.Groups[i+1:]...)
			delete(m.Memberships, groupID)
			return nil
		}
	}
	return store.ErrGroupNotFound
}

// AddCards implements the store.GroupStore interface.
func (m *MockGroupStore) AddCards(ctx context.Context, groupID int64, cardIDs []int64) error {
	if m.AddCardsFn != nil {
		return m.AddCardsFn(ctx, groupID, cardIDs)
	}
	m.Memberships[groupID] = append(m.Memberships[groupID], cardIDs...)
	return nil
}

// RemoveCard implements the store.GroupStore interface.
func (m *MockGroupStore) RemoveCard(ctx context.Context, groupID, cardID int64) error {
	if m.RemoveCardFn != nil {
		return m.RemoveCardFn(ctx, groupID, cardID)
	}

	members := m.Memberships[groupID]
	for i, id := range members {
		if id == cardID {
			m.Memberships[groupID] = append(members[:i], members[i+1:]...)
			break
		}
	}
	return nil
}

var _ store.GroupStore = (*MockGroupStore)(nil)
