package mocks

import (
	"context"
	"database/sql"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ListAccountsFn  func(ctx context.Context) ([]*domain.AccountSummary, error)

	// Data for the default implementation
	Users      map[string]*domain.User
	Accounts   []*domain.AccountSummary
	LastUserID int64
}

// NewMockUserStore creates a mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{Users: make(map[string]*domain.User)}
}

// Create implements the store.UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	m.LastUserID++
	user.ID = m.LastUserID
	m.Users[user.Username] = user
	return nil
}

// GetByUsername implements the store.UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ListAccounts implements the store.UserStore interface.
func (m *MockUserStore) ListAccounts(ctx context.Context) ([]*domain.AccountSummary, error) {
	if m.ListAccountsFn != nil {
		return m.ListAccountsFn(ctx)
	}
	return m.Accounts, nil
}

// WithTx implements the store.UserStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

var _ store.UserStore = (*MockUserStore)(nil)

// MockAdminStore implements store.AdminStore for testing.
type MockAdminStore struct {
	GetByUsernameFn  func(ctx context.Context, username string) (*domain.Admin, error)
	UpdatePasswordFn func(ctx context.Context, id int64, hashedPassword string) error

	// Data for the default implementation
	Admins map[string]*domain.Admin

	// UpdatedPasswords records UpdatePassword calls by admin ID.
	UpdatedPasswords map[int64]string
}

// NewMockAdminStore creates a mock store with initialized defaults.
func NewMockAdminStore() *MockAdminStore {
	return &MockAdminStore{
		Admins:           make(map[string]*domain.Admin),
		UpdatedPasswords: make(map[int64]string),
	}
}

// GetByUsername implements the store.AdminStore interface.
func (m *MockAdminStore) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	admin, exists := m.Admins[username]
	if !exists {
		return nil, store.ErrAdminNotFound
	}
	return admin, nil
}

// UpdatePassword implements the store.AdminStore interface.
func (m *MockAdminStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, id, hashedPassword)
	}

	m.UpdatedPasswords[id] = hashedPassword
	for _, admin := range m.Admins {
		if admin.ID == id {
			admin.HashedPassword = hashedPassword
			return nil
		}
	}
	return store.ErrAdminNotFound
}

var _ store.AdminStore = (*MockAdminStore)(nil)
