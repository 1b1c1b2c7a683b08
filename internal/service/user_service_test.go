package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/mocks"
	"github.com/slovocards/slovocards-api/internal/service/auth"
	"github.com/slovocards/slovocards-api/internal/store"
)

type userServiceFixture struct {
	db         *sql.DB
	dbMock     sqlmock.Sqlmock
	users      *mocks.MockUserStore
	admins     *mocks.MockAdminStore
	categories *mocks.MockCategoryStore
	hasher     *mocks.MockPasswordHasher
	verifier   *mocks.MockPasswordVerifier
	service    *UserService
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &userServiceFixture{
		db:         db,
		dbMock:     dbMock,
		users:      mocks.NewMockUserStore(),
		admins:     mocks.NewMockAdminStore(),
		categories: mocks.NewMockCategoryStore(),
		hasher:     &mocks.MockPasswordHasher{},
		verifier:   &mocks.MockPasswordVerifier{},
	}
	f.service = NewUserService(db, f.users, f.admins, f.categories, f.hasher, f.verifier, nil)
	return f
}

func TestRegister_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectCommit()

	identity, err := f.service.Register(context.Background(), "  anna  ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "anna", identity.Username)
	assert.False(t, identity.IsAdmin)
	assert.NotZero(t, identity.UserID)

	// The stored user carries only the hash
	stored := f.users.Users["anna"]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.Equal(t, "hashed:secret123", stored.HashedPassword)

	// Default categories are seeded for the new user
	require.Len(t, f.categories.SeededUserIDs, 1)
	assert.Equal(t, identity.UserID, f.categories.SeededUserIDs[0])

	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newUserServiceFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	f.users.Users["anna"] = &domain.User{ID: 1, Username: "anna", HashedPassword: "x"}

	_, err := f.service.Register(context.Background(), "anna", "secret123")
	assert.ErrorIs(t, err, store.ErrUsernameExists)

	// No categories seeded when the user insert fails
	assert.Empty(t, f.categories.SeededUserIDs)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestRegister_EmptyUsername(t *testing.T) {
	f := newUserServiceFixture(t)

	_, err := f.service.Register(context.Background(), "   ", "secret123")
	assert.ErrorIs(t, err, domain.ErrEmptyUsername)
}

func TestRegister_CategorySeedFailureRollsBack(t *testing.T) {
	f := newUserServiceFixture(t)
	f.dbMock.ExpectBegin()
	f.dbMock.ExpectRollback()

	seedErr := errors.New("seed failed")
	f.categories.CreateDefaultsFn = func(ctx context.Context, userID int64) error {
		return seedErr
	}

	_, err := f.service.Register(context.Background(), "anna", "secret123")
	assert.ErrorIs(t, err, seedErr)
	assert.NoError(t, f.dbMock.ExpectationsWereMet())
}

func TestLogin_UserSuccess(t *testing.T) {
	f := newUserServiceFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = true

	identity, err := f.service.Login(context.Background(), "anna", "secret123")
	require.NoError(t, err)

	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "anna", identity.Username)
	assert.False(t, identity.IsAdmin)
	assert.Equal(t, "$2a$10$hash", f.verifier.CompareCalledWith.HashedPassword)
	assert.Equal(t, "secret123", f.verifier.CompareCalledWith.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	f.users.Users["anna"] = &domain.User{ID: 7, Username: "anna", HashedPassword: "$2a$10$hash"}
	f.verifier.ShouldSucceed = false

	_, err := f.service.Login(context.Background(), "anna", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUsername(t *testing.T) {
	f := newUserServiceFixture(t)

	_, err := f.service.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_AdminSuccess(t *testing.T) {
	f := newUserServiceFixture(t)
	f.admins.Admins["boss"] = &domain.Admin{ID: 1, Username: "boss", HashedPassword: "$2a$10$adminhash"}
	f.verifier.ShouldSucceed = true

	identity, err := f.service.Login(context.Background(), "boss", "secret123")
	require.NoError(t, err)

	assert.True(t, identity.IsAdmin)
	assert.Equal(t, int64(1), identity.UserID)
	// No password adoption for a provisioned admin
	assert.Empty(t, f.admins.UpdatedPasswords)
}

func TestLogin_AdminWrongPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	f.admins.Admins["boss"] = &domain.Admin{ID: 1, Username: "boss", HashedPassword: "$2a$10$adminhash"}
	f.verifier.ShouldSucceed = false

	_, err := f.service.Login(context.Background(), "boss", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_AdminSentinelAdoptsPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	f.admins.Admins["boss"] = &domain.Admin{
		ID:             1,
		Username:       "boss",
		HashedPassword: domain.SentinelPasswordHash,
	}
	// The verifier must not be consulted on the sentinel path
	f.verifier.ShouldSucceed = false

	identity, err := f.service.Login(context.Background(), "boss", "chosen-password")
	require.NoError(t, err)

	assert.True(t, identity.IsAdmin)
	assert.Equal(t, 0, f.verifier.CompareCallCount)

	// The caller's password was hashed and stored
	assert.Equal(t, "chosen-password", f.hasher.HashCalledWith)
	assert.Equal(t, "hashed:chosen-password", f.admins.UpdatedPasswords[1])
	assert.Equal(t, "hashed:chosen-password", f.admins.Admins["boss"].HashedPassword)

	// Subsequent logins verify against the adopted hash
	f.verifier.ShouldSucceed = false
	_, err = f.service.Login(context.Background(), "boss", "something-else")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, 1, f.verifier.CompareCallCount)
}

func TestLogin_AdminShadowsUser(t *testing.T) {
	f := newUserServiceFixture(t)
	f.admins.Admins["anna"] = &domain.Admin{ID: 1, Username: "anna", HashedPassword: "$2a$10$adminhash"}
	f.users.Users["anna"] = &domain.User{ID: 9, Username: "anna", HashedPassword: "$2a$10$userhash"}
	f.verifier.ShouldSucceed = true

	identity, err := f.service.Login(context.Background(), "anna", "secret123")
	require.NoError(t, err)

	// The admin row wins over the user row with the same username
	assert.True(t, identity.IsAdmin)
	assert.Equal(t, int64(1), identity.UserID)
}
