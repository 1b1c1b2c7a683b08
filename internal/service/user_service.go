// Package service contains the application's business operations,
// composed from stores and platform clients.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/service/auth"
	"github.com/slovocards/slovocards-api/internal/store"
)

// Identity is the outcome of a successful register or login.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

// UserService implements registration and login. Login consults the admin
// table before the user table; a stored sentinel hash on the admin row
// adopts the caller's password on first login.
type UserService struct {
	db            *sql.DB
	userStore     store.UserStore
	adminStore    store.AdminStore
	categoryStore store.CategoryStore
	hasher        auth.PasswordHasher
	verifier      auth.PasswordVerifier
	logger        *slog.Logger
}

// NewUserService creates a UserService with the given dependencies.
// The *sql.DB is needed because registration writes the user and their
// default categories in a single transaction.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	adminStore store.AdminStore,
	categoryStore store.CategoryStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		db:            db,
		userStore:     userStore,
		adminStore:    adminStore,
		categoryStore: categoryStore,
		hasher:        hasher,
		verifier:      verifier,
		logger:        logger.With(slog.String("component", "user_service")),
	}
}

// Register creates a new user and seeds their default categories.
// Returns store.ErrUsernameExists if the username is taken.
func (s *UserService) Register(ctx context.Context, username, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.userStore.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.categoryStore.WithTx(tx).CreateDefaults(ctx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username))

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

// Login authenticates a username/password pair.
//
// The admin table is checked first. An admin row still carrying the
// sentinel hash accepts any password and adopts the caller's password as
// its own; afterwards only that password verifies. When no admin matches,
// the user table is consulted. Returns auth.ErrInvalidCredentials on any
// mismatch.
func (s *UserService) Login(ctx context.Context, username, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	admin, err := s.adminStore.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return s.loginAdmin(ctx, admin, password)
	case errors.Is(err, store.ErrAdminNotFound):
		// Fall through to the user table.
	default:
		return nil, err
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("username", username))
		return nil, auth.ErrInvalidCredentials
	}

	return &Identity{UserID: user.ID, Username: user.Username}, nil
}

func (s *UserService) loginAdmin(ctx context.Context, admin *domain.Admin, password string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if admin.PasswordIsSentinel() {
		// First-login bootstrap: the caller's password becomes the
		// admin password. Flagged in the data model notes as a possible
		// backdoor; kept for contract compatibility.
		hashed, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := s.adminStore.UpdatePassword(ctx, admin.ID, hashed); err != nil {
			return nil, err
		}
		log.Warn("admin password adopted on first login",
			slog.Int64("admin_id", admin.ID),
			slog.String("username", admin.Username))
		return &Identity{UserID: admin.ID, Username: admin.Username, IsAdmin: true}, nil
	}

	if err := s.verifier.Compare(admin.HashedPassword, password); err != nil {
		log.Debug("admin password mismatch", slog.String("username", admin.Username))
		return nil, auth.ErrInvalidCredentials
	}

	return &Identity{UserID: admin.ID, Username: admin.Username, IsAdmin: true}, nil
}
