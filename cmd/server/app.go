package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slovocards/slovocards-api/internal/config"
	"github.com/slovocards/slovocards-api/internal/platform/gemini"
	"github.com/slovocards/slovocards-api/internal/platform/logger"
	"github.com/slovocards/slovocards-api/internal/platform/postgres"
	"github.com/slovocards/slovocards-api/internal/service"
	"github.com/slovocards/slovocards-api/internal/service/auth"
	"github.com/slovocards/slovocards-api/internal/store"
	"github.com/slovocards/slovocards-api/internal/translation"
)

// application holds the composed dependencies of the running server.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	db            *sql.DB
	userStore     store.UserStore
	adminStore    store.AdminStore
	categoryStore store.CategoryStore
	cardStore     store.CardStore
	groupStore    store.GroupStore
	progressStore store.ProgressStore
	userService   *service.UserService
	tokenService  auth.TokenService // nil when no JWT secret is configured
	translator    translation.Translator
}

// newApplication loads configuration, connects the database, applies
// migrations and wires the services.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"tokens_enabled", cfg.Auth.JWTSecret != "",
		"translation_enabled", cfg.LLM.GeminiAPIKey != "")

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		return nil, err
	}

	app := &application{
		config:        cfg,
		logger:        appLogger,
		db:            db,
		userStore:     postgres.NewUserStore(db, appLogger),
		adminStore:    postgres.NewAdminStore(db, appLogger),
		categoryStore: postgres.NewCategoryStore(db, appLogger),
		cardStore:     postgres.NewCardStore(db, appLogger),
		groupStore:    postgres.NewGroupStore(db, appLogger),
		progressStore: postgres.NewProgressStore(db, appLogger),
	}

	hasher := auth.NewBcryptHasher()
	app.userService = service.NewUserService(
		db,
		app.userStore,
		app.adminStore,
		app.categoryStore,
		hasher,
		hasher,
		appLogger,
	)

	if cfg.Auth.JWTSecret != "" {
		app.tokenService, err = auth.NewTokenService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to create token service: %w", err)
		}
	}

	translator, err := gemini.NewTranslator(ctx, appLogger, cfg.LLM)
	switch {
	case err == nil:
		app.translator = translator
	case errors.Is(err, translation.ErrNotConfigured):
		// The translate endpoint reports the missing key per request.
		appLogger.Warn("translation disabled: no API key configured")
	default:
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}

	return app, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
