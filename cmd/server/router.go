package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/slovocards/slovocards-api/internal/api"
	apiMiddleware "github.com/slovocards/slovocards-api/internal/api/middleware"
	"github.com/slovocards/slovocards-api/internal/api/shared"
)

// setupRouter builds the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.CORS)

	identity := apiMiddleware.NewIdentityMiddleware(app.tokenService)
	r.Use(identity.Resolve)

	authHandler := api.NewAuthHandler(app.userService, app.tokenService)
	categoryHandler := api.NewCategoryHandler(app.categoryStore)
	cardHandler := api.NewCardHandler(app.cardStore, app.progressStore)
	groupHandler := api.NewGroupHandler(app.groupStore)
	accountsHandler := api.NewAccountsHandler(app.userStore)
	translateHandler := api.NewTranslateHandler(app.translator)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/translate", translateHandler.Translate)

		// Endpoints that need a resolved user
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireUser)

			r.Get("/categories", categoryHandler.List)
			r.Get("/cards", cardHandler.List)
			r.Get("/groups", groupHandler.List)
			r.Put("/cards/{cardID}/progress", cardHandler.UpdateProgress)
		})

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireAdmin)

			r.Post("/categories", categoryHandler.Create)

			r.Post("/cards", cardHandler.Create)
			r.Put("/cards/{cardID}", cardHandler.Update)
			r.Delete("/cards/{cardID}", cardHandler.Delete)

			r.Post("/groups", groupHandler.Create)
			r.Put("/groups/{groupID}", groupHandler.Update)
			r.Delete("/groups/{groupID}", groupHandler.Delete)
			r.Post("/groups/{groupID}/cards", groupHandler.AddCards)
			r.Delete("/groups/{groupID}/cards/{cardID}", groupHandler.RemoveCard)

			r.Get("/accounts", accountsHandler.List)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}
