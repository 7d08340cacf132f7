package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/stats"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
	"github.com/frahmantamala/finance-tracker/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Category    *category.Handler
	Transaction *transaction.Handler
	Budget      *budget.Handler
	Stats       *stats.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.User != nil {
			r.Post("/register", h.User.Register)
		}

		if h.Auth != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", h.Auth.Login)
				sr.Post("/refresh", h.Auth.RefreshToken)
				sr.Post("/logout", h.Auth.Logout)
			})

			// Everything below is per-user data and requires a valid token.
			r.Group(func(pr chi.Router) {
				pr.Use(h.Auth.AuthMiddleware)

				if h.User != nil {
					pr.Get("/profile", h.User.GetProfile)
				}

				if h.Category != nil {
					pr.Route("/categories", func(cr chi.Router) {
						cr.Get("/", h.Category.ListCategories)
						cr.Post("/", h.Category.CreateCategory)
						cr.Get("/{id}", h.Category.GetCategory)
						cr.Put("/{id}", h.Category.UpdateCategory)
						cr.Delete("/{id}", h.Category.DeleteCategory)
					})
				}

				if h.Transaction != nil {
					pr.Route("/transactions", func(tr chi.Router) {
						tr.Get("/", h.Transaction.ListTransactions)
						tr.Post("/", h.Transaction.CreateTransaction)
						tr.Get("/{id}", h.Transaction.GetTransaction)
						tr.Put("/{id}", h.Transaction.UpdateTransaction)
						tr.Delete("/{id}", h.Transaction.DeleteTransaction)
					})
				}

				if h.Budget != nil {
					pr.Route("/monthly-budgets", func(br chi.Router) {
						br.Get("/", h.Budget.ListBudgets)
						br.Post("/", h.Budget.CreateBudget)
						br.Get("/current-month", h.Budget.GetCurrentMonthBudget)
						br.Get("/{id}", h.Budget.GetBudget)
						br.Put("/{id}", h.Budget.UpdateBudget)
						br.Delete("/{id}", h.Budget.DeleteBudget)
					})
				}

				if h.Stats != nil {
					pr.Get("/stats", h.Stats.MonthlyStats)
				}
			})
		}
	})
}
