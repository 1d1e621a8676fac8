package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/dashboard"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/transport/middleware"
	"github.com/frahmantamala/budget-tracker/internal/transport/swagger"
	"github.com/frahmantamala/budget-tracker/internal/user"
	"github.com/go-chi/chi"
)

// Handlers bundles every module handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	Category  *category.Handler
	Expense   *expense.Handler
	Budget    *budget.Handler
	Dashboard *dashboard.Handler
}

// RegisterAllRoutes wires the full API surface under /api/v1. Swagger
// and the OpenAPI document live at the root, outside the API prefix.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.User.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// everything below carries an authenticated identity
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireAdmin)
				ar.Get("/users", h.User.ListUsers)
			})

			pr.Route("/categories", func(cr chi.Router) {
				cr.Get("/", h.Category.GetCategories)
				cr.Post("/", h.Category.CreateCategory)
			})

			pr.Route("/expenses", func(er chi.Router) {
				er.Post("/", h.Expense.CreateExpense)
				er.Get("/", h.Expense.ListExpenses)
				er.Get("/{id}", h.Expense.GetExpense)
				er.Put("/{id}", h.Expense.UpdateExpense)
				er.Patch("/{id}/toggle", h.Expense.ToggleExpense)
				er.Delete("/{id}", h.Expense.DeleteExpense)
			})

			pr.Route("/budgets", func(br chi.Router) {
				br.Post("/", h.Budget.CreateBudget)
				br.Get("/", h.Budget.ListBudgets)
				br.Get("/{id}", h.Budget.GetBudget)
				br.Put("/{id}", h.Budget.UpdateBudget)
				br.Delete("/{id}", h.Budget.DeleteBudget)
			})

			pr.Get("/dashboard", h.Dashboard.GetDashboard)
		})
	})
}
