package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/auth"
	authPostgres "github.com/frahmantamala/budget-tracker/internal/auth/postgres"
	"github.com/frahmantamala/budget-tracker/internal/budget"
	budgetPostgres "github.com/frahmantamala/budget-tracker/internal/budget/postgres"
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/budget-tracker/internal/category/postgres"
	"github.com/frahmantamala/budget-tracker/internal/dashboard"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	expensePostgres "github.com/frahmantamala/budget-tracker/internal/expense/postgres"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/frahmantamala/budget-tracker/internal/transport/rest"
	"github.com/frahmantamala/budget-tracker/internal/user"
	userPostgres "github.com/frahmantamala/budget-tracker/internal/user/postgres"
	"github.com/frahmantamala/budget-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	base := transport.NewBaseHandler(deps.Logger)
	security := deps.Config.Security

	tokens := auth.NewJWTTokenGenerator(
		security.AccessTokenSecret,
		security.RefreshTokenSecret,
		security.AccessTokenDuration,
		security.RefreshTokenDuration,
	)

	authService := auth.NewService(authPostgres.NewRepository(deps.GormDB), tokens, deps.Logger)
	userService := user.NewService(userPostgres.NewUserRepository(deps.GormDB), security.BCryptCost, deps.Logger)
	categoryService := category.NewService(categoryPostgres.NewCategoryRepository(deps.GormDB), deps.Logger)

	expenseRepo := expensePostgres.NewExpenseRepository(deps.GormDB)
	budgetRepo := budgetPostgres.NewBudgetRepository(deps.GormDB)

	expenseService := expense.NewService(expenseRepo, categoryService, deps.Logger)
	budgetService := budget.NewService(budgetRepo, categoryService, deps.Logger)
	dashboardService := dashboard.NewService(expenseRepo, budgetRepo, deps.Logger)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(base, authService),
		User:      user.NewHandler(base, userService),
		Category:  category.NewHandler(base, categoryService),
		Expense:   expense.NewHandler(base, expenseService),
		Budget:    budget.NewHandler(base, budgetService),
		Dashboard: dashboard.NewHandler(base, dashboardService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Config.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over db connection: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.L(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx-backed connection pool used by both the raw
// health check and the gorm session.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
