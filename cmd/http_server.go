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

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	authPostgres "github.com/frahmantamala/finance-tracker/internal/auth/postgres"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetPostgres "github.com/frahmantamala/finance-tracker/internal/budget/postgres"
	"github.com/frahmantamala/finance-tracker/internal/category"
	categoryPostgres "github.com/frahmantamala/finance-tracker/internal/category/postgres"
	"github.com/frahmantamala/finance-tracker/internal/stats"
	statsPostgres "github.com/frahmantamala/finance-tracker/internal/stats/postgres"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	transactionPostgres "github.com/frahmantamala/finance-tracker/internal/transaction/postgres"
	"github.com/frahmantamala/finance-tracker/internal/transport/rest"
	"github.com/frahmantamala/finance-tracker/internal/user"
	userPostgres "github.com/frahmantamala/finance-tracker/internal/user/postgres"
	"github.com/frahmantamala/finance-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
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
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	gormDB := deps.GormDB

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userPostgres.NewUserRepository(gormDB), cfg.Security.BCryptCost, deps.Logger)
	userHandler := user.NewHandler(userService)

	categoryService := category.NewService(categoryPostgres.NewCategoryRepository(gormDB), deps.Logger)
	categoryHandler := category.NewHandler(categoryService)

	transactionService := transaction.NewService(
		transactionPostgres.NewTransactionRepository(gormDB),
		transactionPostgres.NewCategoryChecker(gormDB),
		deps.Logger,
	)
	transactionHandler := transaction.NewHandler(transactionService, cfg.Pagination)

	budgetRepo := budgetPostgres.NewRepository(gormDB)
	budgetService := budget.NewService(budgetRepo, deps.Logger)
	budgetHandler := budget.NewHandler(budgetService, cfg.Pagination)

	statsService := stats.NewService(statsPostgres.NewRepository(gormDB), budgetRepo, deps.Logger)
	statsHandler := stats.NewHandler(statsService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, rest.Handlers{
		Auth:        authHandler,
		User:        userHandler,
		Category:    categoryHandler,
		Transaction: transactionHandler,
		Budget:      budgetHandler,
		Stats:       statsHandler,
	}, cfg.Server.AllowedOrigins, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB initializes the database connection
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

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
