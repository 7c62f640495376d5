package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/config"
	"github.com/phrazzld/taskr-api/internal/platform/postgres"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/phrazzld/taskr-api/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// registry is private so tests can build several applications in one process.
	registry *prometheus.Registry

	tokens   auth.TokenService
	accounts service.AccountService
	tasks    service.TaskService
}

// newApplication wires stores, auth and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(collectors.NewGoCollector())
	app.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.registry.MustRegister(collectors.NewDBStatsCollector(db, "taskr"))

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	app.accounts, err = service.NewAccountService(userStore, hasher, app.tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}
	app.tasks, err = service.NewTaskService(taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases
// resources.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		app.cleanup()
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
