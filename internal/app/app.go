package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"traffic-analytics/internal/aggregators"
	internalhttp "traffic-analytics/internal/http"
	"traffic-analytics/internal/ingestors"
	"traffic-analytics/internal/shared/configs"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/shared/sqlitedb"
	"traffic-analytics/internal/stores"

	"golang.org/x/time/rate"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "traffic-analytics").
		Logger()

	// Open counter/reference database
	db, err := sqlitedb.Open(config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Stores
	customerStore := stores.NewCustomerStore(db)
	blacklistStore := stores.NewBlacklistStore(db)
	statStore := stores.NewHourlyStatStore(db)

	// Aggregation + query services
	hourlyAggregator := aggregators.NewHourlyAggregator(statStore)
	statsService := aggregators.NewStatsService(customerStore, statStore)

	// Ingestion service
	eventValidator := ingestors.NewEventValidator(customerStore, blacklistStore)
	ingestionService := ingestors.NewIngestionService(eventValidator, hourlyAggregator)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	ingestLimiter := rate.NewLimiter(rate.Limit(config.Ingest.RateLimitRPS), config.Ingest.RateLimitBurst)
	router := internalhttp.NewRouter(ingestionService, statsService, ingestLimiter, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		db:        db,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting traffic-analytics service on port %d (log_level=%s, database_path=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Database.Path)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Close the database handle
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("database close failed: %w", err)
	}
	app.appLogger.Info().Msg("Database closed")

	return nil
}
