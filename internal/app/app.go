package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hit-reports/internal/events"
	internalhttp "hit-reports/internal/http"
	"hit-reports/internal/ingestors"
	"hit-reports/internal/providers/browsers"
	"hit-reports/internal/providers/loggedin"
	"hit-reports/internal/reports"
	"hit-reports/internal/shared/configs"
	"hit-reports/internal/shared/filestorages"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/stores"
	"hit-reports/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	hitBuffer        *ingestors.HitBuffer
	windowScheduler  *ingestors.WindowScheduler
	reportDispatcher streams.ReportDispatcher
	subscribers      *streams.SubscriberRegistry

	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance. Composition is explicit and
// happens once at startup; a misconfigured provider list fails here, before
// any hit is accepted.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "hit-reports").
		Logger()

	// Initialize the document store
	fileStorage, err := filestorages.NewFileStorage(config.Storage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	database := config.Storage.Database
	hitStore := stores.NewHitStore(fileStorage, database)
	summaryStore := stores.NewSummaryStore(fileStorage, database)
	loggedInStore := stores.NewLoggedInReportStore(fileStorage, database)
	browserStore := stores.NewBrowserReportStore(fileStorage, database)

	// Initialize the push stream
	reportQueue := streams.NewPartitionedQueue[events.ReportEvent]()
	subscribers := streams.NewSubscriberRegistry()
	reportPublisher := streams.NewReportPublisher(reportQueue)
	dispatcherLogger := appLogger.With().Str(loggers.FieldComponent, "dispatcher").Logger()
	reportDispatcher := streams.NewReportDispatcher(reportQueue, subscribers, dispatcherLogger)

	// Initialize providers and the report engine
	loggedInProvider := loggedin.New(
		loggedInStore,
		reportPublisher,
		config.Reports.LogoutPath,
		time.Duration(config.Reports.InactivityMinutes)*time.Minute,
	)
	browsersProvider := browsers.New(browserStore, config.Reports.BrowserMinHits)

	registry, err := reports.NewRegistry(
		[]reports.Provider{loggedInProvider, browsersProvider},
		config.Reports.Providers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider registry: %w", err)
	}
	engine := reports.NewEngine(registry, hitStore, summaryStore)
	facade := reports.NewFacade(registry)

	// Initialize the ingestion pipeline
	ingestLogger := appLogger.With().Str(loggers.FieldComponent, "ingest").Logger()
	bufferDuration := time.Duration(config.Ingest.BufferSeconds) * time.Second
	schedulerDuration := time.Duration(config.Scheduler.DurationSeconds) * time.Second
	if schedulerDuration <= 0 {
		schedulerDuration = 5 * bufferDuration
	}
	windowScheduler := ingestors.NewWindowScheduler(engine, ingestLogger, config.Scheduler.Count, schedulerDuration)
	hitBuffer := ingestors.NewHitBuffer(hitStore, windowScheduler, ingestLogger, config.Ingest.BufferCount, bufferDuration)
	hitService := ingestors.NewHitService(hitBuffer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(hitService, facade, httpLogger)

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
		config:           config,
		appLogger:        appLogger,
		server:           server,
		hitBuffer:        hitBuffer,
		windowScheduler:  windowScheduler,
		reportDispatcher: reportDispatcher,
		subscribers:      subscribers,
	}, nil
}

// Subscribers exposes the push registry so transport adapters can attach
// host-keyed report subscribers.
func (app *App) Subscribers() *streams.SubscriberRegistry {
	return app.subscribers
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting hit-reports service on port %d (log_level=%s, storage_root_dir=%s, database=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.RootDir,
			app.config.Storage.Database)

	// start the push dispatcher
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.reportDispatcher.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server so no new hits arrive
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Flush buffered hits and pending window timestamps
	app.hitBuffer.Close()
	app.windowScheduler.Close()
	app.appLogger.Info().Msg("Ingestion buffers flushed")

	// 3) Stop the push dispatcher and drop subscribers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}
	app.reportDispatcher.Stop()
	app.subscribers.Close()
	app.appLogger.Info().Msg("Report dispatcher stopped")

	return nil
}
