package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hbnb/hbnb-api/internal/config"
	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/hbnb/hbnb-api/internal/platform/memory"
	"github.com/hbnb/hbnb-api/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	eventEmitter *events.InMemoryEventEmitter
	facade       service.Facade
}

// newApplication wires the in-memory repositories, the audit event emitter
// and the facade. State lives for the lifetime of the process.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	app.facade = service.NewFacade(service.Repositories{
		Users:     memory.NewUserRepository(),
		Places:    memory.NewPlaceRepository(),
		Reviews:   memory.NewReviewRepository(),
		Amenities: memory.NewAmenityRepository(),
	}, app.eventEmitter, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
