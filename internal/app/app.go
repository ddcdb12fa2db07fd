package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Storage layer
	store storage.Store

	// Event system for change notifications
	eventClient events.EventPublisher

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New opens the configured store and wires the board service on top of it.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := appConfig{}
	for _, opt := range opts {
		opt(&ac)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	store := ac.store
	if store == nil {
		var err error
		store, err = storage.Open(ctx, cfg.StorageOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
	}

	eventClient := ac.eventClient
	if eventClient == nil {
		eventClient = events.NewBus()
	}

	ac.logger.Debug("app initialized",
		"backend", cfg.Storage.Backend,
		"key", cfg.Storage.Key,
		"history_limit", cfg.History.Limit)

	return &App{
		store:       store,
		eventClient: eventClient,
		BoardService: boardservice.NewService(ctx, store,
			boardservice.WithEventPublisher(eventClient),
			boardservice.WithLogger(ac.logger),
			boardservice.WithWarningHandler(ac.onWarning),
			boardservice.WithHistoryLimit(cfg.History.Limit),
		),
	}, nil
}

// Events returns the publisher board changes are sent to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close releases the event publisher and the store
func (a *App) Close() error {
	return errors.Join(a.eventClient.Close(), a.store.Close())
}
