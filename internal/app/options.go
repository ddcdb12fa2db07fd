package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/events"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	store       storage.Store
	onWarning   boardservice.WarningHandler
}

// WithEventPublisher replaces the in-process event bus
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStore uses store instead of opening the configured backend.
// The App takes ownership and closes it.
func WithStore(store storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithWarningHandler receives storage warnings from the board service
func WithWarningHandler(fn boardservice.WarningHandler) Option {
	return func(cfg *appConfig) {
		cfg.onWarning = fn
	}
}
