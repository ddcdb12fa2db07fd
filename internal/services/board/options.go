package board

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/thenoetrevino/kanban/internal/events"
)

// Option is a functional option for configuring the board service
type Option func(*serviceConfig)

// serviceConfig holds the configuration for service initialization
type serviceConfig struct {
	eventClient  events.EventPublisher
	logger       *slog.Logger
	onWarning    WarningHandler
	newID        func() string
	historyLimit int
}

func defaultConfig() serviceConfig {
	return serviceConfig{
		logger: slog.Default(),
		newID:  uuid.NewString,
	}
}

// WithEventPublisher sets the publisher notified after every committed change
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *serviceConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithWarningHandler sets a callback for recovered failures. Warnings are
// logged either way.
func WithWarningHandler(fn WarningHandler) Option {
	return func(cfg *serviceConfig) {
		cfg.onWarning = fn
	}
}

// WithIDGenerator overrides how new column IDs are generated. The generated
// value is prefixed with "column-".
func WithIDGenerator(fn func() string) Option {
	return func(cfg *serviceConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}

// WithHistoryLimit caps the number of undo steps kept. Zero means unbounded.
func WithHistoryLimit(n int) Option {
	return func(cfg *serviceConfig) {
		cfg.historyLimit = n
	}
}
