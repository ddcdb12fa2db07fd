// Package cli holds what every kanban subcommand shares: the CLI context that
// owns the application container, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/config"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	warnings *warningQueue
	borrowed bool // handed out by GetCLIFromContext; Close is a no-op
}

// warningQueue collects board warnings until a command reports them
type warningQueue struct {
	mu    sync.Mutex
	items []boardservice.Warning
}

func (q *warningQueue) push(w boardservice.Warning) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, w)
}

func (q *warningQueue) drain() []boardservice.Warning {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// NewCLI loads the user's config and opens the configured board
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Open(ctx, cfg)
}

// Open builds a CLI from an explicit config. Extra app options (a store, a
// logger) are applied after the CLI's own.
func Open(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	c := &CLI{Config: cfg, warnings: &warningQueue{}}

	opts = append([]app.Option{app.WithWarningHandler(c.warnings.push)}, opts...)
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize board: %w", err)
	}
	c.App = application

	styles.Init(cfg.ColorScheme)
	return c, nil
}

// Warnings returns and clears the warnings raised since the last call
func (c *CLI) Warnings() []boardservice.Warning {
	return c.warnings.drain()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}

// borrow returns a view of c that shares its app and warnings but does not
// own them
func (c *CLI) borrow() *CLI {
	return &CLI{
		App:      c.App,
		Config:   c.Config,
		warnings: c.warnings,
		borrowed: true,
	}
}

// ReportWarnings prints and clears pending warnings
func (c *CLI) ReportWarnings(f *OutputFormatter) {
	f.Warn(c.Warnings())
}
