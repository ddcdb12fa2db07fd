package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/events"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/tui"
)

// eventBuffer is how many board events the TUI may fall behind by before
// older ones are dropped
const eventBuffer = 16

// Options controls where the program reads and draws. Zero values use the
// terminal.
type Options struct {
	Input  io.Reader
	Output io.Writer

	// Warnings drains storage warnings raised by the board service
	Warnings func() []boardservice.Warning
}

// Launch runs the interactive board until the user quits or ctx is cancelled
func Launch(ctx context.Context, application *app.App, opts Options) error {
	modelOpts := []tui.Option{}
	if opts.Warnings != nil {
		modelOpts = append(modelOpts, tui.WithWarnings(opts.Warnings))
	}

	// Live refresh is optional: only in-process publishers can be subscribed to
	if sub, ok := application.Events().(events.Subscriber); ok {
		ch, unsubscribe := sub.Subscribe(eventBuffer)
		defer unsubscribe()
		modelOpts = append(modelOpts, tui.WithEvents(ch))
	} else {
		slog.Info("event publisher does not support subscriptions, continuing without live updates")
	}

	model := tui.New(ctx, application.BoardService, modelOpts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(model, programOpts...)
	if _, err := p.Run(); err != nil {
		// a cancelled context is a normal shutdown
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, TUI stopped")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
