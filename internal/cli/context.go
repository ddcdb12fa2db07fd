package cli

import "context"

type contextKey string

const cliKey contextKey = "kanbanCLI"

// WithCLI returns a context carrying c. Commands run under this context use c
// instead of opening the board themselves, so state such as undo history
// survives across commands.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey, c)
}

// GetCLIFromContext returns the CLI injected with WithCLI, or opens a new one.
// Callers always Close the result; closing an injected CLI does nothing.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c, ok := ctx.Value(cliKey).(*CLI); ok && c != nil {
		return c.borrow(), nil
	}
	return NewCLI(ctx)
}
