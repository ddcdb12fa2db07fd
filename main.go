package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/kanban/cmd"
)

func main() {
	// Set up signal handling so an interrupted shell session still closes the store
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	code := cmd.Execute(ctx)
	cancel()
	os.Exit(code)
}
