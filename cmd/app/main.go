// Command app serves the running weather advisor API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

//go:generate go run -mod=mod github.com/google/wire/cmd/wire

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		slog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}
