package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"binconv/cmd/binconv/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := commands.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
