package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/stokpilot/stokpilot/config"
	"github.com/stokpilot/stokpilot/internal/app"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	server := app.New(sigCtx, cfg)

	server.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	server.Close(ctx)
}
