package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"NewsScanner/internal/app"
	"NewsScanner/internal/config"
	"NewsScanner/internal/logging"
)

func main() {
	schedule := flag.Bool("schedule", false, "keep running and scan on the configured cron expression")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	run := application.Run
	if *schedule {
		run = application.Serve
	}

	if err := run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		stop()
		os.Exit(1)
	}
}
