package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"NewsScanner/internal/analysis"
	"NewsScanner/internal/config"
	"NewsScanner/internal/infrastructure/fetch"
	"NewsScanner/internal/infrastructure/parser"
	"NewsScanner/internal/infrastructure/scheduler"
	"NewsScanner/internal/infrastructure/storage"
	"NewsScanner/internal/infrastructure/telegram"
	"NewsScanner/internal/logging"
	"NewsScanner/internal/ports"
	"NewsScanner/internal/scanner"
	"NewsScanner/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
	logger    *slog.Logger
	now       func() time.Time
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	fetcher := fetch.NewHTTPFetcher(&http.Client{Timeout: cfg.Fetch.Timeout})

	registry := scanner.NewRegistry()
	registry.Register(parser.NewGuardianScanner(fetcher, baseLogger.With("component", "adapter.guardian")))
	registry.Register(parser.NewMailScanner(fetcher, baseLogger.With("component", "adapter.mail")))
	registry.Register(parser.NewMetroScanner(fetcher, baseLogger.With("component", "adapter.metro")))

	source := parser.NewStrategySource(registry, cfg.Sites, cfg.Fetch.Concurrency, baseLogger.With("component", "source"))

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.Enabled() {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Writer:    storage.NewJSONWriter(cfg.Output.Path, cfg.Output.LegacyScores),
		Notifier:  notifier,
		Tokenizer: analysis.NewTokenizer(cfg.Analysis.ExcludedWords),
		TopWords:  cfg.Analysis.TopWords,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, cfg.Scheduler.Location())

	return &Application{
		cfg:       cfg,
		pipeline:  pipeline,
		scheduler: usecase.NewScheduler(driver, pipeline, baseLogger.With("component", "scheduler")),
		logger:    baseLogger,
		now:       time.Now,
	}
}

// Run performs a single pipeline execution for today in the configured timezone.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	today := a.now().In(a.cfg.Scheduler.Location())
	return a.pipeline.ProcessDay(ctx, today)
}

// Serve runs the pipeline on the configured cron expression until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	if err := a.scheduler.Start(ctx); err != nil {
		return err
	}
	a.logger.Info("scheduler started", "cron", a.cfg.Scheduler.CronExpression, "timezone", a.cfg.Scheduler.Location().String())

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.scheduler.Stop(stopCtx)
}
