package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/engine"
	"github.com/JSPierceColorado/Trade-Notify/internal/engine/engineobs"
	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/notify/mailgun"
	"github.com/JSPierceColorado/Trade-Notify/internal/notify/noop"
	"github.com/JSPierceColorado/Trade-Notify/internal/notify/notifyobs"
	"github.com/JSPierceColorado/Trade-Notify/internal/notify/sendgrid"
	"github.com/JSPierceColorado/Trade-Notify/internal/sheetlog"
	"github.com/JSPierceColorado/Trade-Notify/internal/sheetlog/sourceobs"
	"github.com/JSPierceColorado/Trade-Notify/internal/store"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"

	"github.com/joho/godotenv"
)

// initializeSystem initializes the logger and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context, path string) (*store.Config, error) {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeSource returns the trading log row source with observability
func initializeSource(ctx context.Context, cfg *store.Config) interfaces.RowSource {
	var source interfaces.RowSource

	switch cfg.RowSource {
	case "CSV":
		logger.Info(ctx, "Reading trading log from CSV file", "path", cfg.CSVPath)
		source = sheetlog.NewCSVSource(cfg.CSVPath)
	default:
		logger.Info(ctx, "Reading trading log from Google Sheets", "sheet", cfg.SheetName, "tab", cfg.LogTab)
		source = sheetlog.NewSheetsSource(cfg, []byte(os.Getenv("GOOGLE_CREDS_JSON")))
	}

	// Wrap with observability middleware
	return sourceobs.Wrap(source)
}

// initializeNotifier returns the email notifier with observability
func initializeNotifier(ctx context.Context, cfg *store.Config, dryRun bool) interfaces.Notifier {
	if dryRun {
		cfg.Email.Provider = "NONE"
		logger.Warn(ctx, "Running in dry-run mode - email delivery is disabled")
	}

	var notifier interfaces.Notifier
	switch cfg.Email.Provider {
	case "MAILGUN":
		notifier = mailgun.NewNotifier(cfg)
	case "SENDGRID":
		notifier = sendgrid.NewNotifier(cfg)
	default:
		notifier = noop.NewNotifier()
		logger.Warn(ctx, "No email provider configured - summaries are logged only")
	}

	// Wrap with observability middleware
	return notifyobs.Wrap(notifier, cfg.Email.Provider)
}

// initializeEngine returns the summary engine with observability
func initializeEngine(cfg *store.Config, source interfaces.RowSource, notifier interfaces.Notifier, loc *time.Location, day string) (interfaces.Engine, error) {
	var eng interfaces.Engine
	if day == "" {
		eng = engine.New(cfg, source, notifier, loc)
	} else {
		d, err := time.ParseInLocation("2006-01-02", day, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid -date %q: %w", day, err)
		}
		// Noon keeps the requested day stable across DST transitions.
		noon := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, loc)
		eng = engine.NewForDay(cfg, source, notifier, loc, noon)
	}

	// Wrap with observability middleware
	return engineobs.Wrap(eng), nil
}
