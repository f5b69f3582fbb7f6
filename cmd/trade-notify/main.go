package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"
	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	day := flag.String("date", "", "summarize this local day instead of today (YYYY-MM-DD)")
	dryRun := flag.Bool("dry-run", false, "compute the summary but do not send email")
	flag.Parse()

	if err := initializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := run(ctx, *configPath, *day, *dryRun)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	_ = trace.Shutdown(shutdownCtx)
	cancel()

	if err != nil {
		logger.ErrorWithErr(ctx, "Job failed", err)
		os.Exit(1)
	}

	b, _ := json.Marshal(res)
	fmt.Println(string(b))
}

func run(ctx context.Context, configPath, day string, dryRun bool) (*types.RunResult, error) {
	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	source := initializeSource(ctx, cfg)
	notifier := initializeNotifier(ctx, cfg, dryRun)

	eng, err := initializeEngine(cfg, source, notifier, loc, day)
	if err != nil {
		return nil, err
	}

	return eng.Run(ctx)
}
