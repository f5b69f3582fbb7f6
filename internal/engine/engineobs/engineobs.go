package engineobs

import (
	"context"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"
	"github.com/JSPierceColorado/Trade-Notify/internal/types"
)

// observableEngine wraps an Engine with observability (logging & tracing)
type observableEngine struct {
	engine interfaces.Engine
}

// Compile-time interface check
var _ interfaces.Engine = (*observableEngine)(nil)

// Wrap wraps an engine with observability middleware
func Wrap(eng interfaces.Engine) interfaces.Engine {
	return &observableEngine{
		engine: eng,
	}
}

func (oe *observableEngine) Run(ctx context.Context) (*types.RunResult, error) {
	ctx, span := trace.StartSpan(ctx, "engine.Run")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting summary run")

	result, err := oe.engine.Run(ctx)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Summary run failed", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Summary run completed",
		"subject", result.Subject,
		"rows", result.Rows,
		"sent", result.Sent,
		"skipped", result.Skipped,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}
