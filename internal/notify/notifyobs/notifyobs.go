package notifyobs

import (
	"context"
	"time"

	"github.com/JSPierceColorado/Trade-Notify/internal/interfaces"
	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"
)

// observableNotifier wraps a Notifier with observability (logging & tracing)
type observableNotifier struct {
	notifier interfaces.Notifier
	provider string
}

// Compile-time interface check
var _ interfaces.Notifier = (*observableNotifier)(nil)

// Wrap wraps a notifier with observability middleware
func Wrap(notifier interfaces.Notifier, provider string) interfaces.Notifier {
	return &observableNotifier{
		notifier: notifier,
		provider: provider,
	}
}

func (on *observableNotifier) Send(ctx context.Context, subject, htmlBody string) error {
	ctx, span := trace.StartSpan(ctx, "notify.Send")
	defer span.End()

	start := time.Now()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Sending summary email",
		"provider", on.provider,
		"subject", subject,
	)

	if err := on.notifier.Send(ctx, subject, htmlBody); err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Email delivery failed", err,
			"provider", on.provider,
			"subject", subject,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}

	logger.InfoSkip(ctx, 1, "Email delivery accepted",
		"provider", on.provider,
		"subject", subject,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
