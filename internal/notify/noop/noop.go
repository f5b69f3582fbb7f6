package noop

import (
	"context"

	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
)

// Notifier is a fallback delivery target used when no email provider is
// configured. The subject still lands in the logs.
type Notifier struct{}

// NewNotifier returns a notifier that drops every message
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Send implements the Notifier interface. It logs the subject and drops
// the message.
func (n *Notifier) Send(ctx context.Context, subject, htmlBody string) error {
	logger.Info(ctx, "Email delivery disabled - dropping message", "subject", subject)
	return nil
}
