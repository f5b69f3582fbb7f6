package interfaces

import "context"

// Notifier delivers one email. A returned error is a run failure; there
// is no local retry.
type Notifier interface {
	Send(ctx context.Context, subject, htmlBody string) error
}
