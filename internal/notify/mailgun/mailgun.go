package mailgun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	"github.com/JSPierceColorado/Trade-Notify/internal/logger"
	"github.com/JSPierceColorado/Trade-Notify/internal/store"
	"github.com/JSPierceColorado/Trade-Notify/internal/trace"
)

const sendTimeout = 30 * time.Second

type Notifier struct {
	cfg *store.Config
}

func NewNotifier(cfg *store.Config) *Notifier {
	return &Notifier{cfg: cfg}
}

func (n *Notifier) Send(ctx context.Context, subject, htmlBody string) error {
	ctx, span := trace.StartSpan(ctx, "mailgun-api-call")
	defer span.End()

	apiKey := os.Getenv("MAILGUN_API_KEY")
	if apiKey == "" {
		return errors.New("MAILGUN_API_KEY missing")
	}

	client := mg.NewMailgun(n.cfg.Mailgun.Domain, apiKey)
	if n.cfg.Mailgun.APIBase != "" {
		client.SetAPIBase(n.cfg.Mailgun.APIBase)
	}

	// Providers want a text part even for subject-only mail.
	m := client.NewMessage(n.cfg.Email.From, subject, " ", n.cfg.Email.To...)
	m.SetHtml(htmlBody)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := client.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("mailgun send failed: %w", err)
	}

	logger.Debug(ctx, "Mailgun accepted message", "message_id", id)
	return nil
}
