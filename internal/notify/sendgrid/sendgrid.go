package sendgrid

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

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
	ctx, span := trace.StartSpan(ctx, "sendgrid-api-call")
	defer span.End()

	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return errors.New("SENDGRID_API_KEY missing")
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", n.cfg.Email.From))
	m.Subject = subject

	p := mail.NewPersonalization()
	for _, rcpt := range n.cfg.Email.To {
		p.AddTos(mail.NewEmail("", rcpt))
	}
	m.AddPersonalizations(p)

	// Providers want a text part even for subject-only mail.
	m.AddContent(
		mail.NewContent("text/plain", " "),
		mail.NewContent("text/html", htmlBody),
	)

	request := sg.GetRequest(apiKey, "/v3/mail/send", n.cfg.SendGrid.APIBase)
	request.Method = "POST"
	client := &sg.Client{Request: request}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send failed: %d %s", resp.StatusCode, resp.Body)
	}
	return nil
}
