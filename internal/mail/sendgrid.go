// Package mail implements the application email ports over SendGrid.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGrid struct {
	log      *slog.Logger
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

func NewSendGrid(log *slog.Logger, apiKey, fromName, fromAddr string) *SendGrid {
	return &SendGrid{
		log:      log,
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromAddr: fromAddr,
	}
}

// Send delivers one plain-text email. Callers treat failures as best effort;
// nothing here retries.
func (s *SendGrid) Send(ctx context.Context, to, subject, body string) error {
	if s.fromAddr == "" {
		return fmt.Errorf("from address is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.fromName, s.fromAddr),
		subject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d body=%s", resp.StatusCode, resp.Body)
	}

	s.log.Debug("mail sent", "to", to, "subject", subject, "status", resp.StatusCode)
	return nil
}
