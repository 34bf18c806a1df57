package mailer

import (
	"context"
	"fmt"

	"nahl/internal/config"
	"nahl/internal/service"

	"github.com/wneessen/go-mail"
)

// SMTP relays contact messages to the configured admin address over an
// authenticated, STARTTLS-upgraded session.
type SMTP struct {
	client *mail.Client
	from   string
	to     string
}

// New builds an SMTP mailer from config. Call only when cfg.SMTPConfigured().
func New(cfg *config.Config) (*SMTP, error) {
	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPassword),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTP{
		client: client,
		from:   cfg.SMTPUser,
		to:     cfg.AdminEmail,
	}, nil
}

// Send implements service.Mailer.
func (s *SMTP) Send(ctx context.Context, msg *service.ContactMessage) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(s.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	m.Subject("Contact from " + msg.Name)
	m.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message,
	))

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
