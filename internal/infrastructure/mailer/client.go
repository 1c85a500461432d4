package mailer

import (
	"context"
	"fmt"

	"backoffice/internal/config"
	"backoffice/internal/pkg/logger"

	"github.com/wneessen/go-mail"
)

// Notifier sends plain-text notifications to a recipient address.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Client wraps an SMTP connection configured from the environment.
type Client struct {
	client *mail.Client
	from   string
	log    logger.Logger
}

// NewClient creates an SMTP mailer.
func NewClient(cfg config.SMTP, log logger.Logger) (*Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	// Port 465 is implicit TLS; on other ports STARTTLS is negotiated
	// opportunistically.
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &Client{
		client: client,
		from:   cfg.From,
		log:    log,
	}, nil
}

// Send delivers a plain-text message to the recipient.
func (c *Client) Send(ctx context.Context, recipient, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", c.from, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}
	c.log.Debug(fmt.Sprintf("Sent mail to %s: %s", recipient, subject))
	return nil
}
