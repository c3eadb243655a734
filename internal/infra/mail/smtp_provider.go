package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPProvider sends through a plain SMTP relay. Used for local development
// (Mailhog) and as a fallback when no Postmark token is configured. SMTP has
// no message id of its own, so a uuid is generated to keep the log shape
// identical to the API provider.
type SMTPProvider struct {
	Host     string
	Port     int
	User     string
	Password string
}

func NewSMTPProvider(host string, port int, user, password string) *SMTPProvider {
	return &SMTPProvider{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *SMTPProvider) Send(ctx context.Context, from string, email Email) (string, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	if len(email.Cc) > 0 {
		m.SetHeader("Cc", email.Cc...)
	}
	if len(email.Bcc) > 0 {
		m.SetHeader("Bcc", email.Bcc...)
	}
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	return "smtp-" + uuid.New().String(), nil
}
