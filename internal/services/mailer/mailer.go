package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/causeway/backend/internal/config"
)

// Sender delivers a single email. The dispatcher retries on error, so
// implementations should return delivery failures rather than swallow them.
type Sender interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer sends plain-text mail over SMTP.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func New(cfg config.MailConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(m.addr, m.auth, m.from, to, []byte(msg))
}
