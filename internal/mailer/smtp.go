package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/lushlooksbeauty/studio-api/internal/config"
)

type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
	log  zerolog.Logger
}

func NewSMTPMailer(cfg *config.Config, log zerolog.Logger) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	return &SMTPMailer{
		addr: cfg.SMTPAddr(),
		from: cfg.MailFrom,
		auth: auth,
		log:  log,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body,
	)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.log.Error().Err(err).Str("to", to).Msg("mail delivery failed")
		return err
	}

	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
