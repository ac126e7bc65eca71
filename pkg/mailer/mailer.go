package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"clinica/config"
)

// Mailer abstrae el envío de correos para poder sustituir el proveedor
// sin tocar los servicios que notifican.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := m.cfg.Host + ":" + m.cfg.Port

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("error al enviar el correo: %w", err)
	}

	return nil
}

// NoopMailer se usa cuando SMTP no está configurado.
type NoopMailer struct{}

func (NoopMailer) Send(to, subject, body string) error {
	return nil
}
