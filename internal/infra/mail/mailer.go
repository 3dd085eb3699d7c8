// Package mail delivers password recovery emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"sapzurro/config"
	"sapzurro/internal/domain/service"
	"sapzurro/internal/errors"
)

// NewRecoveryMailer picks the delivery backend from configuration. Without an
// SMTP section the mailer only logs the recovery link, which keeps local
// environments working without a mail relay.
func NewRecoveryMailer(cfg *config.Config, logger *slog.Logger) service.RecoveryMailer {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		logger.Warn("smtp not configured, recovery emails will only be logged")

		return &logMailer{logger: logger}
	}

	return &smtpMailer{cfg: cfg.SMTP, logger: logger}
}

// smtpMailer sends mail through a plain SMTP relay. net/smtp has no built-in
// timeouts, so the connection is dialed and deadlined by hand.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

func (m *smtpMailer) SendRecoveryEmail(ctx context.Context, address, link, displayName string) error {
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	timeout := m.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return errors.Wrap(err, "failed to dial smtp server")
	}
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to set smtp deadline")
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to open smtp session")
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(nil); err != nil {
			return errors.Wrap(err, "failed to start tls")
		}
	}

	if m.cfg.UserName != "" {
		auth := smtp.PlainAuth("", m.cfg.UserName, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp authentication failed")
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return errors.Wrap(err, "smtp mail from rejected")
	}
	if err := client.Rcpt(address); err != nil {
		return errors.Wrap(err, "smtp recipient rejected")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "failed to open smtp data stream")
	}
	if _, err := writer.Write(buildRecoveryMessage(m.cfg.From, address, link, displayName)); err != nil {
		_ = writer.Close()

		return errors.Wrap(err, "failed to write smtp message")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finish smtp message")
	}

	if err := client.Quit(); err != nil {
		m.logger.Debug("smtp quit failed", slog.Any("error", err))
	}

	m.logger.Info("recovery email sent", slog.String("to", address))

	return nil
}

// buildRecoveryMessage renders the recovery email body.
func buildRecoveryMessage(from, to, link, displayName string) []byte {
	greeting := "Hola"
	if displayName != "" {
		greeting = "Hola " + displayName
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Recuperacion de contrasena - Sapzurro\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(greeting + ",\r\n\r\n")
	b.WriteString("Recibimos una solicitud para restablecer tu contrasena.\r\n")
	b.WriteString("Usa el siguiente enlace para crear una nueva:\r\n\r\n")
	b.WriteString(link + "\r\n\r\n")
	b.WriteString("El enlace expira en una hora. Si no solicitaste este cambio, ignora este mensaje.\r\n")

	return []byte(b.String())
}

// logMailer writes the recovery link to the log instead of sending mail.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) SendRecoveryEmail(_ context.Context, address, link, displayName string) error {
	m.logger.Info("recovery email (log only)",
		slog.String("to", address),
		slog.String("name", displayName),
		slog.String("link", link),
	)

	return nil
}
