package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapzurro/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRecoveryMailer_FallsBackToLogMailer(t *testing.T) {
	mailer := NewRecoveryMailer(&config.Config{}, discardLogger())

	_, ok := mailer.(*logMailer)
	require.True(t, ok)

	err := mailer.SendRecoveryEmail(context.Background(), "maria@example.com", "https://sapzurro.example/reset?token=x", "Maria")
	assert.NoError(t, err)
}

func TestNewRecoveryMailer_UsesSMTPWhenConfigured(t *testing.T) {
	cfg := &config.Config{SMTP: &config.SMTPConfig{Host: "mail.example", Port: 587, From: "no-reply@sapzurro.example"}}

	mailer := NewRecoveryMailer(cfg, discardLogger())

	_, ok := mailer.(*smtpMailer)
	assert.True(t, ok)
}

func TestBuildRecoveryMessage(t *testing.T) {
	msg := string(buildRecoveryMessage("no-reply@sapzurro.example", "maria@example.com", "https://sapzurro.example/reset?token=abc", "Maria"))

	assert.Contains(t, msg, "From: no-reply@sapzurro.example\r\n")
	assert.Contains(t, msg, "To: maria@example.com\r\n")
	assert.Contains(t, msg, "Subject: Recuperacion de contrasena")
	assert.Contains(t, msg, "Hola Maria,")
	assert.Contains(t, msg, "https://sapzurro.example/reset?token=abc")
}

func TestBuildRecoveryMessage_NoDisplayName(t *testing.T) {
	msg := string(buildRecoveryMessage("no-reply@sapzurro.example", "maria@example.com", "https://x", ""))

	assert.Contains(t, msg, "Hola,")
}
