//go:build unit

package mail

import (
	"context"
	"errors"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"

	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailer_Send(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@akpak.com.tr"}
	msg := shared.MailMessage{
		To:      "ayse@example.com",
		Subject: "AKPAK - Şifre Sıfırlama Kodu",
		Body:    "Şifre sıfırlama kodunuz: 123456\n\nKod 10 dakika geçerlidir.",
	}

	t.Run("hands message to relay", func(t *testing.T) {
		m := NewSMTPMailer(cfg, slog.Default())
		var gotAddr, gotFrom string
		var gotTo []string
		var gotBody []byte
		m.send = func(addr string, _ smtp.Auth, from string, to []string, body []byte) error {
			gotAddr, gotFrom, gotTo, gotBody = addr, from, to, body
			return nil
		}

		require.NoError(t, m.Send(context.Background(), msg))
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "noreply@akpak.com.tr", gotFrom)
		assert.Equal(t, []string{"ayse@example.com"}, gotTo)
		assert.Contains(t, string(gotBody), "Kod 10 dakika geçerlidir.")
		assert.NotContains(t, string(gotBody), "Subject: AKPAK - Şifre")
	})

	t.Run("relay error is wrapped", func(t *testing.T) {
		m := NewSMTPMailer(cfg, slog.Default())
		m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("550 rejected") }

		assert.Error(t, m.Send(context.Background(), msg))
	})

	t.Run("missing recipient", func(t *testing.T) {
		m := NewSMTPMailer(cfg, slog.Default())
		assert.ErrorIs(t, m.Send(context.Background(), shared.MailMessage{Subject: "x"}), ErrNoRecipient)
	})
}

func TestCompose(t *testing.T) {
	out := string(Compose("noreply@akpak.com.tr", shared.MailMessage{
		To:      "a@b.co",
		Subject: "Şifre",
		Body:    "line1\nline2",
	}))

	assert.True(t, strings.HasPrefix(out, "From: noreply@akpak.com.tr\r\n"))
	assert.Contains(t, out, "Subject: =?utf-8?q?")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\nline1\r\nline2"))
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer(slog.Default())
	assert.NoError(t, m.Send(context.Background(), shared.MailMessage{To: "a@b.co"}))
	assert.ErrorIs(t, m.Send(context.Background(), shared.MailMessage{}), ErrNoRecipient)
}
