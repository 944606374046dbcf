package mail

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"
)

var ErrNoRecipient = errs.New("mail has no recipient")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain-text UTF-8 mail through one relay.
type SMTPMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	send   sendFunc
	logger *slog.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *slog.Logger) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:   cfg.From,
		auth:   auth,
		send:   smtp.SendMail,
		logger: logger,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg shared.MailMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.send(m.addr, m.auth, m.from, []string{msg.To}, Compose(m.from, msg)); err != nil {
		return errs.Wrap(err, "smtp send")
	}
	m.logger.Info("mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

// Compose renders the RFC 5322 message with a Q-encoded subject.
func Compose(from string, msg shared.MailMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// LogMailer writes mail to the log instead of delivering it. Used when SMTP is not
// configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg shared.MailMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrNoRecipient
	}
	m.logger.Info("mail delivery disabled, message logged",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body)
	return nil
}
