package mailer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"shop-service/internal/config"

	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when neither SMTP credentials nor a Resend
// API key are present. It fails only the send attempt; callers treat mail
// delivery as best-effort.
var ErrNotConfigured = errors.New("mailer: no transport configured")

// Mailer delivers via SMTP when credentials are configured, falling back to
// the Resend API otherwise.
type Mailer struct {
	smtp     config.SMTPConfig
	shopName string
	resend   *ResendClient
}

func New(cfg config.Config) *Mailer {
	var resend *ResendClient
	if cfg.ResendAPIKey != "" {
		resend = NewResendClient(cfg.ResendAPIKey)
	}
	return &Mailer{
		smtp:     cfg.SMTP,
		shopName: cfg.ShopName,
		resend:   resend,
	}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if m.smtp.Configured() {
		return m.sendSMTP(msg)
	}
	if m.resend != nil {
		return m.resend.Send(ctx, m.shopName, msg)
	}
	return ErrNotConfigured
}

func (m *Mailer) sendSMTP(msg Message) error {
	gm := gomail.NewMessage()
	from := m.smtp.From
	if from == "" {
		from = m.smtp.User
	}
	gm.SetAddressHeader("From", from, m.shopName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)

	html := msg.HTML
	if html == "" {
		html = "<p>" + strings.ReplaceAll(msg.Text, "\n", "<br>") + "</p>"
	}
	if msg.Text != "" {
		gm.SetBody("text/plain", msg.Text)
		gm.AddAlternative("text/html", html)
	} else {
		gm.SetBody("text/html", html)
	}

	for _, att := range msg.Attachments {
		content := att.Content
		gm.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(content))
			return err
		}))
	}

	d := gomail.NewDialer(m.smtp.Host, m.smtp.Port, m.smtp.User, m.smtp.Password)
	return d.DialAndSend(gm)
}
