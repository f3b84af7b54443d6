package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
	"gopkg.in/gomail.v2"
)

// mailDialer is satisfied by *gomail.Dialer.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailChannel delivers notifications over SMTP.
type EmailChannel struct {
	cfg    config.SMTPConfig
	dialer mailDialer
}

var _ portssvc.NotificationChannel = (*EmailChannel)(nil)

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (c *EmailChannel) Name() string { return "email" }

// Send mails the recipient. Users without an e-mail address are skipped.
func (c *EmailChannel) Send(ctx context.Context, recipient domain.User, subject, message string) error {
	if recipient.Email == nil || strings.TrimSpace(*recipient.Email) == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(c.cfg.Username, c.cfg.From))
	m.SetHeader("To", *recipient.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", emailBody(recipient.FullName, message))

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send e-mail to %s: %w", recipient.UserID, err)
	}
	return nil
}

func emailBody(name, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <p>Hello <strong>%s</strong>,</p>
    <p>%s</p>
    <p style="color: #666;">HHD Cash</p>
</body>
</html>
`, html.EscapeString(name), html.EscapeString(message))
}
