package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, b.err
}

func owner(email string) domain.User {
	u := domain.User{UserID: "owner-1", FullName: "Hasan <Owner>"}
	if email != "" {
		u.Email = &email
	}
	return u
}

func TestEmailChannel_Send(t *testing.T) {
	dialer := &fakeDialer{}
	ch := &EmailChannel{cfg: config.SMTPConfig{Username: "bot@hhd.test", From: "HHD Cash"}, dialer: dialer}

	err := ch.Send(context.Background(), owner("owner@hhd.test"), "New entry in Shop A", "Rafi posted IN 10.00")
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	m := dialer.sent[0]
	assert.Equal(t, []string{"owner@hhd.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New entry in Shop A"}, m.GetHeader("Subject"))

	var body strings.Builder
	_, err = m.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Hasan &lt;Owner&gt;")
}

func TestEmailChannel_SkipsUsersWithoutEmail(t *testing.T) {
	dialer := &fakeDialer{}
	ch := &EmailChannel{dialer: dialer}

	require.NoError(t, ch.Send(context.Background(), owner(""), "s", "m"))
	assert.Empty(t, dialer.sent)
}

func TestEmailChannel_DialFailure(t *testing.T) {
	ch := &EmailChannel{dialer: &fakeDialer{err: errors.New("connection refused")}}

	err := ch.Send(context.Background(), owner("owner@hhd.test"), "s", "m")
	assert.ErrorContains(t, err, "connection refused")
}

func TestTelegramChannel_Send(t *testing.T) {
	bot := &fakeBot{}
	ch := &TelegramChannel{bot: bot, chatID: -100123}

	require.NoError(t, ch.Send(context.Background(), owner(""), "New entry in Shop A", "Rafi posted OUT 5.00"))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Equal(t, "New entry in Shop A\n\nRafi posted OUT 5.00", msg.Text)
}

func TestTelegramChannel_CancelledContext(t *testing.T) {
	bot := &fakeBot{}
	ch := &TelegramChannel{bot: bot, chatID: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ch.Send(ctx, owner(""), "s", "m"), context.Canceled)
	assert.Empty(t, bot.sent)
}

func TestNewChannels_NothingConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Empty(t, NewChannels(&config.Config{}, logger))

	channels := NewChannels(&config.Config{SMTP: config.SMTPConfig{Enabled: true, Host: "smtp.test", Port: 587}}, logger)
	require.Len(t, channels, 1)
	assert.Equal(t, "email", channels[0].Name())
}
