package notify

import (
	"context"
	"fmt"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botSender is satisfied by *tgbotapi.BotAPI.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramChannel posts notifications into a single business chat.
type TelegramChannel struct {
	bot    botSender
	chatID int64
}

var _ portssvc.NotificationChannel = (*TelegramChannel)(nil)

// NewTelegramChannel logs the bot in. It fails when the token is rejected.
func NewTelegramChannel(token string, chatID int64) (*TelegramChannel, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	return &TelegramChannel{bot: bot, chatID: chatID}, nil
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Send(ctx context.Context, recipient domain.User, subject, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text := fmt.Sprintf("%s\n\n%s", subject, message)
	if _, err := c.bot.Send(tgbotapi.NewMessage(c.chatID, text)); err != nil {
		return fmt.Errorf("telegram send for %s: %w", recipient.UserID, err)
	}
	return nil
}
