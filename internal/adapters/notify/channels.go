package notify

import (
	"log/slog"

	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
)

// NewChannels builds every channel that is configured. A Telegram bot that
// cannot log in is skipped with a warning so the API still starts.
func NewChannels(cfg *config.Config, logger *slog.Logger) []portssvc.NotificationChannel {
	var channels []portssvc.NotificationChannel
	if cfg.SMTP.Enabled {
		channels = append(channels, NewEmailChannel(cfg.SMTP))
		logger.Info("E-mail notifications enabled", slog.String("host", cfg.SMTP.Host))
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		tg, err := NewTelegramChannel(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Warn("Telegram notifications disabled", slog.String("error", err.Error()))
		} else {
			channels = append(channels, tg)
			logger.Info("Telegram notifications enabled")
		}
	}
	return channels
}
