package bot

import (
	"context"
	"fmt"

	"coffee-shop/internal/notify"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers notifications through the Telegram Bot API.
type TelegramSender struct {
	api *tgbotapi.BotAPI
}

func NewTelegramSender(api *tgbotapi.BotAPI) *TelegramSender {
	return &TelegramSender{api: api}
}

func (s *TelegramSender) Send(ctx context.Context, userID int64, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := tgbotapi.NewMessage(userID, msg.Text)
	m.ParseMode = tgbotapi.ModeHTML
	if len(msg.Buttons) > 0 {
		m.ReplyMarkup = urlKeyboard(msg.Buttons)
	}

	if _, err := s.api.Send(m); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", userID, err)
	}
	return nil
}
