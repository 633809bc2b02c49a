package bot

import (
	"coffee-shop/internal/notify"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const markReadyPrefix = "mark_ready_"

// urlKeyboard lays out link buttons one per row.
func urlKeyboard(buttons []notify.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// menuKeyboard opens the mini-app where ordering happens.
func menuKeyboard(miniAppURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("☕ Открыть меню", miniAppURL),
		),
	)
}

// readyKeyboard gives the admin a one-tap "order is ready" action.
func readyKeyboard(number string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Заказ готов", markReadyPrefix+number),
		),
	)
}
