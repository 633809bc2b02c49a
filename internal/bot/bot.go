package bot

import (
	"context"
	"fmt"
	"strings"

	"coffee-shop/internal/notify"
	"coffee-shop/internal/usecase"
	"coffee-shop/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot handles Telegram commands from customers and baristas.
type Bot struct {
	api      *tgbotapi.BotAPI
	service  *usecase.Service
	notifier *notify.Notifier
	config   *utils.Config
	log      *zap.Logger
}

func New(api *tgbotapi.BotAPI, service *usecase.Service, notifier *notify.Notifier, config *utils.Config, log *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		service:  service,
		notifier: notifier,
		config:   config,
		log:      log.With(zap.String("component", "bot")),
	}
}

// Run consumes updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info("Bot started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("Bot stopped")
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}

	msg := update.Message
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		b.handleStart(ctx, msg)
	case msg.IsCommand() && msg.Command() == "menu":
		b.handleMenu(msg)
	case msg.IsCommand() && msg.Command() == "help":
		b.handleHelp(msg)
	case msg.IsCommand() && msg.Command() == "admin":
		b.handleAdmin(ctx, msg)
	case msg.IsCommand() && msg.Command() == "notify":
		b.handleNotify(ctx, msg)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	if from == nil {
		return
	}

	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.UserName
	}

	user, err := b.service.User.EnsureUser(ctx, from.ID, name, nil)
	if err != nil {
		b.log.Error("Failed to register user on /start", zap.Error(err), zap.Int64("user_id", from.ID))
		b.reply(msg.Chat.ID, "Что-то пошло не так, попробуйте ещё раз позже.")
		return
	}

	text := fmt.Sprintf(
		"👋 Привет, <b>%s</b>!\n\n"+
			"Добро пожаловать в <b>History Coffee</b> ☕\n\n"+
			"💎 Баллы: <b>%d</b>\n"+
			"🏆 Уровень: <b>%s</b>\n\n"+
			"Жми кнопку ниже, чтобы сделать заказ!",
		user.Name, user.Points, user.LevelName,
	)

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeHTML
	reply.ReplyMarkup = menuKeyboard(b.config.Bot.MiniAppURL)
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("Failed to send welcome", zap.Error(err), zap.Int64("chat_id", msg.Chat.ID))
	}
}

func (b *Bot) handleMenu(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, "Открывайте меню и выбирайте 👇")
	reply.ReplyMarkup = menuKeyboard(b.config.Bot.MiniAppURL)
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("Failed to send menu", zap.Error(err), zap.Int64("chat_id", msg.Chat.ID))
	}
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID,
		"/start — регистрация и баланс баллов\n"+
			"/menu — открыть меню\n"+
			"/help — эта справка")
}

// handleAdmin lists recent orders with a "ready" button per order.
func (b *Bot) handleAdmin(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(ctx, msg.From) {
		b.reply(msg.Chat.ID, "Команда доступна только персоналу.")
		return
	}

	orders, err := b.service.Order.ListRecent(ctx, b.config.Bot.RecentOrdersLimit)
	if err != nil {
		b.log.Error("Failed to list recent orders", zap.Error(err))
		b.reply(msg.Chat.ID, "Не удалось загрузить заказы.")
		return
	}
	if len(orders) == 0 {
		b.reply(msg.Chat.ID, "Заказов пока нет.")
		return
	}

	for _, order := range orders {
		text := fmt.Sprintf(
			"📦 <b>%s</b>\n👤 %s\n🛒 %s\n💰 %d ₽",
			order.Number, order.UserName, order.ItemsSummary, order.TotalPrice,
		)
		reply := tgbotapi.NewMessage(msg.Chat.ID, text)
		reply.ParseMode = tgbotapi.ModeHTML
		reply.ReplyMarkup = readyKeyboard(order.Number)
		if _, err := b.api.Send(reply); err != nil {
			b.log.Error("Failed to send order card", zap.Error(err), zap.String("number", order.Number))
		}
	}
}

// handleNotify sends the pickup notification: /notify ORD-1234
func (b *Bot) handleNotify(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(ctx, msg.From) {
		b.reply(msg.Chat.ID, "Команда доступна только персоналу.")
		return
	}

	number := strings.TrimSpace(msg.CommandArguments())
	if number == "" {
		b.reply(msg.Chat.ID, "Укажите номер заказа: /notify ORD-1234")
		return
	}

	if err := b.notifier.NotifyReady(ctx, number); err != nil {
		b.log.Warn("Ready notification failed", zap.Error(err), zap.String("number", number))
		b.reply(msg.Chat.ID, fmt.Sprintf("Заказ %s не найден.", number))
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("Клиент уведомлён: заказ %s готов ✅", number))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client stops its spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warn("Failed to ack callback", zap.Error(err))
	}

	if !strings.HasPrefix(cb.Data, markReadyPrefix) {
		return
	}
	if cb.Message == nil || !b.isAdmin(ctx, cb.From) {
		return
	}

	number := strings.TrimPrefix(cb.Data, markReadyPrefix)
	chatID := cb.Message.Chat.ID

	if err := b.notifier.NotifyReady(ctx, number); err != nil {
		b.log.Warn("Ready notification failed", zap.Error(err), zap.String("number", number))
		b.reply(chatID, fmt.Sprintf("Заказ %s не найден.", number))
		return
	}

	b.reply(chatID, fmt.Sprintf("Клиент уведомлён: заказ %s готов ✅", number))
}

// isAdmin accepts the static allow-list or the persisted flag.
func (b *Bot) isAdmin(ctx context.Context, from *tgbotapi.User) bool {
	if from == nil {
		return false
	}
	if b.config.IsAdminID(from.ID) {
		return true
	}

	user, err := b.service.User.GetUser(ctx, from.ID)
	if err != nil {
		return false
	}
	return user.IsAdmin
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("Failed to send reply", zap.Error(err), zap.Int64("chat_id", chatID))
	}
}
