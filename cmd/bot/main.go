// Bot binary: Telegram commands plus the order notification loop.
// Runs alongside the API server against the same database.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"coffee-shop/internal/bot"
	"coffee-shop/internal/data/repository"
	"coffee-shop/internal/notify"
	"coffee-shop/internal/usecase"
	"coffee-shop/pkg/database"
	"coffee-shop/pkg/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Apply schema
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	service := usecase.NewService(repos, config, logger)

	api, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		logger.Fatal("Failed to connect to Telegram", zap.Error(err))
	}
	api.Debug = config.App.Debug

	logger.Info("Telegram connected", zap.String("username", api.Self.UserName))

	sender := bot.NewTelegramSender(api)
	notifier := notify.NewNotifier(repos.Order, sender, logger)

	monitor := notify.NewMonitor(
		repos.Order,
		sender,
		time.Duration(config.Bot.PollIntervalSeconds)*time.Second,
		config.Bot.RecentOrdersLimit,
		config.Bot.PaymentLinkTemplate,
		config.Bot.MiniAppURL,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	bot.New(api, service, notifier, config, logger).Run(ctx)
	<-done

	logger.Info("Bot shutdown complete")
}
