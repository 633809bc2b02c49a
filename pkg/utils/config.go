package utils

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Loyalty  LoyaltyConfig
	Bot      BotConfig
	Admin    AdminConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type LoyaltyConfig struct {
	Levels           string
	CashbackPercent  int
	AllowOverdraft   bool
	StartingPoints   int
	StartingLifetime int
}

type BotConfig struct {
	Token               string
	PollIntervalSeconds int
	RecentOrdersLimit   int
	PaymentLinkTemplate string
	MiniAppURL          string
}

type AdminConfig struct {
	IDs []int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("LEVELS", "Новичок:0,Кофеман:100,Бариста-Шеф:250,Магистр Эспрессо:500,Кофейный Монарх:1000")
	viper.SetDefault("CASHBACK_PERCENT", 5)
	viper.SetDefault("ALLOW_OVERDRAFT", true)
	viper.SetDefault("STARTING_POINTS", 340)
	viper.SetDefault("STARTING_LIFETIME", 420)
	viper.SetDefault("POLL_INTERVAL_SECONDS", 5)
	viper.SetDefault("RECENT_ORDERS_LIMIT", 50)
	viper.SetDefault("PAYMENT_LINK_TEMPLATE", "https://historycoffee.payment/order/{order_id}")
	viper.SetDefault("MINI_APP_URL", "https://t.me/HistoryCoffeeBot/app")
	viper.SetDefault("ADMIN_IDS", "1962824399,937710441")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Loyalty: LoyaltyConfig{
			Levels:           viper.GetString("LEVELS"),
			CashbackPercent:  viper.GetInt("CASHBACK_PERCENT"),
			AllowOverdraft:   viper.GetBool("ALLOW_OVERDRAFT"),
			StartingPoints:   viper.GetInt("STARTING_POINTS"),
			StartingLifetime: viper.GetInt("STARTING_LIFETIME"),
		},
		Bot: BotConfig{
			Token:               viper.GetString("BOT_TOKEN"),
			PollIntervalSeconds: viper.GetInt("POLL_INTERVAL_SECONDS"),
			RecentOrdersLimit:   viper.GetInt("RECENT_ORDERS_LIMIT"),
			PaymentLinkTemplate: viper.GetString("PAYMENT_LINK_TEMPLATE"),
			MiniAppURL:          viper.GetString("MINI_APP_URL"),
		},
		Admin: AdminConfig{
			IDs: parseIDList(viper.GetString("ADMIN_IDS")),
		},
	}

	return config, nil
}

// IsAdminID checks the static admin allow-list.
func (c *Config) IsAdminID(id int64) bool {
	for _, adminID := range c.Admin.IDs {
		if adminID == id {
			return true
		}
	}
	return false
}

// parseIDList parses a comma-separated list of Telegram IDs.
// Malformed entries are skipped.
func parseIDList(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
