package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr              string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel                string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN             string `env:"DATABASE_DSN" envDefault:""`
	BaseURL                 string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	AllowedOrigins          string `env:"ALLOWED_ORIGINS" envDefault:""`
	OrderRateLimit          int    `env:"ORDER_RATE_LIMIT" envDefault:"5"`
	TelegramBotToken        string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	TelegramChatID          string `env:"TELEGRAM_CHAT_ID" envDefault:""`
	TelegramPaymentBotToken string `env:"TELEGRAM_PAYMENT_BOT_TOKEN" envDefault:""`
	TelegramPaymentChatID   string `env:"TELEGRAM_PAYMENT_CHAT_ID" envDefault:""`
	YookassaShopID          string `env:"YOOKASSA_SHOP_ID" envDefault:""`
	YookassaSecretKey       string `env:"YOOKASSA_SECRET_KEY" envDefault:""`
	OrderAmount             string `env:"ORDER_AMOUNT" envDefault:"700000.00"`
	OrderCurrency           string `env:"ORDER_CURRENCY" envDefault:"RUB"`
	OrderDescription        string `env:"ORDER_DESCRIPTION" envDefault:"Оплата заказа"`
	JWTSecret               string `env:"JWT_SECRET" envDefault:"secret"`
	AdminLogin              string `env:"ADMIN_LOGIN" envDefault:"admin"`
	AdminPasswordHash       string `env:"ADMIN_PASSWORD_HASH" envDefault:""`
}

// ServerConfig - модель настроек HTTP-сервера
type ServerConfig struct {
	ListenAddr     string
	LogLevel       string
	DatabaseDSN    string
	BaseURL        string
	AllowedOrigins []string
	OrderRateLimit int
}

// TelegramConfig - модель настроек уведомлений в Telegram.
// Пара PaymentBotToken/PaymentChatID используется для уведомлений об оплате,
// при отсутствии значения берётся основная пара.
type TelegramConfig struct {
	BotToken        string
	ChatID          string
	PaymentBotToken string
	PaymentChatID   string
}

// PaymentConfig - модель настроек платёжного провайдера (ЮKassa)
type PaymentConfig struct {
	ShopID      string
	SecretKey   string
	Amount      string
	Currency    string
	Description string
}

// AdminConfig - модель настроек административного API
type AdminConfig struct {
	Login        string
	PasswordHash string
	JWTSecret    string
}

// Config - модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Payment  PaymentConfig
	Admin    AdminConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		baseURL  = pflag.StringP("base_url", "b", args.BaseURL, "Public base URL of the site.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:     *server,
			LogLevel:       *logLevel,
			DatabaseDSN:    *DSN,
			BaseURL:        *baseURL,
			AllowedOrigins: ParseOrigins(args.AllowedOrigins),
			OrderRateLimit: args.OrderRateLimit,
		},
		Telegram: TelegramConfig{
			BotToken:        strings.TrimSpace(args.TelegramBotToken),
			ChatID:          strings.TrimSpace(args.TelegramChatID),
			PaymentBotToken: strings.TrimSpace(args.TelegramPaymentBotToken),
			PaymentChatID:   strings.TrimSpace(args.TelegramPaymentChatID),
		},
		Payment: PaymentConfig{
			ShopID:      strings.TrimSpace(args.YookassaShopID),
			SecretKey:   strings.TrimSpace(args.YookassaSecretKey),
			Amount:      args.OrderAmount,
			Currency:    args.OrderCurrency,
			Description: args.OrderDescription,
		},
		Admin: AdminConfig{
			Login:        args.AdminLogin,
			PasswordHash: args.AdminPasswordHash,
			JWTSecret:    args.JWTSecret,
		},
	}
}

// ParseOrigins - разбирает список разрешённых origin из строки с запятыми
func ParseOrigins(origins string) []string {
	var result []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:     "localhost:8080",
			LogLevel:       "info",
			DatabaseDSN:    "",
			BaseURL:        "http://localhost:8080",
			OrderRateLimit: 5,
		},
		Payment: PaymentConfig{
			Amount:      "700000.00",
			Currency:    "RUB",
			Description: "Оплата заказа",
		},
		Admin: AdminConfig{
			Login:     "admin",
			JWTSecret: "secret",
		},
	}
}
