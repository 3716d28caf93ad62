package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/sony/gobreaker"
)

// TelegramSender - отправка текстового сообщения в чат
type TelegramSender interface {
	SendMessage(ctx context.Context, token string, chatID string, text string) error
}

// NotifyService - уведомления оператора о новых заявках и оплатах.
// Ошибки уведомлений никогда не доходят до клиента: вызывающий
// логирует их и продолжает работу.
type NotifyService interface {
	NotifyOrder(ctx context.Context, submission *models.SubmissionData) error
	NotifyPayment(ctx context.Context, paymentID string, amount string, currency string, submission *models.SubmissionData) error
}

var ErrNotifyNotConfigured = errors.New("telegram is not configured")

type Notify struct {
	Config  config.TelegramConfig
	Client  TelegramSender
	Breaker *gobreaker.CircuitBreaker
}

// InitNotifyBreaker - выключатель на случай недоступности Telegram:
// после пяти подряд неудач отправка сразу считается проваленной,
// вместо ожидания таймаута на каждом запросе
func InitNotifyBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "telegram",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker:", name, from.String(), "->", to.String())
		},
	})
}

// Создание сервиса
func NewNotify(cfg config.TelegramConfig, sender TelegramSender) NotifyService {
	return &Notify{Config: cfg, Client: sender, Breaker: InitNotifyBreaker()}
}

// NotifyOrder - уведомление о новой заявке в основной канал
func (n *Notify) NotifyOrder(ctx context.Context, submission *models.SubmissionData) error {
	return n.send(ctx, n.Config.BotToken, n.Config.ChatID,
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		FormatOrderMessage(submission))
}

// NotifyPayment - уведомление об успешной оплате. Использует
// отдельную пару бот/чат, при отсутствии - основную.
func (n *Notify) NotifyPayment(ctx context.Context, paymentID string, amount string, currency string, submission *models.SubmissionData) error {
	token := n.Config.PaymentBotToken
	if token == "" {
		token = n.Config.BotToken
	}
	chatID := n.Config.PaymentChatID
	if chatID == "" {
		chatID = n.Config.ChatID
	}
	return n.send(ctx, token, chatID,
		"TELEGRAM_PAYMENT_BOT_TOKEN", "TELEGRAM_PAYMENT_CHAT_ID",
		FormatPaymentMessage(paymentID, amount, currency, submission))
}

func (n *Notify) send(ctx context.Context, token string, chatID string, tokenName string, chatIDName string, text string) error {
	if token == "" {
		logger.Warn("Telegram: not sending, missing", tokenName)
		return ErrNotifyNotConfigured
	}
	if chatID == "" {
		logger.Warn("Telegram: not sending, missing", chatIDName)
		return ErrNotifyNotConfigured
	}
	_, err := n.Breaker.Execute(func() (interface{}, error) {
		return nil, n.Client.SendMessage(ctx, token, chatID, text)
	})
	return err
}

// FormatOrderMessage - текст уведомления о новой заявке.
// Чистая функция, завершается внешним идентификатором заявки.
func FormatOrderMessage(submission *models.SubmissionData) string {
	lines := []string{
		"🆕 Новая заявка",
		"",
		fmt.Sprintf("👤 %s %s", submission.Lastname, submission.Firstname),
		fmt.Sprintf("📞 %s", submission.Phone),
		fmt.Sprintf("✉️ %s", submission.Email),
	}
	if submission.Telegram != "" {
		lines = append(lines, fmt.Sprintf("💬 Telegram: %s", submission.Telegram))
	}
	lines = append(lines,
		fmt.Sprintf("📍 %s, %s", submission.Region, submission.City),
		fmt.Sprintf("🏠 %s", submission.Address),
	)
	if submission.Comment != "" {
		lines = append(lines, "", fmt.Sprintf("💬 Комментарий: %s", submission.Comment))
	}
	lines = append(lines, "", fmt.Sprintf("ID: %s", submission.UID))
	return strings.Join(lines, "\n")
}

// FormatPaymentMessage - текст уведомления об успешной оплате.
// Заявка может отсутствовать, тогда уведомление уходит без её данных.
func FormatPaymentMessage(paymentID string, amount string, currency string, submission *models.SubmissionData) string {
	lines := []string{
		"✅ Оплата прошла",
		"",
		fmt.Sprintf("💰 %s %s", amount, currency),
		fmt.Sprintf("ID платежа: %s", paymentID),
	}
	if submission != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("👤 %s %s", submission.Lastname, submission.Firstname),
			fmt.Sprintf("📞 %s", submission.Phone),
			fmt.Sprintf("✉️ %s", submission.Email),
			fmt.Sprintf("📍 %s, %s", submission.Region, submission.City),
			"",
			fmt.Sprintf("Заявка: %s", submission.UID),
		)
	}
	return strings.Join(lines, "\n")
}
