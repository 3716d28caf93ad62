package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/levushkin/orders-backend/internal/client"
	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/shopspring/decimal"
)

// PaymentCreator - создание платежа у провайдера
type PaymentCreator interface {
	CreatePayment(ctx context.Context, request client.PaymentRequest, idempotenceKey string) (*client.PaymentResponse, error)
}

// PaymentService - создание платёжной сессии с фиксированной суммой
type PaymentService interface {
	CreatePayment(ctx context.Context, returnURL string, cancelURL string, description string, metadata map[string]string) (string, error)
}

var (
	ErrPaymentNotConfigured = errors.New("payment is not configured")
	ErrPaymentFailed        = errors.New("payment creation failed")
)

type Payment struct {
	Config config.PaymentConfig
	Client PaymentCreator
}

// Создание сервиса
func NewPayment(cfg config.PaymentConfig, creator PaymentCreator) PaymentService {
	return &Payment{Config: cfg, Client: creator}
}

// CreatePayment - создаёт платёж и возвращает URL страницы оплаты.
// На каждый вызов генерируется новый ключ идемпотентности, чтобы
// случайный повторный вызов не создал второй платёж.
func (p *Payment) CreatePayment(ctx context.Context, returnURL string, cancelURL string, description string, metadata map[string]string) (string, error) {
	if p.Config.ShopID == "" || p.Config.SecretKey == "" {
		logger.Warn("Payment: not configured, set YOOKASSA_SHOP_ID and YOOKASSA_SECRET_KEY")
		return "", ErrPaymentNotConfigured
	}

	amount, err := decimal.NewFromString(p.Config.Amount)
	if err != nil {
		logger.Error("Payment: invalid order amount:", p.Config.Amount, err)
		return "", ErrPaymentFailed
	}

	request := client.PaymentRequest{
		Amount: client.PaymentAmount{
			Value:    amount.StringFixed(2),
			Currency: p.Config.Currency,
		},
		Confirmation: client.PaymentConfirmation{
			Type:      "redirect",
			ReturnURL: returnURL,
			CancelURL: cancelURL,
		},
		Description: description,
		Capture:     true,
		Metadata:    metadata,
	}

	response, err := p.Client.CreatePayment(ctx, request, uuid.NewString())
	if err != nil {
		// провайдерские детали наружу не отдаются
		logger.Error("Payment: create failed:", err)
		return "", ErrPaymentFailed
	}

	return response.Confirmation.ConfirmationURL, nil
}
