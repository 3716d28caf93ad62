package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Адрес API ЮKassa по умолчанию
const YookassaAPIURL = "https://api.yookassa.ru/v3"

var (
	ErrPaymentUnavailable = errors.New("payment service unavailable")
	ErrNoConfirmationURL  = errors.New("payment response has no confirmation url")
)

// PaymentAmount - сумма создаваемого платежа
type PaymentAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// PaymentConfirmation - подтверждение через редирект на страницу оплаты
type PaymentConfirmation struct {
	Type      string `json:"type"`
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url,omitempty"`
}

// PaymentRequest - запрос создания платежа
type PaymentRequest struct {
	Amount       PaymentAmount       `json:"amount"`
	Confirmation PaymentConfirmation `json:"confirmation"`
	Description  string              `json:"description"`
	Capture      bool                `json:"capture"`
	Metadata     map[string]string   `json:"metadata,omitempty"`
}

type ConfirmationResponse struct {
	Type            string `json:"type"`
	ConfirmationURL string `json:"confirmation_url"`
}

// PaymentResponse - ответ API на создание платежа
type PaymentResponse struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Confirmation *ConfirmationResponse `json:"confirmation"`
}

type YookassaClient struct {
	baseURL    string
	shopID     string
	secretKey  string
	httpClient HTTPClient
}

func NewYookassaClient(baseURL string, shopID string, secretKey string, client HTTPClient) *YookassaClient {
	return &YookassaClient{
		baseURL:    baseURL,
		shopID:     shopID,
		secretKey:  secretKey,
		httpClient: client,
	}
}

// CreatePayment - создаёт платёж с редирект-подтверждением.
// Ключ идемпотентности передаётся вызывающим и должен быть новым
// на каждую попытку, чтобы случайный дубль не создал второй платёж.
func (c *YookassaClient) CreatePayment(ctx context.Context, request PaymentRequest, idempotenceKey string) (*PaymentResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", idempotenceKey)
	req.SetBasicAuth(c.shopID, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrPaymentUnavailable, resp.StatusCode)
	}

	var result PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	if result.Confirmation == nil || result.Confirmation.ConfirmationURL == "" {
		return nil, ErrNoConfirmationURL
	}

	return &result, nil
}
