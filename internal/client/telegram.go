package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Адрес Telegram Bot API по умолчанию
const TelegramAPIURL = "https://api.telegram.org"

var ErrTelegramUnavailable = errors.New("telegram api unavailable")

// TelegramMessage - тело запроса sendMessage
type TelegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type TelegramClient struct {
	baseURL    string
	httpClient HTTPClient
}

func NewTelegramClient(baseURL string, client HTTPClient) *TelegramClient {
	return &TelegramClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// SendMessage - отправка текстового сообщения в чат. Один запрос,
// без повторов: любая ошибка сети или не-200 статус считается неудачей.
func (c *TelegramClient) SendMessage(ctx context.Context, token string, chatID string, text string) error {
	url := c.baseURL + "/bot" + token + "/sendMessage"

	message := TelegramMessage{
		ChatID:                chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrTelegramUnavailable, resp.StatusCode)
	}
	return nil
}
