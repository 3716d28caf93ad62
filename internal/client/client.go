package client

import (
	"net/http"
	"time"
)

// Таймаут исходящих запросов к внешним API.
// Медленный Telegram или ЮKassa не должен вешать обработчик.
const DefaultTimeout = 10 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient - http-клиент с ограниченным временем запроса
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}
