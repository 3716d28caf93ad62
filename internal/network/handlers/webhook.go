package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/levushkin/orders-backend/internal/services"
)

// PaymentWebhookHandler — приём событий оплаты от провайдера.
// Серверный колбэк, CSRF-защиты нет: канал закрывается на уровне
// развёртывания. Обработанное событие всегда подтверждается 200,
// иначе провайдер будет повторять доставку.
func PaymentWebhookHandler(s services.SubmissionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := r.Body.Close(); err != nil {
				logger.Error("Error to close body:", err)
			}
		}()

		var event models.PaymentEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			logger.Warn("Invalid webhook payload:", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		if event.Event == "" {
			logger.Warn("Webhook payload without event type")
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		if err := s.ProcessPaymentEvent(r.Context(), &event); err != nil {
			// подтверждаем в любом случае, событие уже обработано
			logger.Error("Payment event processing:", err)
		}
		w.WriteHeader(http.StatusOK)
	})
}
