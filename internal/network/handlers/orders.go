package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/levushkin/orders-backend/internal/services"
	"github.com/levushkin/orders-backend/internal/validators"
)

// OrderHandler — обработчик формы заказа: валидация, сохранение,
// уведомление и создание платежа
func OrderHandler(s services.SubmissionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := decodeOrderRequest(r)
		if err != nil {
			logger.Warn("Invalid order body:", err)
			writeOrderError(w, http.StatusBadRequest, "Некорректный формат запроса")
			return
		}

		confirmationURL, err := s.CreateOrder(r.Context(), request)
		if err != nil {
			var validationErr *validators.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeOrderError(w, http.StatusBadRequest, validationErr.Message)
			case errors.Is(err, services.ErrPaymentNotConfigured):
				// заявка уже сохранена, администратор свяжется вручную
				writeOrderError(w, http.StatusBadGateway, "Оплата не настроена. Свяжитесь с нами.")
			case errors.Is(err, services.ErrPaymentFailed):
				writeOrderError(w, http.StatusBadGateway, "Ошибка создания оплаты. Попробуйте позже.")
			default:
				logger.Error("Failed to save submission:", err)
				writeOrderError(w, http.StatusInternalServerError, "Не удалось сохранить заявку. Попробуйте позже.")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(models.OrderResponse{OK: true, ConfirmationURL: confirmationURL})
		if err != nil {
			logger.Error("Failed to encode JSON response:", err)
		}
	})
}

// decodeOrderRequest - нормализация тела запроса: форма принимает
// и JSON, и form-encoded, дальше по коду ходит только типизированная модель
func decodeOrderRequest(r *http.Request) (*models.OrderRequest, error) {
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Error("Error to close body:", err)
		}
	}()

	var request models.OrderRequest
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, err
		}
		return &request, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	request = models.OrderRequest{
		Firstname: r.PostFormValue("firstname"),
		Lastname:  r.PostFormValue("lastname"),
		Phone:     r.PostFormValue("phone"),
		Email:     r.PostFormValue("email"),
		Telegram:  r.PostFormValue("telegram"),
		Region:    r.PostFormValue("region"),
		City:      r.PostFormValue("city"),
		Address:   r.PostFormValue("address"),
		Comment:   r.PostFormValue("comment"),
	}
	return &request, nil
}

func writeOrderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.OrderResponse{OK: false, Error: message}); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}
