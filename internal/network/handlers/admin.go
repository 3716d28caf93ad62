package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/levushkin/orders-backend/internal/services"
	"github.com/levushkin/orders-backend/internal/storage"
	"github.com/levushkin/orders-backend/internal/validators"
)

// AdminLoginHandler — аутентификация администратора
func AdminLoginHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if !i.Authenticate(request.Login, request.Password) {
			logger.Warn("Authentication failed", request.Login)
			http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			return
		}

		token, err := i.GenerateJWT(request.Login)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Info("Admin authenticated", request.Login)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// GetSubmissionsHandler — список заявок, новые сверху.
// Параметры: status - фильтр по статусу, limit - размер выборки.
func GetSubmissionsHandler(s services.SubmissionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := models.SubmissionFilter{
			Status: r.URL.Query().Get("status"),
		}
		if limit := r.URL.Query().Get("limit"); limit != "" {
			value, err := strconv.Atoi(limit)
			if err != nil {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			filter.Limit = value
		}

		submissions, err := s.GetSubmissions(r.Context(), filter)
		if err != nil {
			var validationErr *validators.ValidationError
			if errors.As(err, &validationErr) {
				http.Error(w, validationErr.Message, http.StatusBadRequest)
				return
			}
			logger.Error("Failed to get submissions:", err)
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.SubmissionResponse, 0, len(submissions))
		for index := range submissions {
			response = append(response, models.NewSubmissionResponse(&submissions[index]))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateSubmissionHandler — изменение статуса и заметок заявки
func UpdateSubmissionHandler(s services.SubmissionsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")

		var update models.SubmissionUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := s.UpdateSubmission(r.Context(), uid, update); err != nil {
			var validationErr *validators.ValidationError
			switch {
			case errors.As(err, &validationErr):
				http.Error(w, validationErr.Message, http.StatusBadRequest)
			case errors.Is(err, storage.ErrNotFound):
				http.Error(w, "Submission not found", http.StatusNotFound)
			default:
				logger.Error("Failed to update submission:", err)
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
