package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/levushkin/orders-backend/internal/storage"
	"github.com/levushkin/orders-backend/internal/validators"
)

// SubmissionsService - приём заявок и обработка событий оплаты
type SubmissionsService interface {
	CreateOrder(ctx context.Context, request *models.OrderRequest) (string, error)
	ProcessPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
	GetSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionData, error)
	UpdateSubmission(ctx context.Context, uid string, update models.SubmissionUpdateRequest) error
}

// Ограничение выборки заявок в административном API
const MaxSubmissionsLimit = 100

type Submissions struct {
	Storage     storage.SubmissionsStorage
	Notify      NotifyService
	Payment     PaymentService
	BaseURL     string
	Description string
}

// Создание сервиса
func NewSubmissions(store storage.SubmissionsStorage, notify NotifyService, payment PaymentService, baseURL string, description string) SubmissionsService {
	return &Submissions{
		Storage:     store,
		Notify:      notify,
		Payment:     payment,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Description: description,
	}
}

// CreateOrder - проверяет форму, сохраняет заявку, уведомляет оператора
// и создаёт платёж. Возвращает URL страницы оплаты.
// Неудача уведомления или платежа не откатывает уже сохранённую заявку:
// администратор свяжется с клиентом вручную.
func (s *Submissions) CreateOrder(ctx context.Context, request *models.OrderRequest) (string, error) {
	if err := validators.ValidateOrder(request); err != nil {
		return "", err
	}

	submission := &models.SubmissionData{
		UID:       uuid.NewString(),
		Firstname: request.Firstname,
		Lastname:  request.Lastname,
		Phone:     request.Phone,
		Email:     request.Email,
		Telegram:  request.Telegram,
		Region:    request.Region,
		City:      request.City,
		Address:   request.Address,
		Comment:   request.Comment,
		Status:    models.SubmissionStatusNew,
	}
	if err := s.Storage.AddSubmission(ctx, submission); err != nil {
		return "", err
	}
	logger.Info("Submission saved", submission.UID)

	// уведомление по возможности, заявка уже сохранена
	if err := s.Notify.NotifyOrder(ctx, submission); err != nil {
		logger.Warn("Order notification failed:", err)
	}

	confirmationURL, err := s.Payment.CreatePayment(ctx,
		s.BaseURL+"/?payment=success",
		s.BaseURL+"/?payment=failed",
		s.Description,
		map[string]string{models.MetadataSubmissionUID: submission.UID},
	)
	if err != nil {
		return "", err
	}

	return confirmationURL, nil
}

// ProcessPaymentEvent - обработка события вебхука провайдера.
// Обрабатывается только payment.succeeded, остальные события
// подтверждаются без действий, чтобы провайдер не повторял доставку.
func (s *Submissions) ProcessPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	if event.Event != models.PaymentEventSucceeded {
		logger.Debug("Payment event ignored:", event.Event)
		return nil
	}

	// заявку ищем по uid из метаданных; если не нашли -
	// уведомление уходит без данных заказа
	var submission *models.SubmissionData
	if uid, ok := event.Object.Metadata[models.MetadataSubmissionUID]; ok {
		if _, err := uuid.Parse(uid); err != nil {
			logger.Warn("Payment event: malformed submission uid:", uid)
		} else {
			found, err := s.Storage.GetSubmission(ctx, uid)
			if err != nil {
				logger.Warn("Payment event: submission lookup failed:", uid, err)
			} else {
				submission = found
			}
		}
	}

	err := s.Notify.NotifyPayment(ctx,
		event.Object.ID,
		event.Object.Amount.Value,
		event.Object.Amount.Currency,
		submission,
	)
	if err != nil {
		logger.Warn("Payment notification failed:", err)
	}
	return nil
}

// GetSubmissions - выборка заявок для административного API
func (s *Submissions) GetSubmissions(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionData, error) {
	if filter.Limit <= 0 || filter.Limit > MaxSubmissionsLimit {
		filter.Limit = MaxSubmissionsLimit
	}
	if filter.Status != "" && !models.ValidSubmissionStatus(filter.Status) {
		return nil, &validators.ValidationError{Message: "Некорректный статус"}
	}
	return s.Storage.GetSubmissions(ctx, filter)
}

// UpdateSubmission - изменение статуса и заметок администратора
func (s *Submissions) UpdateSubmission(ctx context.Context, uid string, update models.SubmissionUpdateRequest) error {
	if !models.ValidSubmissionStatus(update.Status) {
		return &validators.ValidationError{Message: "Некорректный статус"}
	}
	return s.Storage.UpdateSubmission(ctx, uid, update.Status, update.AdminNotes)
}
