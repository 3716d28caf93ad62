package models

import "time"

// Статусы заявки. Меняются только администратором.
const (
	SubmissionStatusNew        = "new"
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusDone       = "done"
	SubmissionStatusCancelled  = "cancelled"
)

// ValidSubmissionStatus - проверка допустимости статуса заявки
func ValidSubmissionStatus(status string) bool {
	switch status {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusDone, SubmissionStatusCancelled:
		return true
	}
	return false
}

// SubmissionData - модель заявки (заказа) из формы на сайте.
// ID - внутренний идентификатор, наружу не отдаётся.
// UID - внешний идентификатор, единственный, который попадает
// в метаданные платежа и уведомления.
type SubmissionData struct {
	ID         int64
	UID        string
	Firstname  string
	Lastname   string
	Phone      string
	Email      string
	Telegram   string
	Region     string
	City       string
	Address    string
	Comment    string
	Status     string
	AdminNotes string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SubmissionFilter - параметры выборки заявок для административного API
type SubmissionFilter struct {
	Status string
	Limit  int
}
