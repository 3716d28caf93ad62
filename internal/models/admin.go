package models

import "time"

// AdminLoginRequest - данные входа администратора
type AdminLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SubmissionUpdateRequest - изменяемые администратором поля заявки.
// Все остальные поля после создания только для чтения.
type SubmissionUpdateRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// SubmissionResponse - модель заявки для выдачи в административном API
type SubmissionResponse struct {
	UID        string `json:"uid"`
	Firstname  string `json:"firstname"`
	Lastname   string `json:"lastname"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Telegram   string `json:"telegram,omitempty"`
	Region     string `json:"region"`
	City       string `json:"city"`
	Address    string `json:"address"`
	Comment    string `json:"comment,omitempty"`
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// NewSubmissionResponse - преобразование заявки в модель выдачи
func NewSubmissionResponse(data *SubmissionData) SubmissionResponse {
	return SubmissionResponse{
		UID:        data.UID,
		Firstname:  data.Firstname,
		Lastname:   data.Lastname,
		Phone:      data.Phone,
		Email:      data.Email,
		Telegram:   data.Telegram,
		Region:     data.Region,
		City:       data.City,
		Address:    data.Address,
		Comment:    data.Comment,
		Status:     data.Status,
		AdminNotes: data.AdminNotes,
		CreatedAt:  data.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  data.UpdatedAt.Format(time.RFC3339),
	}
}
