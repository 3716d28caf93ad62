package validators

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/levushkin/orders-backend/internal/models"
)

// Максимальные длины полей формы, совпадают со схемой БД
const (
	MaxNameLen    = 100
	MaxPhoneLen   = 20
	MaxEmailLen   = 254
	MaxRegionLen  = 200
	MaxCityLen    = 100
	MaxAddressLen = 300
	MaxCommentLen = 2000
)

// ValidationError - ошибка проверки формы с текстом для пользователя
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NormalizeOrder - приводит поля формы к каноническому виду: обрезает
// пробелы, одиночный "@" в telegram считает пустым значением
func NormalizeOrder(request *models.OrderRequest) {
	request.Firstname = strings.TrimSpace(request.Firstname)
	request.Lastname = strings.TrimSpace(request.Lastname)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Email = strings.TrimSpace(request.Email)
	request.Telegram = strings.TrimSpace(request.Telegram)
	request.Region = strings.TrimSpace(request.Region)
	request.City = strings.TrimSpace(request.City)
	request.Address = strings.TrimSpace(request.Address)
	request.Comment = strings.TrimSpace(request.Comment)

	if request.Telegram == "@" {
		request.Telegram = ""
	}
}

// ValidateOrder - нормализует и проверяет поля формы заказа.
// Слишком длинные значения отклоняются, а не обрезаются.
func ValidateOrder(request *models.OrderRequest) error {
	NormalizeOrder(request)

	required := []struct {
		Name  string
		Value string
	}{
		{"firstname", request.Firstname},
		{"lastname", request.Lastname},
		{"phone", request.Phone},
		{"email", request.Email},
		{"region", request.Region},
		{"city", request.City},
		{"address", request.Address},
	}
	var missing []string
	for _, field := range required {
		if field.Value == "" {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Message: fmt.Sprintf("Обязательные поля: %s", strings.Join(missing, ", "))}
	}

	limits := []struct {
		Name  string
		Value string
		Max   int
	}{
		{"firstname", request.Firstname, MaxNameLen},
		{"lastname", request.Lastname, MaxNameLen},
		{"phone", request.Phone, MaxPhoneLen},
		{"email", request.Email, MaxEmailLen},
		{"telegram", request.Telegram, MaxNameLen},
		{"region", request.Region, MaxRegionLen},
		{"city", request.City, MaxCityLen},
		{"address", request.Address, MaxAddressLen},
		{"comment", request.Comment, MaxCommentLen},
	}
	for _, field := range limits {
		if len([]rune(field.Value)) > field.Max {
			return &ValidationError{Message: fmt.Sprintf("Слишком длинное значение поля: %s", field.Name)}
		}
	}

	if !CheckEmail(request.Email) {
		return &ValidationError{Message: "Некорректный email"}
	}

	return nil
}

// CheckEmail - проверяет синтаксис адреса электронной почты
func CheckEmail(email string) bool {
	address, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// адрес с display name ("Имя <a@b>") формой не считается корректным
	return address.Address == email
}
