package models

// OrderRequest - данные формы заказа. Заполняется из JSON или
// form-encoded тела, дальше по коду сырые данные не ходят.
type OrderRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Telegram  string `json:"telegram"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Comment   string `json:"comment"`
}

// OrderResponse - ответ обработчика формы заказа
type OrderResponse struct {
	OK              bool   `json:"ok"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
	Error           string `json:"error,omitempty"`
}
