package models

// Тип события вебхука ЮKassa, на которое реагирует сервис.
// Остальные распознанные события подтверждаются без обработки.
const PaymentEventSucceeded = "payment.succeeded"

// Ключ метаданных платежа с внешним идентификатором заявки
const MetadataSubmissionUID = "submission_uid"

// PaymentAmount - сумма платежа
type PaymentAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// PaymentObject - объект платежа из события вебхука
type PaymentObject struct {
	ID       string            `json:"id"`
	Amount   PaymentAmount     `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}

// PaymentEvent - событие вебхука платёжного провайдера
type PaymentEvent struct {
	Event  string        `json:"event"`
	Object PaymentObject `json:"object"`
}
