package submit_order

import "time"

// Request модель запроса на подачу заявки
type Request struct {
	ClientName  string    // Имя клиента
	ClientPhone string    // Телефон
	ClientEmail *string   // Email (опционально)
	EventDate   time.Time // Дата мероприятия (без времени)
	Message     *string   // Комментарий клиента (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	OrderID   int64     // ID заявки
	EventDate time.Time // Дата мероприятия
	Status    string    // Статус заявки (всегда pending)
	CreatedAt time.Time // Время создания
}
