package reject_order

// Request модель запроса на отклонение заявки
type Request struct {
	OrderID int64
	Reason  *string // причина отказа (опционально)
}

// Response результат отклонения заявки
type Response struct {
	OrderID int64
	Status  string
}
