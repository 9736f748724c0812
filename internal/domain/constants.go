package domain

// Формат даты во всех API и в календаре
const DateFormat = "2006-01-02"

// Ограничения на пользовательский ввод
const (
	MaxClientNameLength      = 100
	MaxClientPhoneLength     = 32
	MaxMessageLength         = 2000
	MaxRejectionReasonLength = 500
	MaxManualReasonLength    = 500
	MaxNewsTitleLength       = 200
)

// Значения по умолчанию
const (
	DefaultReminderLimit = 5
)
