package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок Postgres, которые имеют бизнес-смысл
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
)

// IsUniqueViolation нарушение уникального ключа (например, дата в календаре)
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation ссылка на несуществующую запись
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsSerializationFailure конфликт SERIALIZABLE транзакций
func IsSerializationFailure(err error) bool {
	return hasCode(err, codeSerializationFailure)
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
