package submit_order

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

const minPhoneDigits = 7

var validate = validator.New()

// normalizeRequest обрезает пробелы и превращает пустые опциональные поля в nil
func normalizeRequest(req *Request) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	req.ClientEmail = trimmedOrNil(req.ClientEmail)
	req.Message = trimmedOrNil(req.Message)
}

// validateRequest проверяет обязательные поля и форматы
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client_name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: client_name is too long", ErrInvalidInput)
	}

	if err := validatePhone(req.ClientPhone); err != nil {
		return err
	}

	if req.ClientEmail != nil {
		if err := validate.Var(*req.ClientEmail, "email"); err != nil {
			return fmt.Errorf("%w: client_email has invalid format", ErrInvalidInput)
		}
	}

	if req.Message != nil && utf8.RuneCountInString(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	if req.EventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", ErrInvalidInput)
	}

	return nil
}

// validatePhone допускает цифры, пробелы, '+', '-', скобки; цифр не меньше minPhoneDigits
func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: client_phone is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(phone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: client_phone is too long", ErrInvalidInput)
	}

	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return fmt.Errorf("%w: client_phone has invalid characters", ErrInvalidInput)
		}
	}
	if digits < minPhoneDigits {
		return fmt.Errorf("%w: client_phone is too short", ErrInvalidInput)
	}

	return nil
}

// validateDate дата мероприятия не может быть раньше сегодняшней
func validateDate(eventDate, now time.Time) error {
	if truncateToDay(eventDate).Before(truncateToDay(now)) {
		return ErrDateInPast
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
