package mark_busy

import (
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

// MarkBusyRequest HTTP request model
type MarkBusyRequest struct {
	Date         string  `json:"date" validate:"required"` // "2026-12-25"
	ManualReason *string `json:"manual_reason,omitempty"`
}

// MarkBusyResponse HTTP response model
type MarkBusyResponse struct {
	Success    bool                        `json:"success"`
	Message    string                      `json:"message"`
	CalendarID int64                       `json:"calendar_id"`
	Day        *models.CalendarDayResponse `json:"day"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *MarkBusyRequest) ToServiceRequest() (*models.MarkBusyRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.MarkBusyRequest{
		Date:         date,
		ManualReason: r.ManualReason,
	}, nil
}
