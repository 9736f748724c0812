package get_calendar_range

import (
	"net/http"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// RangeQuery параметры запроса ?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
type RangeQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ParseRangeQuery разбирает query параметры; отсутствующий параметр остаётся nil
func ParseRangeQuery(r *http.Request) (*RangeQuery, error) {
	start, err := parseOptionalDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	end, err := parseOptionalDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &RangeQuery{StartDate: start, EndDate: end}, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
