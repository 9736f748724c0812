package reject_order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

func normalizeRequest(req *Request) {
	if req.Reason == nil {
		return
	}
	reason := strings.TrimSpace(*req.Reason)
	if reason == "" {
		req.Reason = nil
		return
	}
	req.Reason = &reason
}

func validateRequest(req *Request) error {
	if req.OrderID <= 0 {
		return fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxRejectionReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}
	return nil
}
