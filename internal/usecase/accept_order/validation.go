package accept_order

import "fmt"

func validateRequest(req *Request) error {
	if req.OrderID <= 0 {
		return fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}
	return nil
}
