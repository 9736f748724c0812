package reject_order

import (
	"context"

	rejectOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/reject_order"
)

type RejectOrderUseCase interface {
	Execute(ctx context.Context, req *rejectOrder.Request) (*rejectOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
