package accept_order

import (
	"context"

	acceptOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/accept_order"
)

type AcceptOrderUseCase interface {
	Execute(ctx context.Context, req *acceptOrder.Request) (*acceptOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
