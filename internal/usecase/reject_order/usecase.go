package reject_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/calendar"
	orderRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/order"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/pgerrors"
)

const decisionRejected = "rejected"

// UseCase use case отклонения заявки администратором
type UseCase struct {
	orderRepo    OrderRepository
	calendarRepo CalendarRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	calendarRepo CalendarRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		calendarRepo: calendarRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переводит заявку в rejected и освобождает удерживаемую ею дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("RejectOrder: order_id=%d", req.OrderID)

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RejectOrder: validation failed: %v", err)
		return nil, err
	}

	var order *domain.Order

	// 2. Смена статуса и освобождение даты в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем заявку
		o, err := uc.orderRepo.GetByID(txCtx, req.OrderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: failed to get order: %w", ErrInternal, err)
		}

		if !o.CanBeReviewed() {
			return fmt.Errorf("%w: status=%s", ErrOrderNotPending, o.Status)
		}

		// 2.2. Обновляем статус и причину
		if err := uc.orderRepo.UpdateStatus(txCtx, o.ID, domain.OrderRejected, req.Reason); err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: failed to update order status: %w", ErrInternal, err)
		}

		// 2.3. Освобождаем дату; ручная блокировка поверх заявки остаётся как есть
		freed, err := uc.calendarRepo.MarkFreeByOrder(txCtx, o.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to free date: %w", ErrInternal, err)
		}
		if freed == 0 {
			uc.logger.Warn("RejectOrder: order id=%d held no calendar date", o.ID)
		}

		o.Status = domain.OrderRejected
		o.RejectionReason = req.Reason
		order = o
		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(req.OrderID, err)
	}

	uc.metrics.IncOrderReviewed(decisionRejected)

	// 3. Уведомление после фиксации
	uc.publisher.Publish(domain.Event{
		Kind:       domain.EventOrderRejected,
		Order:      order,
		Reason:     order.RejectionReason,
		OccurredAt: uc.timeProvider.Now(),
	})

	uc.logger.Info("RejectOrder: order id=%d rejected", order.ID)

	return &Response{
		OrderID: order.ID,
		Status:  string(order.Status),
	}, nil
}

func (uc *UseCase) handleTxError(orderID int64, err error) error {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		uc.logger.Warn("RejectOrder: order id=%d not found", orderID)
		return err
	case errors.Is(err, ErrOrderNotPending):
		uc.logger.Warn("RejectOrder: order id=%d: %v", orderID, err)
		return err
	case pgerrors.IsSerializationFailure(err),
		errors.Is(err, calendarRepo.ErrSerialization),
		errors.Is(err, orderRepo.ErrSerialization):
		uc.logger.Warn("RejectOrder: concurrent update of order id=%d: %v", orderID, err)
		return ErrConcurrentUpdate
	}

	uc.logger.Error("RejectOrder: order id=%d: %v", orderID, err)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
