package accept_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/calendar"
	orderRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/order"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/pgerrors"
)

const decisionAccepted = "accepted"

// UseCase use case принятия заявки администратором
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

// Execute переводит заявку в accepted и занимает дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcceptOrder: order_id=%d", req.OrderID)

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcceptOrder: validation failed: %v", err)
		return nil, err
	}

	var (
		order *domain.Order
		day   *domain.CalendarDay
	)

	// 2. Смена статуса и занятие даты в одной транзакции
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

		// 2.2. Блокируем запись календаря; чужая занятость не перезаписывается
		current, err := uc.calendarRepo.GetByDate(txCtx, o.EventDate)
		if err != nil && !errors.Is(err, calendarRepo.ErrDayNotFound) {
			return fmt.Errorf("%w: failed to get calendar day: %w", ErrInternal, err)
		}
		if current != nil && !current.AcceptsNewOrder() && !current.IsHeldBy(o.ID) {
			return ErrDateUnavailable
		}

		// 2.3. Обновляем статус заявки
		if err := uc.orderRepo.UpdateStatus(txCtx, o.ID, domain.OrderAccepted, nil); err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: failed to update order status: %w", ErrInternal, err)
		}

		// 2.4. Дата становится busy за этой заявкой
		d, err := uc.calendarRepo.MarkBusy(txCtx, o.EventDate, o.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to mark date busy: %w", ErrInternal, err)
		}

		o.Status = domain.OrderAccepted
		order, day = o, d
		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(req.OrderID, err)
	}

	uc.metrics.IncOrderReviewed(decisionAccepted)

	// 3. Уведомление после фиксации
	uc.publisher.Publish(domain.Event{
		Kind:       domain.EventOrderAccepted,
		Order:      order,
		OccurredAt: uc.timeProvider.Now(),
	})

	uc.logger.Info("AcceptOrder: order id=%d accepted, calendar id=%d", order.ID, day.ID)

	return &Response{
		OrderID:    order.ID,
		CalendarID: day.ID,
		EventDate:  order.EventDate,
		Status:     string(order.Status),
	}, nil
}

func (uc *UseCase) handleTxError(orderID int64, err error) error {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		uc.logger.Warn("AcceptOrder: order id=%d not found", orderID)
		return err
	case errors.Is(err, ErrOrderNotPending), errors.Is(err, ErrDateUnavailable):
		uc.logger.Warn("AcceptOrder: order id=%d: %v", orderID, err)
		return err
	case pgerrors.IsSerializationFailure(err),
		errors.Is(err, calendarRepo.ErrSerialization),
		errors.Is(err, orderRepo.ErrSerialization):
		uc.logger.Warn("AcceptOrder: concurrent update of order id=%d: %v", orderID, err)
		return ErrConcurrentUpdate
	}

	uc.logger.Error("AcceptOrder: order id=%d: %v", orderID, err)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
