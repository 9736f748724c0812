package submit_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/calendar"
	orderRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/order"
	"github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/pgerrors"
)

// UseCase use case подачи заявки клиентом
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

// Execute создает заявку в статусе pending и удерживает за ней дату
// Проверка даты и обе записи выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("SubmitOrder: client=%s, date=%s", req.ClientName, req.EventDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitOrder: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateDate(req.EventDate, now); err != nil {
		uc.logger.Warn("SubmitOrder: date=%s is in the past", req.EventDate.Format(domain.DateFormat))
		return nil, err
	}

	var created *domain.Order

	// 2. Проверка даты, создание заявки и пометка даты - атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Блокируем запись календаря на дату (FOR UPDATE), если она есть
		day, err := uc.calendarRepo.GetByDate(txCtx, req.EventDate)
		if err != nil && !errors.Is(err, calendarRepo.ErrDayNotFound) {
			return fmt.Errorf("%w: failed to get calendar day: %w", ErrInternal, err)
		}

		if day != nil {
			switch {
			case day.IsBusy():
				return ErrDateBusy
			case day.IsPending():
				return ErrDatePending
			}
		}

		// 2.2. Создаём заявку
		order, err := uc.orderRepo.Create(txCtx, &domain.Order{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			EventDate:   req.EventDate,
			Message:     req.Message,
			Status:      domain.OrderPending,
		})
		if err != nil {
			if errors.Is(err, orderRepo.ErrSerialization) {
				return ErrDatePending
			}
			return fmt.Errorf("%w: failed to create order: %w", ErrInternal, err)
		}

		// 2.3. Удерживаем дату за заявкой; занятая параллельно дата не перезаписывается
		if _, err := uc.calendarRepo.UpsertPending(txCtx, req.EventDate, order.ID); err != nil {
			if errors.Is(err, calendarRepo.ErrDateUnavailable) || errors.Is(err, calendarRepo.ErrSerialization) {
				return ErrDatePending
			}
			return fmt.Errorf("%w: failed to mark date pending: %w", ErrInternal, err)
		}

		created = order
		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(req, err)
	}

	uc.metrics.IncOrderSubmitted()

	// 3. Уведомление после фиксации транзакции
	uc.publisher.Publish(domain.Event{
		Kind:       domain.EventOrderSubmitted,
		Order:      created,
		OccurredAt: now,
	})

	uc.logger.Info("SubmitOrder: order id=%d created for date=%s", created.ID, created.EventDate.Format(domain.DateFormat))

	return &Response{
		OrderID:   created.ID,
		EventDate: created.EventDate,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

func (uc *UseCase) handleTxError(req *Request, err error) error {
	date := req.EventDate.Format(domain.DateFormat)

	switch {
	case errors.Is(err, ErrDateBusy):
		uc.logger.Warn("SubmitOrder: date=%s is already busy", date)
		return err
	case errors.Is(err, ErrDatePending):
		uc.logger.Warn("SubmitOrder: date=%s is held by another order", date)
		return err
	case pgerrors.IsSerializationFailure(err),
		pgerrors.IsUniqueViolation(err),
		errors.Is(err, calendarRepo.ErrSerialization),
		errors.Is(err, orderRepo.ErrSerialization):
		// параллельная заявка на ту же дату зафиксировалась раньше
		uc.logger.Warn("SubmitOrder: concurrent submission for date=%s: %v", date, err)
		return ErrDatePending
	}

	uc.logger.Error("SubmitOrder: failed for date=%s: %v", date, err)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
