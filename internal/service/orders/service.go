package orders

import (
	"context"
	"errors"
	"fmt"

	orderRepo "github.com/m04kA/EuroAsia-BookingService/internal/infra/storage/order"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/orders/models"
)

// Service сервис чтения заявок для админ-панели
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(orderRepo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// List возвращает все заявки: сначала pending, затем accepted, затем rejected,
// внутри группы от новых к старым
func (s *Service) List(ctx context.Context) (*models.OrderListResponse, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrder(order), nil
}
