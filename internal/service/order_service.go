package service

import (
	"context"
	"errors"
	"math"

	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

var ErrServiceNotFound = errors.New("service not found")

type OrderService interface {
	// CreateOrder prices the order against its service and stores it. The
	// computed charge replaces whatever the caller supplied.
	CreateOrder(ctx context.Context, order *model.Order) error
	ListOrders(ctx context.Context) ([]model.Order, error)
}

type DefaultOrderService struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
}

func NewOrderService(orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository) OrderService {
	return &DefaultOrderService{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
	}
}

func (s *DefaultOrderService) CreateOrder(ctx context.Context, order *model.Order) error {
	// service_id holds the service's name, not a generated id.
	service, err := s.serviceRepo.GetByName(ctx, order.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return ErrDatabaseNotConfigured
		}
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}

	// No quantity-vs-min/max check: orders outside the service bounds are
	// accepted as-is.
	order.ChargePKR = roundPKR(float64(order.Quantity) / 1000.0 * service.RatePer1KPKR)

	return s.orderRepo.Create(ctx, order)
}

func (s *DefaultOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return []model.Order{}, nil
		}
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// roundPKR rounds a monetary value to 2 decimal places, half away from
// zero.
func roundPKR(v float64) float64 {
	return math.Round(v*100) / 100
}
