package service

import (
	"context"
	"errors"

	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, payment *model.Payment) error
	ListPayments(ctx context.Context) ([]model.Payment, error)
}

type DefaultPaymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &DefaultPaymentService{
		paymentRepo: paymentRepo,
	}
}

// CreatePayment stores a customer-reported payment verbatim. No linkage to
// an order is checked or recorded.
func (s *DefaultPaymentService) CreatePayment(ctx context.Context, payment *model.Payment) error {
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return ErrDatabaseNotConfigured
		}
		return err
	}
	return nil
}

func (s *DefaultPaymentService) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return []model.Payment{}, nil
		}
		return nil, err
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return payments, nil
}
