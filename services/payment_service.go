package services

import (
	"context"

	"fitcoach-backend/models"
	"fitcoach-backend/store"
)

// PaymentService wraps payment persistence and currency/status defaults.
type PaymentService struct {
	Store store.Store
}

func NewPaymentService(s store.Store) *PaymentService {
	return &PaymentService{Store: s}
}

func (s *PaymentService) Create(ctx context.Context, p *models.Payment) error {
	if p.Currency == "" {
		p.Currency = "INR"
	}
	if p.Status == "" {
		p.Status = "paid"
	}
	return s.Store.CreatePayment(ctx, p)
}

func (s *PaymentService) ListByClient(ctx context.Context, clientID string) ([]models.Payment, error) {
	return s.Store.ListPaymentsByClient(ctx, clientID)
}
