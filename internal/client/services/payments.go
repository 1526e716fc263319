package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carbid/internal/client/models"
	"github.com/dmitrijs2005/carbid/internal/client/validate"
)

type PaymentService interface {
	Pay(ctx context.Context, in models.PaymentInput) (models.Payment, error)
	Mine(ctx context.Context) ([]models.Payment, error)
	Get(ctx context.Context, id string) (models.Payment, error)
}

type paymentService struct {
	api PaymentAPI
}

func NewPaymentService(api PaymentAPI) PaymentService {
	return &paymentService{api: api}
}

func (s *paymentService) Pay(ctx context.Context, in models.PaymentInput) (models.Payment, error) {
	if err := validate.Struct(in); err != nil {
		return models.Payment{}, err
	}
	p, err := s.api.CreatePayment(ctx, in)
	if err != nil {
		return models.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	return p, nil
}

func (s *paymentService) Mine(ctx context.Context) ([]models.Payment, error) {
	list, err := s.api.MyPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}

func (s *paymentService) Get(ctx context.Context, id string) (models.Payment, error) {
	p, err := s.api.GetPayment(ctx, id)
	if err != nil {
		return models.Payment{}, fmt.Errorf("get payment %s: %w", id, err)
	}
	return p, nil
}
