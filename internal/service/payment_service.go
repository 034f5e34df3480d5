package service

import (
	"context"
	"fmt"

	"github.com/trinextgen/backoffice/internal/model"
	"github.com/trinextgen/backoffice/pkg/crm"
)

// PaymentService provides business logic for recording received funds.
type PaymentService interface {
	Create(ctx context.Context, token, clientID string, y *model.Payment) error
}

type paymentService struct {
	crm crm.Client
}

// NewPaymentService creates a PaymentService backed by the CRM API.
func NewPaymentService(c crm.Client) PaymentService {
	return &paymentService{crm: c}
}

func (s *paymentService) Create(ctx context.Context, token, clientID string, y *model.Payment) error {
	if clientID == "" {
		return fmt.Errorf("%w: client id is required", ErrInvalid)
	}
	if y.ProjectID == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalid)
	}
	if !y.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalid)
	}
	if !y.PaymentMethod.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalid, y.PaymentMethod)
	}
	return s.crm.CreatePayment(ctx, token, clientID, y)
}
