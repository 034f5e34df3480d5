package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/trinextgen/backoffice/internal/model"
)

func validTestPayment() *model.Payment {
	return &model.Payment{
		ProjectID:     "p1",
		Amount:        decimal.NewFromInt(25000),
		PaymentDate:   "2026-03-15",
		PaymentMethod: model.MethodBankTransfer,
	}
}

func TestPaymentService_Create_OK(t *testing.T) {
	var sent *model.Payment
	mock := &mockCRMClient{
		createPaymentFunc: func(_ context.Context, token, clientID string, y *model.Payment) error {
			if token != "tok" || clientID != "c1" {
				t.Errorf("token/clientID = %q/%q", token, clientID)
			}
			sent = y
			return nil
		},
	}
	svc := NewPaymentService(mock)

	if err := svc.Create(context.Background(), "tok", "c1", validTestPayment()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent == nil || !sent.Amount.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("payload not forwarded: %+v", sent)
	}
}

func TestPaymentService_Create_RejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(y *model.Payment)
	}{
		{"missing project id", func(y *model.Payment) { y.ProjectID = "" }},
		{"zero amount", func(y *model.Payment) { y.Amount = decimal.Zero }},
		{"negative amount", func(y *model.Payment) { y.Amount = decimal.NewFromInt(-100) }},
		{"unknown method", func(y *model.Payment) { y.PaymentMethod = "Barter" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockCRMClient{
				createPaymentFunc: func(_ context.Context, _, _ string, _ *model.Payment) error {
					called = true
					return nil
				},
			}
			svc := NewPaymentService(mock)

			y := validTestPayment()
			tt.mutate(y)
			if err := svc.Create(context.Background(), "tok", "c1", y); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if called {
				t.Error("invalid payload must never reach the upstream")
			}
		})
	}
}
