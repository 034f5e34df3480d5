package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of channels funds arrive through.
type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodUPI          PaymentMethod = "UPI"
	MethodCash         PaymentMethod = "Cash"
	MethodCheque       PaymentMethod = "Cheque"
	MethodCard         PaymentMethod = "Card"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodUPI, MethodCash, MethodCheque, MethodCard:
		return true
	}
	return false
}

// Payment is a discrete funds-received record attached to one project and,
// transitively, one client. Screenshot holds an encoded proof-of-payment
// image (same data URI convention as ProjectFile).
type Payment struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"projectId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"paymentDate"` // YYYY-MM-DD
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	Screenshot    string          `json:"screenshot,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
