package services

import (
	"context"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentSvcFacade builds scannable payment requests. Purely a projection of
// configuration plus amount; no state.
type PaymentSvcFacade interface {
	// GeneratePaymentRequest validates the amount, builds the canonical UPI
	// URI for the configured payee and renders it as a QR image.
	GeneratePaymentRequest(ctx context.Context, amount decimal.Decimal) (*domain.PaymentTarget, error)
}
