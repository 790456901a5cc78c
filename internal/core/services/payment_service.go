package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/daanseva/donation_backend/internal/core/domain"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrMisconfiguredPayee = errors.New("payee VPA is not configured")
	ErrEncodingFailure    = errors.New("failed to encode payment QR")
)

const paymentCurrency = "INR"

// qrImageSize is the edge length in pixels of the rendered QR PNG.
const qrImageSize = 512

// paymentService builds UPI payment requests for the configured payee.
// Stateless: a pure projection of configuration plus amount.
type paymentService struct {
	payeeVPA  string
	payeeName string
}

// NewPaymentService creates a new payment request generator.
func NewPaymentService(cfg *config.Config) portssvc.PaymentSvcFacade {
	return &paymentService{
		payeeVPA:  cfg.UPIPayeeVPA,
		payeeName: cfg.UPIPayeeName,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// GeneratePaymentRequest builds the canonical upi://pay URI for the amount
// and renders it as a QR image. Fails closed while the payee VPA is unset or
// still the shipped placeholder, so a misconfigured server never hands out
// codes that route money nowhere.
func (s *paymentService) GeneratePaymentRequest(ctx context.Context, amount decimal.Decimal) (*domain.PaymentTarget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if s.payeeVPA == "" || s.payeeVPA == config.PlaceholderPayeeVPA {
		logger.Error("Payment request refused: payee VPA unset or placeholder")
		return nil, ErrMisconfiguredPayee
	}

	note := "Donation to " + s.payeeName
	q := url.Values{}
	q.Set("pa", s.payeeVPA)
	q.Set("pn", s.payeeName)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", paymentCurrency)
	q.Set("tn", note)
	uri := "upi://pay?" + q.Encode()

	png, err := qrcode.Encode(uri, qrcode.Medium, qrImageSize)
	if err != nil {
		logger.Error("QR encoding failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}

	logger.Debug("Payment request generated", "amount", amount.StringFixed(2))
	return &domain.PaymentTarget{
		PayeeVPA:  s.payeeVPA,
		PayeeName: s.payeeName,
		Amount:    amount,
		Currency:  paymentCurrency,
		Note:      note,
		URI:       uri,
		QRImage:   png,
	}, nil
}
