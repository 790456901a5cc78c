package dto

import (
	"encoding/base64"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GeneratePaymentRequest asks for a scannable payment request for an amount.
type GeneratePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// PaymentTargetResponse carries the payee descriptor, the canonical UPI URI
// and the QR image as base64-encoded PNG.
type PaymentTargetResponse struct {
	PayeeVPA  string `json:"payeeVPA"`
	PayeeName string `json:"payeeName"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Note      string `json:"note"`
	URI       string `json:"uri"`
	QRImage   string `json:"qrImage"`
}

// ToPaymentTargetResponse converts a domain.PaymentTarget to its DTO.
func ToPaymentTargetResponse(t *domain.PaymentTarget) PaymentTargetResponse {
	return PaymentTargetResponse{
		PayeeVPA:  t.PayeeVPA,
		PayeeName: t.PayeeName,
		Amount:    t.Amount.StringFixed(2),
		Currency:  t.Currency,
		Note:      t.Note,
		URI:       t.URI,
		QRImage:   base64.StdEncoding.EncodeToString(t.QRImage),
	}
}
