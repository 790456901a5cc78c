package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentTarget describes a payment request: the payee descriptor, the
// canonical UPI URI built from it, and a scannable QR rendering of that URI.
type PaymentTarget struct {
	PayeeVPA  string          `json:"payeeVPA"`
	PayeeName string          `json:"payeeName"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Note      string          `json:"note"`
	URI       string          `json:"uri"`
	QRImage   []byte          `json:"-"` // PNG bytes
}
