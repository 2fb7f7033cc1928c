package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates whether a work entry has been paid out.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// NormalizePaymentStatus coerces any value outside the known set to unpaid.
// Imports never reject on payment status; this is a lenient policy, not an
// oversight.
func NormalizePaymentStatus(s string) PaymentStatus {
	if PaymentStatus(s) == PaymentStatusPaid {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

// WorkEntry represents one unit of income logged by a user.
// Date carries no time component and is stored as YYYY-MM-DD.
type WorkEntry struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
