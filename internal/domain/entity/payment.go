package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an immutable record of money collected against a customer's
// outstanding balance. Method is CASH, UPI or BANK (never CREDIT).
type Payment struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receiptNumber"`
	Date          time.Time       `json:"date"`
	CustomerID    string          `json:"customerId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Notes         string          `json:"notes,omitempty"`
	BranchID      string          `json:"branchId"`
}

// ValidPaymentMethod reports whether m is a settlement method usable for
// collections.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentTypeCash, PaymentTypeUPI, PaymentTypeBank:
		return true
	}
	return false
}
