package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment types accepted at checkout. CREDIT bills against the customer's
// ledger; the other three are settled immediately.
const (
	PaymentTypeCash   = "CASH"
	PaymentTypeUPI    = "UPI"
	PaymentTypeBank   = "BANK"
	PaymentTypeCredit = "CREDIT"
)

// ValidPaymentType reports whether t is one of the four accepted types.
func ValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeCash, PaymentTypeUPI, PaymentTypeBank, PaymentTypeCredit:
		return true
	}
	return false
}

// InvoiceItem is one billed line. Product name and rate are snapshots taken
// at billing time so the invoice stays stable when the catalog changes.
type InvoiceItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice is an immutable record of a sale. OutstandingAtTime is the
// customer's balance at the moment of billing, kept as an audit snapshot.
type Invoice struct {
	ID                string          `json:"id"`
	InvoiceNumber     string          `json:"invoiceNumber"`
	Date              time.Time       `json:"date"`
	BranchID          string          `json:"branchId"`
	CustomerID        string          `json:"customerId"`
	CustomerName      string          `json:"customerName"`
	Items             []InvoiceItem   `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TotalTax          decimal.Decimal `json:"totalTax"`
	GrandTotal        decimal.Decimal `json:"grandTotal"`
	PaymentType       string          `json:"paymentType"`
	OutstandingAtTime decimal.Decimal `json:"outstandingAtTime"`
	IsSynced          bool            `json:"isSynced"`
}

// IsCredit reports whether the invoice bills against the customer ledger.
func (i Invoice) IsCredit() bool { return i.PaymentType == PaymentTypeCredit }
