package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers. CreditLimit defaults
// to 10,000 when zero or negative.
type CreateCustomerRequest struct {
	Name        string          `json:"name"`
	Mobile      string          `json:"mobile"`
	Address     string          `json:"address"`
	GST         string          `json:"gst,omitempty"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// UpdateCustomerRequest body for PUT /api/customers/:id. The outstanding
// balance cannot be set here; only billing and collections move it.
type UpdateCustomerRequest struct {
	Name        string          `json:"name"`
	Mobile      string          `json:"mobile"`
	Address     string          `json:"address"`
	GST         string          `json:"gst,omitempty"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// CollectPaymentRequest body for POST /api/payments.
type CollectPaymentRequest struct {
	CustomerID    string          `json:"customerId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"` // CASH | UPI | BANK
	Notes         string          `json:"notes,omitempty"`
}

// LedgerEntry one row of a customer's chronological ledger. Debit rows are
// credit invoices, credit rows are collected payments.
type LedgerEntry struct {
	Date      string          `json:"date"`
	Type      string          `json:"type"` // INVOICE | PAYMENT
	Reference string          `json:"reference"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// StatementResponse a customer's activity for one calendar month, with the
// ready-to-send share text.
type StatementResponse struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Month        string          `json:"month"` // YYYY-MM
	Entries      []LedgerEntry   `json:"entries"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	Closing      decimal.Decimal `json:"closing"`
	ShareText    string          `json:"shareText"`
	ShareLink    string          `json:"shareLink"`
}
