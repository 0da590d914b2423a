package entity

import "github.com/shopspring/decimal"

// Customer is a dealer/retailer with a running credit ledger.
// Outstanding is maintained incrementally: credit invoices add to it,
// collected payments subtract from it (clamped at zero).
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Mobile      string          `json:"mobile"`
	Address     string          `json:"address"`
	GST         string          `json:"gst,omitempty"`
	Outstanding decimal.Decimal `json:"outstanding"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

// OverLimit reports whether the current outstanding already exceeds the
// credit limit.
func (c Customer) OverLimit() bool {
	return c.Outstanding.GreaterThan(c.CreditLimit)
}

// WouldExceedLimit reports whether billing the given amount on credit would
// push the outstanding past the limit.
func (c Customer) WouldExceedLimit(amount decimal.Decimal) bool {
	return c.Outstanding.Add(amount).GreaterThan(c.CreditLimit)
}
