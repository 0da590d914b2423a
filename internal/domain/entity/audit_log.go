package entity

import "time"

// Audit action tags.
const (
	AuditInvoiceGenerated      = "INVOICE_GENERATED"
	AuditPaymentCollected      = "PAYMENT_COLLECTED"
	AuditCustomerAdded         = "CUSTOMER_ADDED"
	AuditCustomerUpdated       = "CUSTOMER_UPDATED"
	AuditProductAdded          = "PRODUCT_ADDED"
	AuditProductUpdated        = "PRODUCT_UPDATED"
	AuditStockRefilled         = "STOCK_REFILLED"
	AuditStockMoved            = "STOCK_MOVED"
	AuditStockRequestRaised    = "STOCK_REQUEST_RAISED"
	AuditStockRequestProcessed = "STOCK_REQUEST_PROCESSED"
)

// AuditLog is one entry of the append-only, newest-first trail of mutating
// actions. User is the acting user's display name, or "System" when no user
// is authenticated.
type AuditLog struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	User    string    `json:"user"`
	Date    time.Time `json:"date"`
	Details string    `json:"details"`
}
