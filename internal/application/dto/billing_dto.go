package dto

// CartLineRequest one line of the checkout cart. Rate and tax come from the
// catalog, never from the client.
type CartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest body for POST /api/billing/checkout. BranchID defaults to
// the acting user's home branch when empty. Override acknowledges a credit
// limit breach and lets the sale proceed.
type CheckoutRequest struct {
	CustomerID  string            `json:"customerId"`
	BranchID    string            `json:"branchId,omitempty"`
	Items       []CartLineRequest `json:"items"`
	PaymentType string            `json:"paymentType"`
	Override    bool              `json:"override,omitempty"`
}

// ShareTextResponse plain text plus a WhatsApp deep link for sharing an
// invoice or a monthly statement.
type ShareTextResponse struct {
	Text string `json:"text"`
	Link string `json:"link"`
}
