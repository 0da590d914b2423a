package dto

// ChatRequest body for POST /api/assistant/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse assistant reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TrendSourceResponse one grounded web source behind a trends answer.
type TrendSourceResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// TrendsResponse market trends summary with its web sources.
type TrendsResponse struct {
	Text    string                `json:"text"`
	Sources []TrendSourceResponse `json:"sources"`
}

// EmailDraftRequest body for POST /api/assistant/email-draft.
type EmailDraftRequest struct {
	InvoiceID string `json:"invoiceId"`
}

// EmailDraftResponse generated payment-reminder email body.
type EmailDraftResponse struct {
	Draft string `json:"draft"`
}
