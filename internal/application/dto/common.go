package dto

// ErrorResponse standard error body for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Actor identifies the authenticated user performing a request. Handlers
// build it from JWT claims and pass it down; use cases apply role policy and
// stamp the audit trail with Name.
type Actor struct {
	UserID   string
	Name     string
	Role     string
	BranchID string
}
