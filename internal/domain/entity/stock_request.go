package entity

import "time"

// Stock request lifecycle. PENDING is the only initial status; APPROVED and
// REJECTED are terminal.
const (
	RequestStatusPending  = "PENDING"
	RequestStatusApproved = "APPROVED"
	RequestStatusRejected = "REJECTED"
)

// Request direction relative to the hub.
const (
	RequestTypeRequisition = "REQUISITION" // branch asks the hub to supply it
	RequestTypeReturn      = "RETURN"      // branch sends stock back to the hub
)

// StockRequest is a branch's pending requisition or return, awaiting a
// decision at the hub.
type StockRequest struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	BranchID    string    `json:"branchId"`
	BranchName  string    `json:"branchName"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	RequestType string    `json:"requestType"`
}

// ValidRequestType reports whether t is REQUISITION or RETURN.
func ValidRequestType(t string) bool {
	return t == RequestTypeRequisition || t == RequestTypeReturn
}

// ValidDecision reports whether d is a terminal status a pending request can
// move to.
func ValidDecision(d string) bool {
	return d == RequestStatusApproved || d == RequestStatusRejected
}
