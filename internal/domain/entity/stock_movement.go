package entity

import "time"

// Movement kinds. SALE is reserved in the model; billing consumes stock
// directly and does not emit movements.
const (
	MovementTypeSupply = "SUPPLY"
	MovementTypeReturn = "RETURN"
	MovementTypeSale   = "SALE"
)

// StockMovement is an append-only record of a completed inter-branch
// transfer. Branch and product names are snapshots for display.
type StockMovement struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	FromBranch     string    `json:"fromBranch"`
	ToBranch       string    `json:"toBranch"`
	FromBranchName string    `json:"fromBranchName"`
	ToBranchName   string    `json:"toBranchName"`
	Quantity       int       `json:"quantity"`
	Date           time.Time `json:"date"`
	Type           string    `json:"type"`
}
