package dto

import "github.com/shopspring/decimal"

// SaveProductRequest body for POST /api/products and PUT /api/products/:id.
// On update, stock counts are replaced wholesale along with the rest.
type SaveProductRequest struct {
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	Rate       decimal.Decimal `json:"rate"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
	MinStock   int             `json:"minStock"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	StockCount map[string]int  `json:"stockCount,omitempty"`
}

// RefillRequest body for POST /api/products/:id/refill. Adds manufactured
// units at the hub.
type RefillRequest struct {
	Quantity int `json:"quantity"`
}

// TransferRequest body for POST /api/products/transfer (direct dispatch
// outside the request workflow).
type TransferRequest struct {
	ProductID  string `json:"productId"`
	FromBranch string `json:"fromBranch"`
	ToBranch   string `json:"toBranch"`
	Quantity   int    `json:"quantity"`
}

// RaiseStockRequestRequest body for POST /api/stock/requests.
type RaiseStockRequestRequest struct {
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	RequestType string `json:"requestType"` // REQUISITION | RETURN
}

// ProcessStockRequestRequest body for POST /api/stock/requests/:id/process.
type ProcessStockRequestRequest struct {
	Decision string `json:"decision"` // APPROVED | REJECTED
}

// ProductView catalog entry decorated with availability at the viewer's
// branch, for the inventory and billing screens.
type ProductView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	TaxPercent  decimal.Decimal `json:"taxPercent"`
	MinStock    int             `json:"minStock"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	StockCount  map[string]int  `json:"stockCount"`
	BranchStock int             `json:"branchStock"`
	TotalStock  int             `json:"totalStock"`
	StockStatus string          `json:"stockStatus"` // OUT | LOW | IN_STOCK
}
