package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry with per-branch on-hand quantities.
// StockCount maps branch id to units on hand; a missing key means zero.
// Quantities never go below zero: every mutation clamps at zero.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SKU        string          `json:"sku"`
	Category   string          `json:"category"`
	Unit       string          `json:"unit"`
	Rate       decimal.Decimal `json:"rate"`
	TaxPercent decimal.Decimal `json:"taxPercent"`
	MinStock   int             `json:"minStock"`
	ImageURL   string          `json:"imageUrl,omitempty"`
	StockCount map[string]int  `json:"stockCount"`
}

// Stock status labels as shown on the inventory and billing screens.
const (
	StockStatusOut = "OUT"
	StockStatusLow = "LOW"
	StockStatusOK  = "IN_STOCK"
)

// StockAt returns the on-hand quantity at a branch (zero when absent).
func (p Product) StockAt(branchID string) int {
	return p.StockCount[branchID]
}

// TotalStock sums on-hand quantities across every branch.
func (p Product) TotalStock() int {
	total := 0
	for _, qty := range p.StockCount {
		total += qty
	}
	return total
}

// StockStatusAt classifies availability at a branch against MinStock.
func (p Product) StockStatusAt(branchID string) string {
	qty := p.StockAt(branchID)
	switch {
	case qty <= 0:
		return StockStatusOut
	case qty < p.MinStock:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}
