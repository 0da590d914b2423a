package state

import (
	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/domain/entity"
)

// Branches returns the fixed branch network. The hub carries manufacturing
// stock; B1..B4 are sales branches.
func Branches() []entity.Branch {
	return []entity.Branch{
		{ID: entity.HubBranchID, Name: "Head Office (Factory)", Location: "Industrial Area, Phase 2", GSTIN: "24AAAAA0000A1Z5"},
		{ID: "B1", Name: "Ahmedabad Branch", Location: "Navrangpura", GSTIN: "24AAAAA1111A1Z5"},
		{ID: "B2", Name: "Rajkot Branch", Location: "GIDC", GSTIN: "24AAAAA2222A1Z5"},
		{ID: "B3", Name: "Surat Branch", Location: "Varachha", GSTIN: "24AAAAA3333A1Z5"},
		{ID: "B4", Name: "Vadodara Branch", Location: "Sayajiganj", GSTIN: "24AAAAA4444A1Z5"},
	}
}

// SeedProducts is the catalog installed on first run.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:         "P1",
			Name:       "EESAA TT-Series (Commercial)",
			SKU:        "TT-PRO-30",
			Category:   "Commercial",
			Unit:       "PCS",
			Rate:       decimal.NewFromInt(5200),
			TaxPercent: decimal.NewFromInt(18),
			MinStock:   20,
			StockCount: map[string]int{entity.HubBranchID: 100, "B1": 5, "B2": 8, "B3": 20, "B4": 5},
			ImageURL:   "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?w=400",
		},
		{
			ID:         "P2",
			Name:       "EESAA Heavy Platform Scale",
			SKU:        "PS-PLAT-500",
			Category:   "Industrial",
			Unit:       "PCS",
			Rate:       decimal.NewFromInt(18500),
			TaxPercent: decimal.NewFromInt(18),
			MinStock:   10,
			StockCount: map[string]int{entity.HubBranchID: 50, "B1": 0, "B2": 2, "B3": 10, "B4": 1},
			ImageURL:   "https://images.unsplash.com/photo-1565647952915-9644fcd446a4?w=400",
		},
		{
			ID:         "P7",
			Name:       "EESAA Mainboard Spare Kit",
			SKU:        "MB-KIT-V2",
			Category:   "Spares",
			Unit:       "KIT",
			Rate:       decimal.NewFromInt(2800),
			TaxPercent: decimal.NewFromInt(18),
			MinStock:   50,
			StockCount: map[string]int{entity.HubBranchID: 300, "B1": 50, "B2": 30, "B3": 60, "B4": 20},
			ImageURL:   "https://images.unsplash.com/photo-1518770660439-4636190af475?w=400",
		},
		{
			ID:         "P3",
			Name:       "Precision Scale - 600g",
			SKU:        "JS-600",
			Category:   "Precision",
			Unit:       "PCS",
			Rate:       decimal.NewFromInt(3200),
			TaxPercent: decimal.NewFromInt(18),
			MinStock:   15,
			StockCount: map[string]int{entity.HubBranchID: 200, "B1": 30, "B2": 25, "B3": 40, "B4": 10},
			ImageURL:   "https://images.unsplash.com/photo-1522336572468-97b06e8ef143?w=400",
		},
	}
}

// SeedCustomers is the dealer ledger installed on first run.
func SeedCustomers() []entity.Customer {
	return []entity.Customer{
		{
			ID:          "C1",
			Name:        "Radhe Electronics",
			Mobile:      "9876543210",
			Address:     "Plot 42, GIDC Sector 10, Ahmedabad",
			Outstanding: decimal.NewFromInt(15400),
			CreditLimit: decimal.NewFromInt(50000),
		},
		{
			ID:          "C2",
			Name:        "Shakti Metals",
			Mobile:      "9988776655",
			Address:     "B-201, Industrial Plaza, Rajkot",
			GST:         "24BBBBB0000B1Z5",
			Outstanding: decimal.NewFromInt(2500),
			CreditLimit: decimal.NewFromInt(20000),
		},
		{
			ID:          "C3",
			Name:        "Pooja Kirana Store",
			Mobile:      "9123456789",
			Address:     "Main Bazar, Near Bus Stop, Surat",
			Outstanding: decimal.Zero,
			CreditLimit: decimal.NewFromInt(10000),
		},
	}
}
