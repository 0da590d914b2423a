package dto

import "github.com/shopspring/decimal"

// DashboardResponse headline numbers for the signed-in user's scope: the
// whole network for a factory admin, one branch for everyone else.
type DashboardResponse struct {
	BranchID      string          `json:"branchId,omitempty"` // empty = all branches
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Outstanding   decimal.Decimal `json:"outstanding"`
	InvoiceCount  int             `json:"invoiceCount"`
	LowStockCount int             `json:"lowStockCount"`
}

// SalesReportRow one invoice in the sales report.
type SalesReportRow struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          string          `json:"date"`
	CustomerName  string          `json:"customerName"`
	BranchID      string          `json:"branchId"`
	PaymentType   string          `json:"paymentType"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
}

// SalesReportResponse invoices for a period plus totals.
type SalesReportResponse struct {
	Period     string           `json:"period"` // today | yesterday | month | all
	Rows       []SalesReportRow `json:"rows"`
	TotalSales decimal.Decimal  `json:"totalSales"`
	TotalTax   decimal.Decimal  `json:"totalTax"`
	Count      int              `json:"count"`
}

// BranchPosition per-branch line of the balance sheet.
type BranchPosition struct {
	BranchID       string          `json:"branchId"`
	BranchName     string          `json:"branchName"`
	Sales          decimal.Decimal `json:"sales"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
}

// BalanceSheetResponse the derived financial position. Assets and
// liabilities are computed from the transaction log on every call; fixed
// asset and depreciation figures are business constants.
type BalanceSheetResponse struct {
	AsOf string `json:"asOf"`

	CashOnHand          decimal.Decimal `json:"cashOnHand"`
	AccountsReceivable  decimal.Decimal `json:"accountsReceivable"`
	InventoryValue      decimal.Decimal `json:"inventoryValue"`
	FixedAssets         decimal.Decimal `json:"fixedAssets"`
	AccumDepreciation   decimal.Decimal `json:"accumDepreciation"`
	TotalAssets         decimal.Decimal `json:"totalAssets"`

	TaxPayable       decimal.Decimal `json:"taxPayable"`
	SundryCreditors  decimal.Decimal `json:"sundryCreditors"`
	OtherLiabilities decimal.Decimal `json:"otherLiabilities"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`

	Equity decimal.Decimal `json:"equity"`

	Branches []BranchPosition `json:"branches"`
}
