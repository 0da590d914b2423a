// Package reports derives the read-only financial views from the
// transaction log: the dashboard, period sales reports and the balance
// sheet. Nothing here mutates state; every figure is recomputed on request.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
)

// Fixed-asset book values and standing liabilities used by the balance
// sheet. These are business constants, not derived figures.
var (
	fixedAssetMachinery  = decimal.NewFromInt(500000)
	fixedAssetVehicles   = decimal.NewFromInt(250000)
	fixedAssetEquipment  = decimal.NewFromInt(100000)
	accumDepreciation    = decimal.NewFromInt(150000)
	standingLiabilities  = decimal.NewFromInt(50000)
	sundryCreditorsShare = decimal.NewFromFloat(0.15)
)

// Report periods accepted by SalesReport.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodMonth     = "month"
	PeriodAll       = "all"
)

// UseCase read-only reporting.
type UseCase struct {
	store *state.Store
	log   *logger.Logger
}

// NewUseCase builds the reports use case.
func NewUseCase(store *state.Store, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Dashboard returns headline numbers scoped to the acting user: the whole
// network for the factory admin, their own branch for everyone else. The
// outstanding figure is credit billed minus collections within the scope.
func (uc *UseCase) Dashboard(actor dto.Actor) dto.DashboardResponse {
	scopeBranch := ""
	if entity.Role(actor.Role) != entity.RoleFactoryAdmin {
		scopeBranch = actor.BranchID
		if scopeBranch == "" {
			scopeBranch = entity.HubBranchID
		}
	}

	today := time.Now().Format("2006-01-02")
	todayRev := decimal.Zero
	totalRev := decimal.Zero
	creditBilled := decimal.Zero
	count := 0
	for _, inv := range uc.store.Invoices() {
		if scopeBranch != "" && inv.BranchID != scopeBranch {
			continue
		}
		count++
		totalRev = totalRev.Add(inv.GrandTotal)
		if inv.Date.Format("2006-01-02") == today {
			todayRev = todayRev.Add(inv.GrandTotal)
		}
		if inv.IsCredit() {
			creditBilled = creditBilled.Add(inv.GrandTotal)
		}
	}

	collected := decimal.Zero
	for _, p := range uc.store.Payments() {
		if scopeBranch != "" && p.BranchID != scopeBranch {
			continue
		}
		collected = collected.Add(p.Amount)
	}
	outstanding := creditBilled.Sub(collected)

	// Low stock is always judged at the viewer's own branch, hub included.
	stockBranch := actor.BranchID
	if stockBranch == "" {
		stockBranch = entity.HubBranchID
	}
	lowStock := 0
	for _, p := range uc.store.Products() {
		if p.StockAt(stockBranch) < p.MinStock {
			lowStock++
		}
	}

	return dto.DashboardResponse{
		BranchID:      scopeBranch,
		TodayRevenue:  todayRev,
		TotalRevenue:  totalRev,
		Outstanding:   outstanding,
		InvoiceCount:  count,
		LowStockCount: lowStock,
	}
}

// SalesReport returns the invoices of a period with totals. Unknown periods
// are rejected.
func (uc *UseCase) SalesReport(period string) (*dto.SalesReportResponse, error) {
	keep, err := periodFilter(period, time.Now())
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{
		Period:     period,
		Rows:       []dto.SalesReportRow{},
		TotalSales: decimal.Zero,
		TotalTax:   decimal.Zero,
	}
	for _, inv := range uc.store.Invoices() {
		if !keep(inv.Date) {
			continue
		}
		resp.Rows = append(resp.Rows, dto.SalesReportRow{
			InvoiceNumber: inv.InvoiceNumber,
			Date:          inv.Date.Format("2006-01-02"),
			CustomerName:  inv.CustomerName,
			BranchID:      inv.BranchID,
			PaymentType:   inv.PaymentType,
			Subtotal:      inv.Subtotal,
			TotalTax:      inv.TotalTax,
			GrandTotal:    inv.GrandTotal,
		})
		resp.TotalSales = resp.TotalSales.Add(inv.GrandTotal)
		resp.TotalTax = resp.TotalTax.Add(inv.TotalTax)
	}
	resp.Count = len(resp.Rows)
	return resp, nil
}

func periodFilter(period string, now time.Time) (func(time.Time) bool, error) {
	switch period {
	case PeriodToday:
		day := now.Format("2006-01-02")
		return func(t time.Time) bool { return t.Format("2006-01-02") == day }, nil
	case PeriodYesterday:
		day := now.AddDate(0, 0, -1).Format("2006-01-02")
		return func(t time.Time) bool { return t.Format("2006-01-02") == day }, nil
	case PeriodMonth:
		month := now.Format("2006-01")
		return func(t time.Time) bool { return t.Format("2006-01") == month }, nil
	case PeriodAll, "":
		return func(time.Time) bool { return true }, nil
	}
	return nil, domain.ErrInvalidInput
}

// BalanceSheet derives the financial position from the full transaction
// log. Receivable and cash figures are global approximations: collections
// are not matched to individual invoices, so a payment reduces the
// receivable pool as a whole.
func (uc *UseCase) BalanceSheet() dto.BalanceSheetResponse {
	invoices := uc.store.Invoices()
	payments := uc.store.Payments()
	products := uc.store.Products()
	branches := uc.store.Branches()

	cash := decimal.Zero
	creditBilled := decimal.Zero
	taxPayable := decimal.Zero
	for _, inv := range invoices {
		taxPayable = taxPayable.Add(inv.TotalTax)
		if inv.IsCredit() {
			creditBilled = creditBilled.Add(inv.GrandTotal)
		} else {
			cash = cash.Add(inv.GrandTotal)
		}
	}
	collected := decimal.Zero
	for _, p := range payments {
		collected = collected.Add(p.Amount)
	}
	cash = cash.Add(collected)
	receivable := creditBilled.Sub(collected)

	inventoryValue := decimal.Zero
	for _, p := range products {
		inventoryValue = inventoryValue.Add(p.Rate.Mul(decimal.NewFromInt(int64(p.TotalStock()))))
	}

	fixedAssets := fixedAssetMachinery.Add(fixedAssetVehicles).Add(fixedAssetEquipment)
	totalAssets := cash.Add(receivable).Add(inventoryValue).Add(fixedAssets).Sub(accumDepreciation)

	sundryCreditors := totalAssets.Mul(sundryCreditorsShare)
	totalLiabilities := taxPayable.Add(sundryCreditors).Add(standingLiabilities)

	positions := make([]dto.BranchPosition, 0, len(branches))
	for _, b := range branches {
		sales := decimal.Zero
		branchCredit := decimal.Zero
		for _, inv := range invoices {
			if inv.BranchID != b.ID {
				continue
			}
			sales = sales.Add(inv.GrandTotal)
			if inv.IsCredit() {
				branchCredit = branchCredit.Add(inv.GrandTotal)
			}
		}
		branchCollected := decimal.Zero
		for _, p := range payments {
			if p.BranchID == b.ID {
				branchCollected = branchCollected.Add(p.Amount)
			}
		}
		branchInventory := decimal.Zero
		for _, p := range products {
			branchInventory = branchInventory.Add(p.Rate.Mul(decimal.NewFromInt(int64(p.StockAt(b.ID)))))
		}
		positions = append(positions, dto.BranchPosition{
			BranchID:       b.ID,
			BranchName:     b.Name,
			Sales:          sales,
			Outstanding:    branchCredit.Sub(branchCollected),
			InventoryValue: branchInventory,
		})
	}

	return dto.BalanceSheetResponse{
		AsOf:               time.Now().Format("2006-01-02"),
		CashOnHand:         cash,
		AccountsReceivable: receivable,
		InventoryValue:     inventoryValue,
		FixedAssets:        fixedAssets,
		AccumDepreciation:  accumDepreciation,
		TotalAssets:        totalAssets,
		TaxPayable:         taxPayable,
		SundryCreditors:    sundryCreditors,
		OtherLiabilities:   standingLiabilities,
		TotalLiabilities:   totalLiabilities,
		Equity:             totalAssets.Sub(totalLiabilities),
		Branches:           positions,
	}
}

// AuditTrail returns the audit log, newest first.
func (uc *UseCase) AuditTrail() []entity.AuditLog {
	return uc.store.AuditLogs()
}
