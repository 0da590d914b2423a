// Package documents assembles the data behind every printable or exportable
// artifact and delegates rendering to the injected generators.
package documents

import (
	"fmt"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/ledger"
	"github.com/eesaa/retail-suite/internal/application/reports"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/internal/state"
)

// Renderer turns assembled document data into PDF bytes. Implemented by the
// Maroto adapter; tests substitute a stub.
type Renderer interface {
	InvoicePDF(inv entity.Invoice, customer entity.Customer, branch entity.Branch) ([]byte, error)
	ReceiptPDF(p entity.Payment, customer entity.Customer, branch entity.Branch) ([]byte, error)
	StatementPDF(st dto.StatementResponse) ([]byte, error)
	SalesReportPDF(rep dto.SalesReportResponse) ([]byte, error)
	BalanceSheetPDF(bs dto.BalanceSheetResponse) ([]byte, error)
}

// Exporter produces spreadsheet exports.
type Exporter interface {
	SalesReportXLSX(rep dto.SalesReportResponse) ([]byte, error)
}

// UseCase document assembly and generation.
type UseCase struct {
	store     *state.Store
	ledgerUC  *ledger.UseCase
	reportsUC *reports.UseCase
	renderer  Renderer
	exporter  Exporter
}

// NewUseCase builds the documents use case.
func NewUseCase(store *state.Store, ledgerUC *ledger.UseCase, reportsUC *reports.UseCase, renderer Renderer, exporter Exporter) *UseCase {
	return &UseCase{
		store:     store,
		ledgerUC:  ledgerUC,
		reportsUC: reportsUC,
		renderer:  renderer,
		exporter:  exporter,
	}
}

// InvoicePDF renders the printable invoice.
func (uc *UseCase) InvoicePDF(invoiceID string) ([]byte, string, error) {
	inv, ok := uc.store.InvoiceByID(invoiceID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	customer, ok := uc.store.CustomerByID(inv.CustomerID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	branch, _ := uc.store.BranchByID(inv.BranchID)

	data, err := uc.renderer.InvoicePDF(inv, customer, branch)
	if err != nil {
		return nil, "", fmt.Errorf("documents: invoice pdf: %w", err)
	}
	return data, fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber), nil
}

// ReceiptPDF renders the printable payment receipt.
func (uc *UseCase) ReceiptPDF(paymentID string) ([]byte, string, error) {
	p, ok := uc.store.PaymentByID(paymentID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	customer, ok := uc.store.CustomerByID(p.CustomerID)
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	branch, _ := uc.store.BranchByID(p.BranchID)

	data, err := uc.renderer.ReceiptPDF(p, customer, branch)
	if err != nil {
		return nil, "", fmt.Errorf("documents: receipt pdf: %w", err)
	}
	return data, fmt.Sprintf("receipt_%s.pdf", p.ReceiptNumber), nil
}

// StatementPDF renders a dealer's monthly statement.
func (uc *UseCase) StatementPDF(customerID, month string) ([]byte, string, error) {
	st, err := uc.ledgerUC.Statement(customerID, month)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.renderer.StatementPDF(*st)
	if err != nil {
		return nil, "", fmt.Errorf("documents: statement pdf: %w", err)
	}
	return data, fmt.Sprintf("statement_%s_%s.pdf", customerID, month), nil
}

// SalesReportPDF renders the sales report for a period.
func (uc *UseCase) SalesReportPDF(period string) ([]byte, string, error) {
	rep, err := uc.reportsUC.SalesReport(period)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.renderer.SalesReportPDF(*rep)
	if err != nil {
		return nil, "", fmt.Errorf("documents: sales report pdf: %w", err)
	}
	return data, fmt.Sprintf("sales_report_%s.pdf", rep.Period), nil
}

// SalesReportXLSX exports the sales report as a spreadsheet.
func (uc *UseCase) SalesReportXLSX(period string) ([]byte, string, error) {
	rep, err := uc.reportsUC.SalesReport(period)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.SalesReportXLSX(*rep)
	if err != nil {
		return nil, "", fmt.Errorf("documents: sales report xlsx: %w", err)
	}
	return data, fmt.Sprintf("sales_report_%s.xlsx", rep.Period), nil
}

// BalanceSheetPDF renders the balance sheet.
func (uc *UseCase) BalanceSheetPDF() ([]byte, string, error) {
	bs := uc.reportsUC.BalanceSheet()
	data, err := uc.renderer.BalanceSheetPDF(bs)
	if err != nil {
		return nil, "", fmt.Errorf("documents: balance sheet pdf: %w", err)
	}
	return data, fmt.Sprintf("balance_sheet_%s.pdf", bs.AsOf), nil
}
