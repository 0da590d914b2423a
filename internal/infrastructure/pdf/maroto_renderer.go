// Package pdf renders the printable documents (invoice, payment receipt,
// monthly statement, sales report, balance sheet) with Maroto v2.
//
// Amounts use the ASCII "Rs." prefix: the built-in PDF fonts are cp1252 and
// cannot render the rupee sign.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/domain/entity"
	"github.com/eesaa/retail-suite/pkg/money"
)

var _ documents.Renderer = (*MarotoRenderer)(nil)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoRenderer implements documents.Renderer with Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer builds the renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("EESAA Weighing Scales", true).
		Build()
	return maroto.New(cfg)
}

// ── Invoice ───────────────────────────────────────────────────────────────────

// InvoicePDF renders a tax invoice.
func (g *MarotoRenderer) InvoicePDF(inv entity.Invoice, customer entity.Customer, branch entity.Branch) ([]byte, error) {
	m := newDocument("Tax Invoice " + inv.InvoiceNumber)

	m.AddRows(titleRow("TAX INVOICE", inv.InvoiceNumber, inv.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(branchRow(branch))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, item := range inv.Items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(inv.Subtotal, inv.TotalTax, inv.GrandTotal, inv.PaymentType))

	if inv.IsCredit() {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Outstanding before this invoice: "+money.PlainRupees(inv.OutstandingAtTime), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(footerRow("Thank you for your business!"))
	return generate(m)
}

// ── Receipt ───────────────────────────────────────────────────────────────────

// ReceiptPDF renders a payment receipt.
func (g *MarotoRenderer) ReceiptPDF(p entity.Payment, customer entity.Customer, branch entity.Branch) ([]byte, error) {
	m := newDocument("Payment Receipt " + p.ReceiptNumber)

	m.AddRows(titleRow("PAYMENT RECEIPT", p.ReceiptNumber, p.Date.Format("02/01/2006")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(branchRow(branch))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(row.New(20).Add(
		col.New(6).Add(
			text.New("Amount Received", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
			text.New(money.PlainRupees(p.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 8,
			}),
		),
		col.New(6).Add(
			text.New("Mode: "+p.PaymentMethod, props.Text{Size: 9, Align: align.Right, Top: 2}),
			text.New("Balance after receipt: "+money.PlainRupees(customer.Outstanding), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	))

	if p.Notes != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Notes: "+p.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	m.AddRows(footerRow("Thank you for your payment!"))
	return generate(m)
}

// ── Monthly statement ─────────────────────────────────────────────────────────

// StatementPDF renders a dealer's monthly statement.
func (g *MarotoRenderer) StatementPDF(st dto.StatementResponse) ([]byte, error) {
	m := newDocument("Statement " + st.Month + " " + st.CustomerName)

	m.AddRows(titleRow("MONTHLY STATEMENT", st.CustomerName, st.Month))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(8).Add(
		tableHeader("Date", 2, align.Left),
		tableHeader("Type", 2, align.Left),
		tableHeader("Reference", 4, align.Left),
		tableHeader("Debit", 2, align.Right),
		tableHeader("Credit", 2, align.Right),
	))
	for _, e := range st.Entries {
		m.AddRows(row.New(6).Add(
			tableCell(e.Date, 2, align.Left),
			tableCell(e.Type, 2, align.Left),
			tableCell(e.Reference, 4, align.Left),
			tableCell(amountOrDash(e.Debit), 2, align.Right),
			tableCell(amountOrDash(e.Credit), 2, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			boldRight("Total Debit:", 9, 1),
			boldRight("Total Credit:", 9, 7),
			boldRight("Closing Balance:", 10, 13),
		),
		col.New(3).Add(
			plainRight(money.PlainRupees(st.TotalDebit), 9, 1),
			plainRight(money.PlainRupees(st.TotalCredit), 9, 7),
			plainRight(money.PlainRupees(st.Closing), 10, 13),
		),
	))

	m.AddRows(footerRow("Thank you!"))
	return generate(m)
}

// ── Sales report ──────────────────────────────────────────────────────────────

// SalesReportPDF renders the sales report for a period.
func (g *MarotoRenderer) SalesReportPDF(rep dto.SalesReportResponse) ([]byte, error) {
	m := newDocument("Sales Report " + rep.Period)

	m.AddRows(titleRow("SALES REPORT", fmt.Sprintf("%d invoices", rep.Count), rep.Period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(8).Add(
		tableHeader("Invoice No.", 3, align.Left),
		tableHeader("Date", 2, align.Left),
		tableHeader("Customer", 3, align.Left),
		tableHeader("Branch", 1, align.Center),
		tableHeader("Mode", 1, align.Center),
		tableHeader("Total", 2, align.Right),
	))
	for _, r := range rep.Rows {
		m.AddRows(row.New(6).Add(
			tableCell(r.InvoiceNumber, 3, align.Left),
			tableCell(r.Date, 2, align.Left),
			tableCell(r.CustomerName, 3, align.Left),
			tableCell(r.BranchID, 1, align.Center),
			tableCell(r.PaymentType, 1, align.Center),
			tableCell(money.PlainRupees(r.GrandTotal), 2, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			boldRight("Total Tax:", 9, 1),
			boldRight("Total Sales:", 10, 7),
		),
		col.New(3).Add(
			plainRight(money.PlainRupees(rep.TotalTax), 9, 1),
			plainRight(money.PlainRupees(rep.TotalSales), 10, 7),
		),
	))
	return generate(m)
}

// ── Balance sheet ─────────────────────────────────────────────────────────────

// BalanceSheetPDF renders the derived financial position.
func (g *MarotoRenderer) BalanceSheetPDF(bs dto.BalanceSheetResponse) ([]byte, error) {
	m := newDocument("Balance Sheet " + bs.AsOf)

	m.AddRows(titleRow("BALANCE SHEET", "EESAA Weighing Scales", "As of "+bs.AsOf))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("ASSETS"))
	m.AddRows(
		lineItemRow("Cash on Hand", bs.CashOnHand),
		lineItemRow("Accounts Receivable", bs.AccountsReceivable),
		lineItemRow("Inventory Value", bs.InventoryValue),
		lineItemRow("Fixed Assets", bs.FixedAssets),
		lineItemRow("Less: Accumulated Depreciation", bs.AccumDepreciation.Neg()),
		totalItemRow("TOTAL ASSETS", bs.TotalAssets),
	)

	m.AddRows(sectionRow("LIABILITIES"))
	m.AddRows(
		lineItemRow("Tax Payable (GST)", bs.TaxPayable),
		lineItemRow("Sundry Creditors", bs.SundryCreditors),
		lineItemRow("Other Liabilities", bs.OtherLiabilities),
		totalItemRow("TOTAL LIABILITIES", bs.TotalLiabilities),
	)

	m.AddRows(sectionRow("EQUITY"))
	m.AddRows(totalItemRow("OWNER'S EQUITY", bs.Equity))

	m.AddRows(sectionRow("BRANCH POSITIONS"))
	m.AddRows(row.New(8).Add(
		tableHeader("Branch", 4, align.Left),
		tableHeader("Sales", 3, align.Right),
		tableHeader("Outstanding", 3, align.Right),
		tableHeader("Inventory", 2, align.Right),
	))
	for _, b := range bs.Branches {
		m.AddRows(row.New(6).Add(
			tableCell(b.BranchName, 4, align.Left),
			tableCell(money.PlainRupees(b.Sales), 3, align.Right),
			tableCell(money.PlainRupees(b.Outstanding), 3, align.Right),
			tableCell(money.PlainRupees(b.InventoryValue), 2, align.Right),
		))
	}

	return generate(m)
}

// ── Shared rows ───────────────────────────────────────────────────────────────

func titleRow(title, ref, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("EESAA WEIGHING SCALES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(ref, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New(date, props.Text{Size: 8, Align: align.Right, Top: 10, Color: colorGray}),
		),
	)
}

func branchRow(b entity.Branch) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("BRANCH", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("%s   |   %s   |   GSTIN: %s", b.Name, b.Location, b.GSTIN),
			props.Text{Size: 8, Top: 7, Color: colorGray}),
	))
}

func customerRow(c entity.Customer) core.Row {
	gst := c.GST
	if gst == "" {
		gst = "-"
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("CUSTOMER", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(fmt.Sprintf("Mobile: %s   |   GST: %s   |   %s", c.Mobile, gst, c.Address),
			props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

func itemsHeaderRow() core.Row {
	return row.New(8).Add(
		tableHeader("Qty", 1, align.Center),
		tableHeader("Item", 5, align.Left),
		tableHeader("Rate", 2, align.Right),
		tableHeader("Tax", 2, align.Right),
		tableHeader("Total", 2, align.Right),
	)
}

func itemRow(item entity.InvoiceItem) core.Row {
	return row.New(7).Add(
		tableCell(fmt.Sprintf("%d", item.Quantity), 1, align.Center),
		tableCell(item.ProductName, 5, align.Left),
		tableCell(money.PlainRupees(item.Rate), 2, align.Right),
		tableCell(money.PlainRupees(item.Tax), 2, align.Right),
		tableCell(money.PlainRupees(item.Total), 2, align.Right),
	)
}

func totalsRow(subtotal, tax, grand decimal.Decimal, paymentType string) core.Row {
	return row.New(22).Add(
		col.New(3).Add(
			text.New("Payment: "+paymentType, props.Text{Size: 9, Top: 2}),
		),
		col.New(3),
		col.New(3).Add(
			boldRight("Subtotal:", 9, 1),
			boldRight("Tax (GST):", 9, 7),
			boldRight("GRAND TOTAL:", 10, 14),
		),
		col.New(3).Add(
			plainRight(money.PlainRupees(subtotal), 9, 1),
			plainRight(money.PlainRupees(tax), 9, 7),
			plainRight(money.PlainRupees(grand), 10, 14),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func lineItemRow(label string, amount decimal.Decimal) core.Row {
	return row.New(6).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 9, Top: 1, Left: 2})),
		col.New(5).Add(text.New(money.PlainRupees(amount), props.Text{Size: 9, Align: align.Right, Top: 1})),
	)
}

func totalItemRow(label string, amount decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(5).Add(text.New(money.PlainRupees(amount), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}

func footerRow(message string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New(message, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 6,
		}),
	))
}

// ── Cell helpers ──────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

func boldRight(s string, size float64, top float64) core.Component {
	return text.New(s, props.Text{Style: fontstyle.Bold, Size: size, Align: align.Right, Top: top, Right: 2})
}

func plainRight(s string, size float64, top float64) core.Component {
	return text.New(s, props.Text{Size: size, Align: align.Right, Top: top, Right: 1})
}

func amountOrDash(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return money.PlainRupees(d)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}
