// Package excel exports reports as spreadsheets with excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/dto"
)

var _ documents.Exporter = (*Exporter)(nil)

// Exporter writes XLSX workbooks.
type Exporter struct{}

// NewExporter builds the exporter.
func NewExporter() *Exporter { return &Exporter{} }

// SalesReportXLSX writes one sheet: a header row, one row per invoice, and
// a totals row. Amounts are written as floats so spreadsheet formulas work
// on them.
func (e *Exporter) SalesReportXLSX(rep dto.SalesReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales Report"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Invoice No.", "Date", "Customer", "Branch", "Payment", "Subtotal (Rs.)", "Tax (Rs.)", "Grand Total (Rs.)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("excel: write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#0D47A1"}, Pattern: 1},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, headerStyle)
	}

	for i, r := range rep.Rows {
		rowNum := i + 2
		subtotal, _ := r.Subtotal.Float64()
		tax, _ := r.TotalTax.Float64()
		grand, _ := r.GrandTotal.Float64()
		values := []interface{}{r.InvoiceNumber, r.Date, r.CustomerName, r.BranchID, r.PaymentType, subtotal, tax, grand}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("excel: write row %d: %w", rowNum, err)
			}
		}
	}

	totalRow := len(rep.Rows) + 2
	totalSales, _ := rep.TotalSales.Float64()
	totalTax, _ := rep.TotalTax.Float64()
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "TOTAL")
	_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", totalRow), totalTax)
	_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", totalRow), totalSales)

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "C", "C", 24)
	_ = f.SetColWidth(sheet, "F", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
