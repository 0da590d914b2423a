package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/reports"
)

// DocumentsHandler serves the printable PDFs and spreadsheet exports.
type DocumentsHandler struct {
	uc *documents.UseCase
}

// NewDocumentsHandler builds the handler.
func NewDocumentsHandler(uc *documents.UseCase) *DocumentsHandler {
	return &DocumentsHandler{uc: uc}
}

// InvoicePDF GET /api/invoices/:id/pdf
func (h *DocumentsHandler) InvoicePDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.InvoicePDF(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, data, filename)
}

// ReceiptPDF GET /api/payments/:id/pdf
func (h *DocumentsHandler) ReceiptPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ReceiptPDF(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, data, filename)
}

// StatementPDF GET /api/customers/:id/statement/pdf?month=2026-08
func (h *DocumentsHandler) StatementPDF(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	data, filename, err := h.uc.StatementPDF(c.Params("id"), month)
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, data, filename)
}

// SalesReportPDF GET /api/reports/sales/pdf?period=today
func (h *DocumentsHandler) SalesReportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.SalesReportPDF(c.Query("period", reports.PeriodAll))
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, data, filename)
}

// SalesReportXLSX GET /api/reports/sales/xlsx?period=today
func (h *DocumentsHandler) SalesReportXLSX(c *fiber.Ctx) error {
	data, filename, err := h.uc.SalesReportXLSX(c.Query("period", reports.PeriodAll))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// BalanceSheetPDF GET /api/reports/balance-sheet/pdf
func (h *DocumentsHandler) BalanceSheetPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.BalanceSheetPDF()
	if err != nil {
		return errorJSON(c, err)
	}
	return sendPDF(c, data, filename)
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
