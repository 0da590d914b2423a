package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/reports"
)

// ReportsHandler handles the dashboard and the financial reports.
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Dashboard GET /api/dashboard
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard(GetActor(c)))
}

// Sales GET /api/reports/sales?period=today
func (h *ReportsHandler) Sales(c *fiber.Ctx) error {
	rep, err := h.uc.SalesReport(c.Query("period", reports.PeriodAll))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(rep)
}

// BalanceSheet GET /api/reports/balance-sheet
func (h *ReportsHandler) BalanceSheet(c *fiber.Ctx) error {
	return c.JSON(h.uc.BalanceSheet())
}

// AuditTrail GET /api/audit
func (h *ReportsHandler) AuditTrail(c *fiber.Ctx) error {
	return c.JSON(h.uc.AuditTrail())
}
