package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/billing"
	"github.com/eesaa/retail-suite/internal/application/dto"
)

// BillingHandler handles checkout and invoice reads.
type BillingHandler struct {
	uc *billing.UseCase
}

// NewBillingHandler builds the handler.
func NewBillingHandler(uc *billing.UseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Checkout POST /api/billing/checkout
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Checkout(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// List GET /api/invoices
func (h *BillingHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListInvoices())
}

// GetByID GET /api/invoices/:id
func (h *BillingHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(inv)
}

// Share GET /api/invoices/:id/share
func (h *BillingHandler) Share(c *fiber.Ctx) error {
	resp, err := h.uc.ShareInvoice(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
