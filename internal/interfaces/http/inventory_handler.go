package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/inventory"
)

// InventoryHandler handles the catalog, stock transfers and the branch
// request workflow.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListBranches GET /api/branches
func (h *InventoryHandler) ListBranches(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListBranches())
}

// ListProducts GET /api/products
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListProducts(GetActor(c)))
}

// GetProduct GET /api/products/:id
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	view, err := h.uc.GetProduct(GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(view)
}

// CreateProduct POST /api/products
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.AddProduct(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdateProduct PUT /api/products/:id
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.UpdateProduct(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(p)
}

// Refill POST /api/products/:id/refill
func (h *InventoryHandler) Refill(c *fiber.Ctx) error {
	var in dto.RefillRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Refill(GetActor(c), c.Params("id"), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transfer POST /api/products/transfer
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Transfer(GetActor(c), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRequests GET /api/stock/requests
func (h *InventoryHandler) ListRequests(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListRequests())
}

// RaiseRequest POST /api/stock/requests
func (h *InventoryHandler) RaiseRequest(c *fiber.Ctx) error {
	var in dto.RaiseStockRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	r, err := h.uc.RaiseRequest(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// ProcessRequest POST /api/stock/requests/:id/process
func (h *InventoryHandler) ProcessRequest(c *fiber.Ctx) error {
	var in dto.ProcessStockRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ProcessRequest(GetActor(c), c.Params("id"), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListMovements GET /api/stock/movements
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListMovements())
}
