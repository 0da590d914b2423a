package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/ledger"
	"github.com/eesaa/retail-suite/internal/domain"
)

// CustomerHandler handles dealer records, payments and ledgers.
type CustomerHandler struct {
	uc *ledger.UseCase
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *ledger.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCustomers())
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetCustomer(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.CreateCustomer(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.UpdateCustomer(GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// Ledger GET /api/customers/:id/ledger?from=2026-01-01&to=2026-03-31
func (h *CustomerHandler) Ledger(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return errorJSON(c, err)
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return errorJSON(c, err)
	}
	if !to.IsZero() {
		to = to.Add(24*time.Hour - time.Nanosecond) // inclusive end of day
	}
	entries, err := h.uc.Ledger(c.Params("id"), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(entries)
}

// Statement GET /api/customers/:id/statement?month=2026-08
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	st, err := h.uc.Statement(c.Params("id"), month)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(st)
}

// CollectPayment POST /api/payments
func (h *CustomerHandler) CollectPayment(c *fiber.Ctx) error {
	var in dto.CollectPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.uc.CollectPayment(GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListPayments GET /api/payments
func (h *CustomerHandler) ListPayments(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListPayments())
}

// parseDateQuery parses an optional YYYY-MM-DD query value; empty means
// unbounded.
func parseDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
