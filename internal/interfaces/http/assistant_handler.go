package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/assistant"
	"github.com/eesaa/retail-suite/internal/application/dto"
)

// AssistantHandler handles the business copilot endpoints.
type AssistantHandler struct {
	uc *assistant.UseCase
}

// NewAssistantHandler builds the handler.
func NewAssistantHandler(uc *assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Chat(c.UserContext(), GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// Analyze GET /api/assistant/analysis
// Always answers 200: a model outage degrades to the canned fallback text.
func (h *AssistantHandler) Analyze(c *fiber.Ctx) error {
	text := h.uc.AnalyzeBusiness(c.UserContext())
	return c.JSON(fiber.Map{"text": text})
}

// Trends GET /api/assistant/trends?q=industrial+weighing+scales
func (h *AssistantHandler) Trends(c *fiber.Ctx) error {
	resp, err := h.uc.SearchTrends(c.UserContext(), c.Query("q"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// EmailDraft POST /api/assistant/email-draft
func (h *AssistantHandler) EmailDraft(c *fiber.Ctx) error {
	var in dto.EmailDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.DraftInvoiceEmail(c.UserContext(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}
