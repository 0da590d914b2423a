// Package assistant exposes the business copilot: contextual chat, a stock
// and sales analysis, web-grounded trend search and payment-reminder email
// drafting. Every LLM call carries a timeout, and the degradable operations
// fall back to a canned local answer instead of failing the request.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eesaa/retail-suite/internal/application/dto"
	"github.com/eesaa/retail-suite/internal/application/ports"
	"github.com/eesaa/retail-suite/internal/domain"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
	"github.com/eesaa/retail-suite/pkg/money"
)

// llmTimeout bounds every model call. Generation regularly takes several
// seconds; anything past this is treated as an outage.
const llmTimeout = 20 * time.Second

// UseCase orchestrates assistant features over the LLM port.
type UseCase struct {
	store *state.Store
	llm   ports.AssistantService
	log   *logger.Logger
}

// NewUseCase builds the assistant use case.
func NewUseCase(store *state.Store, llm ports.AssistantService, log *logger.Logger) *UseCase {
	return &UseCase{store: store, llm: llm, log: log}
}

// Chat answers a management question with the current business state as
// context.
func (uc *UseCase) Chat(ctx context.Context, actor dto.Actor, in dto.ChatRequest) (*dto.ChatResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	snapshot, err := json.Marshal(map[string]interface{}{
		"user":          map[string]string{"name": actor.Name, "role": actor.Role, "branchId": actor.BranchID},
		"invoices":      uc.store.Invoices(),
		"products":      uc.store.Products(),
		"payments":      uc.store.Payments(),
		"stockRequests": uc.store.StockRequests(),
	})
	if err != nil {
		return nil, fmt.Errorf("assistant: encode context: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	reply, err := uc.llm.ChatWithContext(ctx, in.Message, snapshot)
	if err != nil {
		return nil, fmt.Errorf("assistant chat: %w", err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}

// AnalyzeBusiness asks the model for low stock trends, best branches and
// actionable recommendations. Degrades to a canned message when the model
// is unreachable.
func (uc *UseCase) AnalyzeBusiness(ctx context.Context) string {
	data, err := json.Marshal(map[string]interface{}{
		"invoices": uc.store.Invoices(),
		"products": uc.store.Products(),
	})
	if err != nil {
		uc.log.Error().Err(err).Msg("encode analysis data")
		return "Failed to analyze data at this time."
	}
	prompt := fmt.Sprintf("Analyze the following EESAA Weighing Scales inventory and sales data. Identify low stock trends, best performing branches, and provide 3 actionable business recommendations: %s", data)

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.Analyze(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Msg("business analysis degraded to fallback")
		return "Failed to analyze data at this time."
	}
	return text
}

// SearchTrends runs a web-grounded search for market trends and prices.
func (uc *UseCase) SearchTrends(ctx context.Context, query string) (*dto.TrendsResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	result, err := uc.llm.SearchGrounded(ctx, fmt.Sprintf("Find the latest trends and market prices for: %s", query))
	if err != nil {
		return nil, fmt.Errorf("trend search: %w", err)
	}
	resp := &dto.TrendsResponse{Text: result.Text, Sources: []dto.TrendSourceResponse{}}
	for _, src := range result.Sources {
		resp.Sources = append(resp.Sources, dto.TrendSourceResponse{Title: src.Title, URL: src.URL})
	}
	return resp, nil
}

// DraftInvoiceEmail generates a payment email for an invoice. A model
// failure degrades to a fixed template instead of an error: the counter
// still gets a usable draft.
func (uc *UseCase) DraftInvoiceEmail(ctx context.Context, in dto.EmailDraftRequest) (*dto.EmailDraftResponse, error) {
	inv, ok := uc.store.InvoiceByID(in.InvoiceID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	customer, ok := uc.store.CustomerByID(inv.CustomerID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	invJSON, _ := json.Marshal(inv)
	custJSON, _ := json.Marshal(customer)
	prompt := fmt.Sprintf(`Draft a professional, warm, and concise email to a customer for EESAA Weighing Scales.
Invoice Details: %s
Customer Details: %s

Requirements:
1. Subject line should be clear (e.g., Invoice #... from EESAA Scales).
2. If it is a CREDIT bill, mention the total outstanding amount of %s.
3. Keep the tone helpful and professional.
4. End with a polite signature from EESAA Management.`,
		invJSON, custJSON, money.Rupees(customer.Outstanding))

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	draft, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Str("invoice_id", inv.ID).Msg("email draft degraded to template")
		draft = fmt.Sprintf("Subject: Invoice %s from EESAA Scales\n\nDear %s,\n\nPlease find the attached invoice for your recent purchase. Your total outstanding is %s.\n\nBest regards,\nEESAA Management",
			inv.InvoiceNumber, customer.Name, money.Rupees(customer.Outstanding))
	}
	return &dto.EmailDraftResponse{Draft: draft}, nil
}
