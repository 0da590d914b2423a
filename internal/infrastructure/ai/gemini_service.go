// Package ai adapts the Google Gemini REST API to the assistant port. Plain
// net/http keeps the adapter free of SDK churn.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eesaa/retail-suite/internal/application/ports"
)

var _ ports.AssistantService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// systemPromptFmt frames the chat role. The %s slot receives the JSON
// business snapshot.
const systemPromptFmt = `You are the EESAA Smart Assistant. Help the company management with billing, stock, and reporting questions. You have access to the current business context: %s. Keep responses professional and concise.`

// Models holds the model ids per workload. Chat and drafting run on the
// fast model; the business analysis runs on the heavier one.
type Models struct {
	Chat     string
	Analysis string
	Search   string
}

// GeminiService calls the Gemini generateContent endpoint. An empty API key
// makes every call fail fast, which callers degrade to local fallbacks.
type GeminiService struct {
	apiKey     string
	models     Models
	httpClient *http.Client
}

// NewGeminiService builds the adapter.
func NewGeminiService(apiKey string, models Models) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		models: models,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // network cap; callers also set WithTimeout
		},
	}
}

// ── Wire structures ───────────────────────────────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
	GenerationConfig  *genConfig      `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Port implementation ───────────────────────────────────────────────────────

// ChatWithContext answers a management question with the business snapshot
// injected as the system instruction.
func (s *GeminiService) ChatWithContext(ctx context.Context, message string, snapshot []byte) (string, error) {
	req := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: fmt.Sprintf(systemPromptFmt, snapshot)}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: message}}},
		},
	}
	resp, err := s.call(ctx, s.models.Chat, req)
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// GenerateText runs a one-shot generation on the fast model.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.call(ctx, s.models.Chat, geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// Analyze runs a one-shot generation on the heavier analysis model.
func (s *GeminiService) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := s.call(ctx, s.models.Analysis, geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	return firstText(resp)
}

// SearchGrounded enables the google_search tool and extracts the web
// citations from the grounding metadata.
func (s *GeminiService) SearchGrounded(ctx context.Context, query string) (*ports.GroundedResult, error) {
	resp, err := s.call(ctx, s.models.Search, geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: query}}},
		},
		Tools: []geminiTool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return nil, err
	}
	text, err := firstText(resp)
	if err != nil {
		return nil, err
	}

	result := &ports.GroundedResult{Text: text, Sources: []ports.TrendSource{}}
	if meta := resp.Candidates[0].GroundingMetadata; meta != nil {
		for _, chunk := range meta.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			result.Sources = append(result.Sources, ports.TrendSource{
				Title: chunk.Web.Title,
				URL:   chunk.Web.URI,
			})
		}
	}
	return result, nil
}

func (s *GeminiService) call(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: encode request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: build HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout or cancellation: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("AI: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: decode response: %w", err)
	}
	return &gemResp, nil
}

func firstText(resp *geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini returned an empty response")
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
