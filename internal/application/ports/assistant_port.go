package ports

import "context"

// TrendSource is one citation returned by a web-grounded search.
type TrendSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// GroundedResult is free text plus the sources that back it.
type GroundedResult struct {
	Text    string        `json:"text"`
	Sources []TrendSource `json:"sources"`
}

// AssistantService is the outbound port for the external text-generation
// service. All three operations are unreliable network calls: callers must
// degrade to a local fallback on error, never crash. The context should
// carry a timeout so external latency cannot pin server goroutines.
//
// Any adapter (Gemini, a mock in tests) implements this contract.
type AssistantService interface {
	// ChatWithContext answers a free-text message given a JSON snapshot of
	// the current business state.
	ChatWithContext(ctx context.Context, message string, snapshot []byte) (string, error)

	// GenerateText runs a one-shot generation for the given prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Analyze runs a one-shot generation on the heavier analysis model
	// (larger reasoning budget, slower).
	Analyze(ctx context.Context, prompt string) (string, error)

	// SearchGrounded runs a web-grounded query and returns text plus
	// title/URL citations.
	SearchGrounded(ctx context.Context, query string) (*GroundedResult, error)
}
