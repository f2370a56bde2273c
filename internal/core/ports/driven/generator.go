package driven

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// AnswerGenerator produces grounded answers from an assembled prompt.
// This is an optional service - when nil, questions routed to retrieval
// receive an explicit unavailability message.
//
// Implementations may include:
//   - Anthropic (Claude)
//   - Ollama (local models)
//
// The core treats the generator as opaque: any text-generation backend
// satisfying this contract is substitutable.
type AnswerGenerator interface {
	// Generate produces text from a system prompt and message history.
	Generate(ctx context.Context, systemPrompt string, messages []domain.Turn, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup before committing to a pipeline mode.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64

	// TopP is the nucleus sampling threshold. Zero means provider default.
	TopP float64
}
