package driving

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// ChatService runs the full question-answering pipeline: intent routing,
// tone selection, retrieval, prompt assembly, generation, and citation
// extraction.
type ChatService interface {
	// Ask answers a question grounded in the corpus. Failures downstream
	// of retrieval routing still produce a well-formed Answer (canned
	// response, insufficient-context message, or explicit error text);
	// the returned error is reserved for infrastructure failures the
	// caller must surface itself.
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error)
}
