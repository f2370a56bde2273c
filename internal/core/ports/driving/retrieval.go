package driving

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// RetrievalService provides candidate retrieval and reranking over the
// persisted lexical index.
type RetrievalService interface {
	// Retrieve returns scored candidates for a query, best first.
	// A query with no matching tokens yields an empty list, not an error.
	Retrieve(ctx context.Context, query string, opts domain.RetrieveOptions) ([]domain.Candidate, error)

	// Rerank deduplicates candidates by (DocID, SectionID), keeps the
	// highest-scoring instance per pair, and truncates to maxSnippets.
	// It is pure: no side effects, idempotent.
	Rerank(candidates []domain.Candidate, maxSnippets int) []domain.Candidate

	// Invalidate drops the cached index snapshot so the next retrieval
	// reloads from the store. Called after a successful ingest.
	Invalidate()
}
