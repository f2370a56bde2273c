package driven

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// CorpusLoader reads source documents from wherever the corpus lives.
// The filesystem loader is the production implementation.
type CorpusLoader interface {
	// Load returns every corpus document. Content is raw source text;
	// sanitization happens during chunking.
	Load(ctx context.Context) ([]domain.Document, error)
}

// DocumentChunker splits one document into overlapping chunks with
// section assignments.
type DocumentChunker interface {
	// Chunk sanitizes and splits the document. Chunk ids follow the
	// "documentID#NNN" convention.
	Chunk(doc domain.Document) []domain.Chunk
}
