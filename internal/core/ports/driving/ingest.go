package driving

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// IngestService rebuilds the index from the content directory.
// Ingestion is a batch job: the whole corpus is re-read, re-chunked,
// and re-indexed on every run. Concurrent ingestion runs are not
// supported and must be serialized externally.
type IngestService interface {
	// Ingest loads, sanitizes, chunks, and indexes the corpus, then
	// persists the artifact atomically. Returns domain.ErrNoDocuments
	// without writing anything when the content directory is empty.
	Ingest(ctx context.Context) (*domain.IngestReport, error)

	// Status returns the current index metadata record.
	Status(ctx context.Context) (*domain.IndexMetadata, error)
}
