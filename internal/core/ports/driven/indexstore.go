package driven

import (
	"context"
	"time"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// LexicalIndex is the minimal query capability over a loaded index.
// Whatever search-index implementation backs it is deliberately narrowed
// to this surface so its type system never leaks into core.
type LexicalIndex interface {
	// Search returns chunk ids whose indexed tokens match the query.
	// A query token matches any indexed token it is a prefix of.
	Search(query string, limit int) []string
}

// IndexBuilder accumulates chunk text during ingestion and exports the
// finished index as an opaque blob.
type IndexBuilder interface {
	// Add indexes the given searchable text under a chunk id.
	Add(chunkID, text string)

	// Export serializes the index into a portable blob.
	Export() ([]byte, error)
}

// IndexFactory creates builders and reopens serialized blobs. It is the
// single seam between core and the concrete index implementation.
type IndexFactory interface {
	// NewBuilder returns an empty index builder.
	NewBuilder() IndexBuilder

	// Open deserializes a blob produced by IndexBuilder.Export.
	Open(blob []byte) (LexicalIndex, error)
}

// LookupEntry is the citation-display record for a chunk. It lets
// callers render citations without loading the full chunk text.
type LookupEntry struct {
	// Title is the parent document title.
	Title string

	// URL is the canonical link, optionally with an anchor.
	URL string

	// Preview is the first ~300 characters of the chunk text.
	Preview string

	// SourceID is the parent document slug.
	SourceID string
}

// ArtifactVersion is the current index artifact format version.
const ArtifactVersion = 1

// IndexArtifact is everything one ingestion run produces. Every chunk id
// present in the blob has entries in both Lookup and Store.
type IndexArtifact struct {
	// Version is the artifact format version.
	Version int

	// BuildID uniquely identifies the ingestion run that produced
	// this artifact.
	BuildID string

	// CreatedAt is when the artifact was built.
	CreatedAt time.Time

	// Blob is the opaque serialized token index.
	Blob []byte

	// Lookup maps chunk id to citation-display metadata.
	Lookup map[string]LookupEntry

	// Store maps chunk id to full chunk text, used for scoring.
	Store map[string]string

	// Chunks is the raw chunk record, kept for rebuild and debugging.
	Chunks []domain.Chunk
}

// IndexStore persists index artifacts. Writes only happen during batch
// ingestion; all concurrent retrieval requests share read access.
type IndexStore interface {
	// Save persists an artifact atomically: either the whole artifact
	// (blob, both side tables, metadata) becomes visible, or none of it.
	Save(ctx context.Context, artifact *IndexArtifact) error

	// Load fetches the current artifact. Returns domain.ErrNoIndex if
	// nothing has been ingested yet.
	Load(ctx context.Context) (*IndexArtifact, error)

	// Metadata returns the current metadata record without loading the
	// full artifact.
	Metadata(ctx context.Context) (*domain.IndexMetadata, error)

	// Close releases resources.
	Close() error
}
