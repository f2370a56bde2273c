package domain

import "fmt"

// Document represents a source unit of the corpus: a project write-up,
// resume, teaching bio, or raw data file. Documents are created during
// ingestion and are immutable until the next full rebuild.
type Document struct {
	// ID is the document slug (e.g. "resume", "pilot-training").
	ID string

	// Title is the human-readable title.
	Title string

	// URL is the canonical link, optionally with an anchor.
	URL string

	// Content is the full sanitized text before chunking.
	Content string

	// Topics is the set of topic tags for this document.
	Topics []string

	// Year is the year the document covers. Zero means unknown;
	// ingestion derives it from content when absent.
	Year int

	// Keywords is a fixed boost list appended to the indexed text
	// to compensate for sparse vocabulary in short documents.
	Keywords []string
}

// Chunk represents a contiguous span of a document's sanitized text,
// the atomic unit of retrieval. Chunks from one document are produced
// by a sliding window: consecutive chunks overlap by the configured
// overlap length and the final chunk ends exactly at the text end.
type Chunk struct {
	// ID is the composite identifier "documentID#NNN" (zero-padded ordinal).
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Text is the chunk content (bounded length, trimmed).
	Text string

	// Position is the ordinal position within the document.
	Position int

	// SectionID identifies the document section the chunk fell in.
	SectionID string

	// Section is the inferred section classification.
	Section SectionType

	// Topics mirrors the parent document's topic tags.
	Topics []string

	// Year mirrors the parent document's year.
	Year int
}

// ChunkID builds the composite chunk identifier for a document and ordinal.
func ChunkID(documentID string, position int) string {
	return fmt.Sprintf("%s#%03d", documentID, position)
}
