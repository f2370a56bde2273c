package ingest

import (
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// Ensure DocumentChunker implements the port.
var _ driven.DocumentChunker = (*DocumentChunker)(nil)

// DocumentChunker splits documents into overlapping chunks and assigns
// each chunk the section its window starts in.
type DocumentChunker struct {
	size    int
	overlap int
}

// Option configures the document chunker.
type Option func(*DocumentChunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *DocumentChunker) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *DocumentChunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// NewDocumentChunker creates a chunker with the given options.
func NewDocumentChunker(opts ...Option) *DocumentChunker {
	c := &DocumentChunker{
		size:    DefaultChunkSize,
		overlap: DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.overlap >= c.size {
		c.overlap = c.size / 4
	}
	return c
}

// sectionBoundary marks where a section starts in the concatenated
// sanitized text.
type sectionBoundary struct {
	start   int
	id      string
	section domain.SectionType
}

// Chunk sectionizes and sanitizes the document, slides the chunk window
// over the concatenated text, and labels each chunk with the section
// containing its start offset. Empty documents yield no chunks.
func (c *DocumentChunker) Chunk(doc domain.Document) []domain.Chunk {
	sections := SplitSections(doc.Content)
	if len(sections) == 0 {
		return nil
	}

	var (
		parts      []string
		boundaries []sectionBoundary
		offset     int
	)
	for _, sec := range sections {
		boundaries = append(boundaries, sectionBoundary{
			start:   offset,
			id:      sec.ID,
			section: sec.Type,
		})
		parts = append(parts, sec.Text)
		offset += len(sec.Text) + 1 // joining space
	}
	full := strings.Join(parts, " ")

	spans := Spans(full, c.size, c.overlap)
	chunks := make([]domain.Chunk, 0, len(spans))
	for i, span := range spans {
		b := boundaryAt(boundaries, span.Start)
		chunks = append(chunks, domain.Chunk{
			ID:         domain.ChunkID(doc.ID, i),
			DocumentID: doc.ID,
			Text:       span.Text,
			Position:   i,
			SectionID:  b.id,
			Section:    b.section,
			Topics:     doc.Topics,
			Year:       doc.Year,
		})
	}
	return chunks
}

// boundaryAt returns the last boundary at or before the offset.
func boundaryAt(boundaries []sectionBoundary, offset int) sectionBoundary {
	best := boundaries[0]
	for _, b := range boundaries[1:] {
		if b.start > offset {
			break
		}
		best = b
	}
	return best
}
