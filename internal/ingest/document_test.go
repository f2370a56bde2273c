package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

func TestDocumentChunker_IDsAndPositions(t *testing.T) {
	chunker := NewDocumentChunker(WithChunkSize(200), WithOverlap(40))

	doc := domain.Document{
		ID:      "resume",
		Content: strings.Repeat("a", 600),
		Topics:  []string{"career"},
		Year:    2020,
	}

	chunks := chunker.Chunk(doc)
	require.Len(t, chunks, 4)

	assert.Equal(t, "resume#000", chunks[0].ID)
	assert.Equal(t, "resume#003", chunks[3].ID)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Position)
		assert.Equal(t, "resume", ch.DocumentID)
		assert.Equal(t, []string{"career"}, ch.Topics)
		assert.Equal(t, 2020, ch.Year)
	}
}

func TestDocumentChunker_SectionAssignment(t *testing.T) {
	chunker := NewDocumentChunker(WithChunkSize(80), WithOverlap(10))

	doc := domain.Document{
		ID: "pilot",
		Content: "## Background\n\n" + strings.Repeat("b ", 40) +
			"\n\n## Results\n\n" + strings.Repeat("r ", 40),
	}

	chunks := chunker.Chunk(doc)
	require.NotEmpty(t, chunks)

	assert.Equal(t, "background", chunks[0].SectionID)
	assert.Equal(t, domain.SectionContext, chunks[0].Section)

	last := chunks[len(chunks)-1]
	assert.Equal(t, "results", last.SectionID)
	assert.Equal(t, domain.SectionOutcomes, last.Section)
}

func TestDocumentChunker_EmptyDocument(t *testing.T) {
	chunker := NewDocumentChunker()
	assert.Empty(t, chunker.Chunk(domain.Document{ID: "empty", Content: "   "}))
}

func TestDocumentChunker_ShortDocumentSingleChunk(t *testing.T) {
	chunker := NewDocumentChunker(WithChunkSize(200), WithOverlap(40))
	chunks := chunker.Chunk(domain.Document{ID: "teaching", Content: strings.Repeat("t", 50)})

	require.Len(t, chunks, 1)
	assert.Equal(t, "teaching#000", chunks[0].ID)
}
