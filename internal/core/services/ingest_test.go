package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/quill-cli/internal/adapters/driven/storage/memory"
	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/index"
)

// mockLoader implements driven.CorpusLoader for testing.
type mockLoader struct {
	docs    []domain.Document
	loadErr error
}

func (m *mockLoader) Load(_ context.Context) ([]domain.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.docs, nil
}

// mockChunker implements driven.DocumentChunker for testing. It splits
// nothing - each document becomes exactly one chunk.
type mockChunker struct{}

func (mockChunker) Chunk(doc domain.Document) []domain.Chunk {
	if doc.Content == "" {
		return nil
	}
	return []domain.Chunk{{
		ID:         fmt.Sprintf("%s#%03d", doc.ID, 0),
		DocumentID: doc.ID,
		Text:       doc.Content,
		SectionID:  "intro",
	}}
}

func testDocs() []domain.Document {
	return []domain.Document{
		{
			ID:       "search-engine",
			Title:    "Search Engine",
			URL:      "https://example.dev/projects/search",
			Content:  "Built an inverted index in Go.",
			Keywords: []string{"golang", "lexical"},
		},
		{
			ID:      "resume",
			Title:   "Resume",
			URL:     "https://example.dev/resume",
			Content: "Ten years of backend work.",
		},
	}
}

func TestIngest_BuildsArtifact(t *testing.T) {
	store := memory.NewIndexStore()
	svc := NewIngestService(&mockLoader{docs: testDocs()}, mockChunker{}, store, index.Factory{})

	report, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Documents)
	assert.Equal(t, 2, report.Chunks)
	assert.NotEmpty(t, report.BuildID)

	artifact, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, artifact.Lookup, 2)
	assert.Len(t, artifact.Store, 2)
	assert.Len(t, artifact.Chunks, 2)
	assert.NotEmpty(t, artifact.Blob)

	entry := artifact.Lookup["search-engine#000"]
	assert.Equal(t, "Search Engine", entry.Title)
	assert.Equal(t, "search-engine", entry.SourceID)
	assert.Equal(t, "Built an inverted index in Go.", entry.Preview)
}

func TestIngest_KeywordsAreSearchable(t *testing.T) {
	store := memory.NewIndexStore()
	svc := NewIngestService(&mockLoader{docs: testDocs()}, mockChunker{}, store, index.Factory{})

	_, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	artifact, err := store.Load(context.Background())
	require.NoError(t, err)

	idx, err := index.Factory{}.Open(artifact.Blob)
	require.NoError(t, err)

	// "golang" only appears in the keywords, never in the chunk text.
	ids := idx.Search("golang", 10)
	assert.Equal(t, []string{"search-engine#000"}, ids)
}

func TestIngest_EmptyCorpus(t *testing.T) {
	svc := NewIngestService(&mockLoader{}, mockChunker{}, memory.NewIndexStore(), index.Factory{})

	_, err := svc.Ingest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDocuments)
}

func TestIngest_EmptyCorpusPreservesIndex(t *testing.T) {
	store := memory.NewIndexStore()

	svc := NewIngestService(&mockLoader{docs: testDocs()}, mockChunker{}, store, index.Factory{})
	_, err := svc.Ingest(context.Background())
	require.NoError(t, err)

	// A second run over an empty corpus fails without touching the store.
	empty := NewIngestService(&mockLoader{}, mockChunker{}, store, index.Factory{})
	_, err = empty.Ingest(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoDocuments)

	artifact, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, artifact.Store, 2)
}

func TestIngest_LoaderError(t *testing.T) {
	svc := NewIngestService(&mockLoader{loadErr: errors.New("dir missing")}, mockChunker{}, memory.NewIndexStore(), index.Factory{})

	_, err := svc.Ingest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading corpus")
}

func TestStatus(t *testing.T) {
	store := memory.NewIndexStore()
	svc := NewIngestService(&mockLoader{docs: testDocs()}, mockChunker{}, store, index.Factory{})

	_, err := svc.Status(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoIndex)

	_, err = svc.Ingest(context.Background())
	require.NoError(t, err)

	meta, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, meta.ChunkCount)
	assert.Equal(t, 2, meta.SourceCount)
}
