package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testArtifact() *driven.IndexArtifact {
	return &driven.IndexArtifact{
		Version:   driven.ArtifactVersion,
		BuildID:   "4b2a9d7e-test-build",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Blob:      []byte(`{"version":1,"postings":{"grafana":["projects#000"]}}`),
		Lookup: map[string]driven.LookupEntry{
			"projects#000": {
				Title:    "Projects",
				URL:      "https://example.dev/projects",
				Preview:  "Built a Grafana dashboard for...",
				SourceID: "projects",
			},
			"resume#000": {
				Title:    "Resume",
				URL:      "https://example.dev/resume",
				Preview:  "Senior engineer with ten years...",
				SourceID: "resume",
			},
		},
		Store: map[string]string{
			"projects#000": "Built a Grafana dashboard for the on-call rotation.",
			"resume#000":   "Senior engineer with ten years of backend experience.",
		},
		Chunks: []domain.Chunk{
			{
				ID:         "projects#000",
				DocumentID: "projects",
				Text:       "Built a Grafana dashboard for the on-call rotation.",
				SectionID:  "dashboards",
				Section:    domain.SectionProcess,
				Topics:     []string{"observability"},
				Year:       2024,
			},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	artifact := testArtifact()
	require.NoError(t, store.Save(ctx, artifact))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, artifact.Version, loaded.Version)
	assert.Equal(t, artifact.BuildID, loaded.BuildID)
	assert.True(t, artifact.CreatedAt.Equal(loaded.CreatedAt))
	assert.JSONEq(t, string(artifact.Blob), string(loaded.Blob))
	assert.Equal(t, artifact.Lookup, loaded.Lookup)
	assert.Equal(t, artifact.Store, loaded.Store)
	require.Len(t, loaded.Chunks, 1)
	assert.Equal(t, "projects#000", loaded.Chunks[0].ID)
	assert.Equal(t, domain.SectionProcess, loaded.Chunks[0].Section)
	assert.Equal(t, []string{"observability"}, loaded.Chunks[0].Topics)
}

func TestStore_Load_Empty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoIndex)
}

func TestStore_Metadata(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Metadata(ctx)
	assert.ErrorIs(t, err, domain.ErrNoIndex)

	require.NoError(t, store.Save(ctx, testArtifact()))

	meta, err := store.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, driven.ArtifactVersion, meta.Version)
	assert.Equal(t, "4b2a9d7e-test-build", meta.BuildID)
	assert.Equal(t, 2, meta.ChunkCount)
	assert.Equal(t, 2, meta.SourceCount)
	assert.False(t, meta.LastIndexedAt.IsZero())
}

func TestStore_Save_ReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testArtifact()))

	updated := &driven.IndexArtifact{
		Version:   driven.ArtifactVersion,
		CreatedAt: time.Now().UTC(),
		Blob:      []byte(`{"version":1,"postings":{}}`),
		Lookup: map[string]driven.LookupEntry{
			"teaching#000": {Title: "Teaching", URL: "https://example.dev/teaching", Preview: "Taught...", SourceID: "teaching"},
		},
		Store: map[string]string{
			"teaching#000": "Taught an intro systems course.",
		},
	}
	require.NoError(t, store.Save(ctx, updated))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded.Store, 1)
	assert.Contains(t, loaded.Lookup, "teaching#000")
	assert.NotContains(t, loaded.Lookup, "projects#000")

	meta, err := store.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.ChunkCount)
	assert.Equal(t, 1, meta.SourceCount)
}

func TestStore_Save_NilArtifact(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	artifact := testArtifact()

	data, err := encodeArtifact(artifact)
	require.NoError(t, err)

	decoded, err := decodeArtifact(data)
	require.NoError(t, err)

	assert.Equal(t, artifact.Version, decoded.Version)
	assert.Equal(t, artifact.Lookup, decoded.Lookup)
	assert.Equal(t, artifact.Store, decoded.Store)
	require.Len(t, decoded.Chunks, 1)
	assert.Equal(t, artifact.Chunks[0].SectionID, decoded.Chunks[0].SectionID)
}

func TestChunkOrdinal(t *testing.T) {
	assert.Equal(t, "007", chunkOrdinal("resume#007"))
	assert.Equal(t, "0", chunkOrdinal("no-separator"))
}
