package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

func testArtifact() *driven.IndexArtifact {
	return &driven.IndexArtifact{
		Version:   driven.ArtifactVersion,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Blob:      []byte(`{"version":1,"postings":{}}`),
		Lookup: map[string]driven.LookupEntry{
			"resume#000":   {Title: "Resume", URL: "/resume", SourceID: "resume"},
			"resume#001":   {Title: "Resume", URL: "/resume", SourceID: "resume"},
			"teaching#000": {Title: "Teaching", URL: "/teaching", SourceID: "teaching"},
		},
		Store: map[string]string{
			"resume#000":   "text a",
			"resume#001":   "text b",
			"teaching#000": "text c",
		},
	}
}

func TestIndexStore_EmptyLoad(t *testing.T) {
	store := NewIndexStore()

	_, err := store.Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNoIndex))

	_, err = store.Metadata(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNoIndex))
}

func TestIndexStore_SaveLoad(t *testing.T) {
	store := NewIndexStore()
	art := testArtifact()

	require.NoError(t, store.Save(context.Background(), art))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, art.Blob, loaded.Blob)
	assert.Len(t, loaded.Lookup, 3)

	meta, err := store.Metadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, meta.ChunkCount)
	assert.Equal(t, 2, meta.SourceCount)
	assert.Equal(t, art.CreatedAt, meta.LastIndexedAt)
}

func TestIndexStore_SaveNil(t *testing.T) {
	store := NewIndexStore()
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
}
