// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and as a fallback when no durable
// storage is configured.
package memory

import (
	"context"
	"sync"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore holds a single index artifact in memory. Save replaces
// the artifact wholesale, mirroring the atomic-swap semantics of the
// SQLite store.
type IndexStore struct {
	mu       sync.RWMutex
	artifact *driven.IndexArtifact
	meta     *domain.IndexMetadata
}

// NewIndexStore creates an empty in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Save replaces the stored artifact and metadata atomically.
func (s *IndexStore) Save(_ context.Context, artifact *driven.IndexArtifact) error {
	if artifact == nil {
		return domain.ErrInvalidInput
	}

	sources := make(map[string]bool)
	for _, entry := range artifact.Lookup {
		sources[entry.SourceID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifact = artifact
	s.meta = &domain.IndexMetadata{
		Version:       artifact.Version,
		BuildID:       artifact.BuildID,
		LastIndexedAt: artifact.CreatedAt,
		ChunkCount:    len(artifact.Store),
		SourceCount:   len(sources),
	}
	return nil
}

// Load returns the stored artifact, or domain.ErrNoIndex when nothing
// has been saved yet.
func (s *IndexStore) Load(_ context.Context) (*driven.IndexArtifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.artifact == nil {
		return nil, domain.ErrNoIndex
	}
	return s.artifact, nil
}

// Metadata returns the stored metadata record.
func (s *IndexStore) Metadata(_ context.Context) (*domain.IndexMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil, domain.ErrNoIndex
	}
	meta := *s.meta
	return &meta, nil
}

// Close is a no-op for the in-memory store.
func (s *IndexStore) Close() error {
	return nil
}
