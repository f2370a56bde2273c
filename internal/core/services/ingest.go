package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/core/ports/driving"
	"github.com/quillworks/quill-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService rebuilds the lexical index from the corpus. The whole
// corpus is re-read and re-indexed on every run; the previous artifact
// stays queryable until the new one is fully written.
type IngestService struct {
	loader  driven.CorpusLoader
	chunker driven.DocumentChunker
	store   driven.IndexStore
	factory driven.IndexFactory
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	loader driven.CorpusLoader,
	chunker driven.DocumentChunker,
	store driven.IndexStore,
	factory driven.IndexFactory,
) *IngestService {
	return &IngestService{
		loader:  loader,
		chunker: chunker,
		store:   store,
		factory: factory,
	}
}

// Ingest runs the batch pipeline: load, chunk, index, persist.
// Returns domain.ErrNoDocuments without writing anything when the
// corpus is empty, preserving the previous good index.
func (s *IngestService) Ingest(ctx context.Context) (*domain.IngestReport, error) {
	logger.Section("Ingestion")
	start := time.Now()

	docs, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}
	logger.Info("Loaded %d documents", len(docs))

	builder := s.factory.NewBuilder()
	lookup := make(map[string]driven.LookupEntry)
	chunkStore := make(map[string]string)
	var chunks []domain.Chunk

	for _, doc := range docs {
		docChunks := s.chunker.Chunk(doc)
		logger.Debug("Document %s: %d chunks", doc.ID, len(docChunks))

		for _, ch := range docChunks {
			builder.Add(ch.ID, searchableText(doc, ch))
			lookup[ch.ID] = driven.LookupEntry{
				Title:    doc.Title,
				URL:      doc.URL,
				Preview:  preview(ch.Text),
				SourceID: doc.ID,
			}
			chunkStore[ch.ID] = ch.Text
		}
		chunks = append(chunks, docChunks...)
	}

	if len(chunks) == 0 {
		return nil, domain.ErrNoDocuments
	}

	blob, err := builder.Export()
	if err != nil {
		return nil, fmt.Errorf("exporting index: %w", err)
	}

	artifact := &driven.IndexArtifact{
		Version:   driven.ArtifactVersion,
		BuildID:   uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Blob:      blob,
		Lookup:    lookup,
		Store:     chunkStore,
		Chunks:    chunks,
	}
	if err := s.store.Save(ctx, artifact); err != nil {
		return nil, fmt.Errorf("saving index: %w", err)
	}

	report := &domain.IngestReport{
		BuildID:   artifact.BuildID,
		Documents: len(docs),
		Chunks:    len(chunks),
		Duration:  time.Since(start),
	}
	logger.Info("Indexed %d chunks from %d documents in %s",
		report.Chunks, report.Documents, report.Duration)
	return report, nil
}

// Status returns the current index metadata record.
func (s *IngestService) Status(ctx context.Context) (*domain.IndexMetadata, error) {
	meta, err := s.store.Metadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index metadata: %w", err)
	}
	return meta, nil
}

// searchableText is what gets tokenized for a chunk: the parent title,
// the chunk text, and the document's boost keywords appended so sparse
// vocabulary still matches.
func searchableText(doc domain.Document, ch domain.Chunk) string {
	parts := []string{doc.Title, ch.Text}
	if len(doc.Keywords) > 0 {
		parts = append(parts, strings.Join(doc.Keywords, " "))
	}
	return strings.Join(parts, " ")
}

// preview truncates chunk text for the lookup table.
func preview(text string) string {
	if len(text) > domain.PreviewLimit {
		return text[:domain.PreviewLimit]
	}
	return text
}
