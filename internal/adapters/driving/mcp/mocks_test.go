package mcp

import (
	"context"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	candidates []domain.Candidate
	err        error
	lastOpts   domain.RetrieveOptions
}

func (m *mockRetrievalService) Retrieve(
	_ context.Context,
	_ string,
	opts domain.RetrieveOptions,
) ([]domain.Candidate, error) {
	m.lastOpts = opts
	return m.candidates, m.err
}

func (m *mockRetrievalService) Rerank(candidates []domain.Candidate, _ int) []domain.Candidate {
	return candidates
}

func (m *mockRetrievalService) Invalidate() {}

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	answer *domain.Answer
	err    error
}

func (m *mockChatService) Ask(
	_ context.Context,
	_ string,
	_ domain.AskOptions,
) (*domain.Answer, error) {
	return m.answer, m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report *domain.IngestReport
	meta   *domain.IndexMetadata
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context) (*domain.IngestReport, error) {
	return m.report, m.err
}

func (m *mockIngestService) Status(_ context.Context) (*domain.IndexMetadata, error) {
	return m.meta, m.err
}
