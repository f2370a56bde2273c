package cli

import (
	"context"
	"time"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// --- Mock services for command tests ---

type mockIngestService struct {
	report *domain.IngestReport
	meta   *domain.IndexMetadata
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context) (*domain.IngestReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockIngestService) Status(_ context.Context) (*domain.IndexMetadata, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.meta, nil
}

type mockRetrievalService struct {
	candidates []domain.Candidate
	err        error
	lastOpts   domain.RetrieveOptions
}

func (m *mockRetrievalService) Retrieve(_ context.Context, _ string, opts domain.RetrieveOptions) ([]domain.Candidate, error) {
	m.lastOpts = opts
	return m.candidates, m.err
}

func (m *mockRetrievalService) Rerank(candidates []domain.Candidate, _ int) []domain.Candidate {
	return candidates
}

func (m *mockRetrievalService) Invalidate() {}

type mockChatService struct {
	answer *domain.Answer
	err    error
}

func (m *mockChatService) Ask(_ context.Context, _ string, _ domain.AskOptions) (*domain.Answer, error) {
	return m.answer, m.err
}

// setupTestServices wires mock services into the package-level slots
// and returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	prevIngest := ingestService
	prevRetrieval := retrievalService
	prevChat := chatService

	ingestService = &mockIngestService{
		report: &domain.IngestReport{Documents: 2, Chunks: 9, Duration: 40 * time.Millisecond},
		meta: &domain.IndexMetadata{
			Version:       1,
			LastIndexedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			ChunkCount:    9,
			SourceCount:   2,
		},
	}
	retrievalService = &mockRetrievalService{
		candidates: []domain.Candidate{
			{
				ID:        "search-engine#000",
				DocID:     "search-engine",
				Title:     "Search Engine",
				SourceURL: "https://example.dev/projects/search",
				Text:      "Built an inverted index.",
				Score:     2.5,
			},
		},
	}
	chatService = &mockChatService{
		answer: &domain.Answer{
			Text: "I built an inverted index [1].",
			Citations: []domain.Citation{
				{Title: "Search Engine", SourceURL: "https://example.dev/projects/search"},
			},
			Intent:   domain.IntentProceed,
			Tone:     domain.ToneProfessional,
			Grounded: true,
		},
	}

	return func() {
		ingestService = prevIngest
		retrievalService = prevRetrieval
		chatService = prevChat
	}
}
