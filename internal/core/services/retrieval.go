package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/quillworks/quill-cli/internal/core/domain"
	"github.com/quillworks/quill-cli/internal/core/ports/driven"
	"github.com/quillworks/quill-cli/internal/core/ports/driving"
	"github.com/quillworks/quill-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// snapshot is an immutable loaded index. Requests holding a snapshot
// keep it even while a newer one replaces it in the cache, so in-flight
// retrievals never observe a half-rebuilt index.
type snapshot struct {
	index    driven.LexicalIndex
	lookup   map[string]driven.LookupEntry
	store    map[string]string
	sections map[string]string
}

// RetrievalService retrieves and reranks candidates over the persisted
// lexical index. The loaded index is cached process-wide as a swappable
// snapshot; Invalidate drops it after a successful ingest.
type RetrievalService struct {
	indexStore driven.IndexStore
	factory    driven.IndexFactory
	scorer     Scorer

	snap atomic.Pointer[snapshot]
}

// NewRetrievalService creates a new retrieval service. A nil scorer
// falls back to the default heuristic.
func NewRetrievalService(store driven.IndexStore, factory driven.IndexFactory, scorer Scorer) *RetrievalService {
	if scorer == nil {
		scorer = HeuristicScorer{}
	}
	return &RetrievalService{
		indexStore: store,
		factory:    factory,
		scorer:     scorer,
	}
}

// Retrieve returns the topK best-scoring candidates for the query.
// A query with no matching tokens yields an empty list, not an error.
func (s *RetrievalService) Retrieve(
	ctx context.Context, query string, opts domain.RetrieveOptions,
) ([]domain.Candidate, error) {
	logger.Section("Retrieval")

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Candidate{}, nil
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	topK := opts.EffectiveTopK()
	// Over-fetch to leave headroom for scope filtering and reranking.
	ids := snap.index.Search(query, topK*2)
	logger.Debug("Query %q matched %d chunk ids (scope=%q)", query, len(ids), opts.Scope)

	candidates := make([]domain.Candidate, 0, len(ids))
	for _, id := range ids {
		text, ok := snap.store[id]
		if !ok {
			// Stale reference: the index outlived a side-table entry.
			logger.Warn("Skipping chunk %s: no stored text", id)
			continue
		}
		meta, ok := snap.lookup[id]
		if !ok {
			logger.Warn("Skipping chunk %s: no lookup entry", id)
			continue
		}

		if opts.Scope != "" &&
			meta.SourceID != opts.Scope &&
			!strings.HasPrefix(meta.SourceID, opts.Scope) {
			continue
		}

		cand := domain.Candidate{
			ID:        id,
			DocID:     meta.SourceID,
			SectionID: snap.sections[id],
			Text:      text,
			Title:     meta.Title,
			SourceURL: meta.URL,
		}
		cand.Score = s.scorer.Score(query, opts.Scope, cand)
		candidates = append(candidates, cand)
	}

	sortCandidates(candidates)
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	logger.Info("Retrieved %d candidates", len(candidates))
	return candidates, nil
}

// Rerank deduplicates by (DocID, SectionID), keeping the highest-scoring
// candidate per pair, re-sorts, and truncates to maxSnippets. Pure and
// idempotent.
func (s *RetrievalService) Rerank(candidates []domain.Candidate, maxSnippets int) []domain.Candidate {
	return Rerank(candidates, maxSnippets)
}

// Invalidate drops the cached snapshot so the next retrieval reloads
// from the store.
func (s *RetrievalService) Invalidate() {
	s.snap.Store(nil)
}

// loadSnapshot returns the cached snapshot, loading it from the store
// on first use. Concurrent first loads may race; the last one wins and
// the losers' snapshots are equivalent.
func (s *RetrievalService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}

	artifact, err := s.indexStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}

	idx, err := s.factory.Open(artifact.Blob)
	if err != nil {
		return nil, fmt.Errorf("opening index blob: %w", err)
	}

	sections := make(map[string]string, len(artifact.Chunks))
	for _, ch := range artifact.Chunks {
		sections[ch.ID] = ch.SectionID
	}

	snap := &snapshot{
		index:    idx,
		lookup:   artifact.Lookup,
		store:    artifact.Store,
		sections: sections,
	}
	s.snap.Store(snap)
	logger.Debug("Loaded index snapshot: %d chunks", len(artifact.Store))
	return snap, nil
}

// Rerank is the pure reranking function behind the service method.
func Rerank(candidates []domain.Candidate, maxSnippets int) []domain.Candidate {
	if maxSnippets <= 0 {
		maxSnippets = domain.DefaultMaxSnippets
	}

	type key struct{ doc, section string }
	best := make(map[key]domain.Candidate)
	for _, c := range candidates {
		k := key{c.DocID, c.SectionID}
		if cur, ok := best[k]; !ok || c.Score > cur.Score {
			best[k] = c
		}
	}

	out := make([]domain.Candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sortCandidates(out)

	if len(out) > maxSnippets {
		out = out[:maxSnippets]
	}
	return out
}

// sortCandidates orders by score descending, ties broken by id so
// results are deterministic.
func sortCandidates(candidates []domain.Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})
}
