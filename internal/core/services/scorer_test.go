package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

func TestHeuristicScorer_TermMatches(t *testing.T) {
	scorer := HeuristicScorer{}

	c := domain.Candidate{
		Text:  "Built a Grafana dashboard for the on-call rotation.",
		Title: "Observability work",
	}

	// "grafana" in text (+1), "dashboard" in text (+1)
	got := scorer.Score("grafana dashboard", "", c)
	want := 2.0 / math.Log(float64(len(c.Text))+1)
	assert.InDelta(t, want, got, 1e-9)
}

func TestHeuristicScorer_TitleBonus(t *testing.T) {
	scorer := HeuristicScorer{}

	// Same text, one candidate carries the query term in its title.
	plain := domain.Candidate{Text: "Led a team of five engineers.", Title: "Resume"}
	titled := domain.Candidate{Text: "Led a team of five engineers.", Title: "Leadership"}

	assert.Greater(t,
		scorer.Score("leadership", "", titled),
		scorer.Score("leadership", "", plain))
}

func TestHeuristicScorer_ScopeBonuses(t *testing.T) {
	scorer := HeuristicScorer{}

	c := domain.Candidate{DocID: "search-engine", Text: "Some text about indexing."}

	exact := scorer.Score("indexing", "search-engine", c)
	prefix := scorer.Score("indexing", "search", c)
	none := scorer.Score("indexing", "", c)

	assert.Greater(t, exact, prefix)
	assert.Greater(t, prefix, none)
}

func TestHeuristicScorer_LengthNormalization(t *testing.T) {
	scorer := HeuristicScorer{}

	short := domain.Candidate{Text: "Go concurrency patterns."}
	long := domain.Candidate{Text: "Go concurrency patterns. " + string(make([]byte, 2000))}

	// Both match once; the short focused chunk scores higher.
	assert.Greater(t,
		scorer.Score("concurrency", "", short),
		scorer.Score("concurrency", "", long))
}

func TestHeuristicScorer_NoMatches(t *testing.T) {
	scorer := HeuristicScorer{}

	c := domain.Candidate{Text: "Unrelated content entirely.", Title: "Other"}
	assert.Zero(t, scorer.Score("kubernetes", "", c))
}

func TestHeuristicScorer_EmptyText(t *testing.T) {
	scorer := HeuristicScorer{}

	// ln(0+1) = 0; an empty candidate must score zero, not NaN.
	c := domain.Candidate{Title: "Resume", DocID: "resume"}
	score := scorer.Score("resume", "resume", c)
	assert.Zero(t, score)
	assert.False(t, math.IsNaN(score))
}
