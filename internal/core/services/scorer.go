package services

import (
	"math"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// Scorer computes a relevance score for a candidate against a query.
// The heuristic implementation below is the default; an embedding-based
// scorer can be substituted without touching retrieval or prompt
// assembly.
type Scorer interface {
	// Score returns the candidate's relevance. Higher is better.
	Score(query, scope string, c domain.Candidate) float64
}

// Scope bonuses: an exact document match outweighs a prefix match.
const (
	scopeExactBonus  = 10.0
	scopePrefixBonus = 5.0
)

// HeuristicScorer is the deterministic default scorer: +1 per query
// term found in the chunk text, +2 per term found in the title, plus
// the scope bonus, normalized by ln(len(text)+1) so short focused
// chunks beat long ones that accumulate matches by sheer volume.
type HeuristicScorer struct{}

// Ensure HeuristicScorer implements the interface.
var _ Scorer = HeuristicScorer{}

// Score implements Scorer.
func (HeuristicScorer) Score(query, scope string, c domain.Candidate) float64 {
	if len(c.Text) == 0 {
		return 0
	}
	text := strings.ToLower(c.Text)
	title := strings.ToLower(c.Title)

	var score float64
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(text, term) {
			score++
		}
		if strings.Contains(title, term) {
			score += 2
		}
	}

	if scope != "" {
		switch {
		case c.DocID == scope:
			score += scopeExactBonus
		case strings.HasPrefix(c.DocID, scope):
			score += scopePrefixBonus
		}
	}

	return score / math.Log(float64(len(c.Text))+1)
}
