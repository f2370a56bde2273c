package domain

// Default retrieval parameters.
const (
	// DefaultTopK is the number of candidates returned by retrieval.
	DefaultTopK = 12

	// DefaultMaxSnippets is the final context size after reranking.
	DefaultMaxSnippets = 5

	// PreviewLimit is the lookup-table preview length in characters.
	PreviewLimit = 300
)

// RetrieveOptions configures a retrieval call.
type RetrieveOptions struct {
	// TopK is the maximum number of candidates to return.
	// Zero or negative falls back to DefaultTopK.
	TopK int

	// Scope limits retrieval to chunks of one source document.
	// Chunks whose document id neither equals nor is prefixed by
	// Scope are skipped; matches inside the scoped set still earn
	// the exact/prefix score bonuses.
	Scope string
}

// EffectiveTopK returns TopK with the default applied.
func (o RetrieveOptions) EffectiveTopK() int {
	if o.TopK <= 0 {
		return DefaultTopK
	}
	return o.TopK
}
