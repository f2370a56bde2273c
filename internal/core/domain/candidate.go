package domain

// Candidate is an ephemeral per-query retrieval hit. Candidates are
// created fresh for each retrieval call and discarded after reranking;
// they have no cross-request visibility.
type Candidate struct {
	// ID is the chunk identifier.
	ID string

	// DocID is the parent document slug.
	DocID string

	// SectionID identifies the section within the document.
	// Reranking deduplicates on the (DocID, SectionID) pair.
	SectionID string

	// Text is the full chunk text, used for scoring and snippets.
	Text string

	// Title is the parent document title.
	Title string

	// SourceURL is the canonical link for citation display.
	SourceURL string

	// Score is the heuristic relevance score (normalized by length).
	Score float64
}

// SnippetLimit is the maximum snippet length in a ContextEntry.
const SnippetLimit = 400

// ContextEntry is a rank-ordered snippet handed to prompt assembly.
type ContextEntry struct {
	// Title is the parent document title.
	Title string

	// SourceURL is the canonical link for citations.
	SourceURL string

	// Snippet is the chunk text truncated to SnippetLimit characters.
	Snippet string
}

// ContextEntryFrom converts a ranked candidate into a context entry,
// truncating the text to the snippet limit.
func ContextEntryFrom(c Candidate) ContextEntry {
	snippet := c.Text
	if len(snippet) > SnippetLimit {
		snippet = snippet[:SnippetLimit]
	}
	return ContextEntry{
		Title:     c.Title,
		SourceURL: c.SourceURL,
		Snippet:   snippet,
	}
}
