package services

import (
	"regexp"
	"strconv"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

var citationMarkerRe = regexp.MustCompile(`\[(\d+)\]`)

// ExtractCitations parses bracketed integer markers out of generated
// text and maps them back to context entries. Markers are processed in
// order of first appearance; duplicates and out-of-range indices are
// skipped silently, since generators may repeat or hallucinate marker
// numbers.
func ExtractCitations(answer string, entries []domain.ContextEntry) []domain.Citation {
	matches := citationMarkerRe.FindAllStringSubmatch(answer, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[int]bool)
	var citations []domain.Citation
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > len(entries) {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true

		entry := entries[n-1]
		citations = append(citations, domain.Citation{
			Title:     entry.Title,
			SourceURL: entry.SourceURL,
		})
	}
	return citations
}
