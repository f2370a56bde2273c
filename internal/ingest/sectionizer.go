package ingest

import (
	"regexp"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// Section is a contiguous region of a document under one markdown
// header, with its text already sanitized.
type Section struct {
	// ID is the slugified header text ("intro" for the preamble).
	ID string

	// Type is the closed-enum classification of the header.
	Type domain.SectionType

	// Text is the sanitized section body, header included.
	Text string
}

var headerRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// SplitSections splits raw markdown into sections at its headers and
// sanitizes each body. Text before the first header becomes the "intro"
// section. Documents without headers yield a single intro section.
func SplitSections(raw string) []Section {
	locs := headerRe.FindAllStringSubmatchIndex(raw, -1)

	if len(locs) == 0 {
		text := Sanitize(raw)
		if text == "" {
			return nil
		}
		return []Section{{ID: "intro", Type: domain.SectionGeneral, Text: text}}
	}

	var sections []Section

	if preamble := Sanitize(raw[:locs[0][0]]); preamble != "" {
		sections = append(sections, Section{
			ID:   "intro",
			Type: domain.SectionGeneral,
			Text: preamble,
		})
	}

	for i, loc := range locs {
		header := raw[loc[2]:loc[3]]
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		text := Sanitize(raw[loc[0]:end])
		if text == "" {
			continue
		}
		sections = append(sections, Section{
			ID:   Slugify(header),
			Type: domain.ClassifySection(header),
			Text: text,
		})
	}

	return sections
}

// Slugify lowercases text and collapses non-alphanumeric runs to single
// hyphens.
func Slugify(text string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(s, "-")
}
