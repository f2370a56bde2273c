package domain

import "strings"

// SectionType is the closed classification of a document section,
// inferred from its markdown header text. Unknown headers fall through
// to SectionGeneral.
type SectionType string

const (
	SectionContext     SectionType = "context"
	SectionProcess     SectionType = "process"
	SectionDecisions   SectionType = "decisions"
	SectionOutcomes    SectionType = "outcomes"
	SectionReflections SectionType = "reflections"
	SectionGeneral     SectionType = "general"
)

// sectionKeywords maps header vocabulary to section types. Matching is
// case-insensitive substring matching on the header text; first match wins.
var sectionKeywords = []struct {
	keywords []string
	section  SectionType
}{
	{[]string{"context", "background", "overview", "problem", "situation"}, SectionContext},
	{[]string{"process", "approach", "method", "how", "implementation", "build"}, SectionProcess},
	{[]string{"decision", "tradeoff", "trade-off", "choice", "why"}, SectionDecisions},
	{[]string{"outcome", "result", "impact", "metric", "learnings"}, SectionOutcomes},
	{[]string{"reflection", "retrospective", "looking back", "takeaway"}, SectionReflections},
}

// ClassifySection infers the section type from a markdown header.
func ClassifySection(header string) SectionType {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return SectionGeneral
	}
	for _, entry := range sectionKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(h, kw) {
				return entry.section
			}
		}
	}
	return SectionGeneral
}
