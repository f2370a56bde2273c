package ingest

import (
	"regexp"
	"strings"
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	mdLinkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdEmphasisRe = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize prepares raw document text for chunking: fenced code blocks
// and HTML tags are stripped, markdown links collapse to their display
// text, emphasis markers are removed, and whitespace runs collapse to
// single spaces.
func Sanitize(text string) string {
	text = fencedCodeRe.ReplaceAllString(text, " ")
	text = htmlTagRe.ReplaceAllString(text, " ")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	text = mdEmphasisRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
