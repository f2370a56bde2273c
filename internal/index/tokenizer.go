package index

import (
	"strings"
	"unicode"
)

// minTokenLen filters out single-character noise tokens.
const minTokenLen = 2

// Tokenize lowercases the text and splits it on any run of
// non-alphanumeric characters. Tokens shorter than two characters are
// dropped. Duplicates are preserved; callers dedup as needed.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= minTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// uniqueTokens returns the deduplicated tokens of the text, preserving
// first-appearance order.
func uniqueTokens(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range Tokenize(text) {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
