package ingest

import "strings"

// DefaultChunkSize is the default chunk length in characters.
const DefaultChunkSize = 1100

// DefaultChunkOverlap is the default overlap between consecutive chunks.
const DefaultChunkOverlap = 180

// Span is a chunk of text together with its start offset in the source.
type Span struct {
	// Text is the trimmed chunk content.
	Text string

	// Start is the offset of the untrimmed window in the source text.
	Start int
}

// Chunk splits text into overlapping fixed-size pieces. Consecutive
// chunks overlap by the configured overlap length and the final chunk
// ends exactly at the text end. Whitespace-only windows are skipped;
// empty or whitespace-only text yields zero chunks.
func Chunk(text string, size, overlap int) []string {
	spans := Spans(text, size, overlap)
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

// Spans is Chunk with offsets retained, so callers can map chunks back
// to document sections.
func Spans(text string, size, overlap int) []Span {
	size, overlap = clampChunkParams(size, overlap)

	if strings.TrimSpace(text) == "" {
		return nil
	}

	var spans []Span
	offset := 0
	for {
		end := offset + size
		if end > len(text) {
			end = len(text)
		}

		piece := strings.TrimSpace(text[offset:end])
		if piece != "" {
			spans = append(spans, Span{Text: piece, Start: offset})
		}

		if end == len(text) {
			return spans
		}
		offset = end - overlap
	}
}

// clampChunkParams enforces size > overlap >= 0, falling back to the
// defaults for nonsensical input.
func clampChunkParams(size, overlap int) (int, int) {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size / 4
	}
	return size, overlap
}
