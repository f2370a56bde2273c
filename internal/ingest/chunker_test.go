package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	chunks := Chunk("short document", 200, 40)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short document", chunks[0])
}

func TestChunk_EmptyText(t *testing.T) {
	assert.Empty(t, Chunk("", 200, 40))
	assert.Empty(t, Chunk("   \n\t  ", 200, 40))
}

func TestChunk_ResumeAndTeachingScenario(t *testing.T) {
	// 600 chars at size=200 overlap=40 advances 160 per step:
	// windows end at 200, 360, 520, 600.
	resume := strings.Repeat("r", 600)
	assert.Len(t, Chunk(resume, 200, 40), 4)

	teaching := strings.Repeat("t", 50)
	assert.Len(t, Chunk(teaching, 200, 40), 1)
}

func TestChunk_SizeInvariant(t *testing.T) {
	text := strings.Repeat("x", 1234)
	chunks := Chunk(text, 200, 40)

	for i, c := range chunks {
		assert.LessOrEqual(t, len(c), 200, "chunk %d exceeds size", i)
	}

	// Final window ends exactly at the text end.
	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last))
}

func TestSpans_OverlapRoundTrip(t *testing.T) {
	// With no whitespace trimming in play, dropping each chunk's
	// overlapping prefix reconstructs the source exactly.
	text := strings.Repeat("abcdefghij", 50)
	size, overlap := 120, 30

	spans := Spans(text, size, overlap)
	require.NotEmpty(t, spans)

	var b strings.Builder
	b.WriteString(spans[0].Text)
	for i := 1; i < len(spans); i++ {
		b.WriteString(spans[i].Text[overlap:])
	}
	assert.Equal(t, text, b.String())
}

func TestSpans_Offsets(t *testing.T) {
	text := strings.Repeat("z", 500)
	spans := Spans(text, 200, 40)

	require.Len(t, spans, 3)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 160, spans[1].Start)
	assert.Equal(t, 320, spans[2].Start)
}

func TestChunk_ClampsBadParams(t *testing.T) {
	// Overlap >= size falls back to size/4 instead of looping forever.
	chunks := Chunk(strings.Repeat("a", 400), 100, 100)
	assert.NotEmpty(t, chunks)

	// Nonsense size falls back to the default.
	chunks = Chunk("tiny", -1, 0)
	assert.Len(t, chunks, 1)
}
