package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple words", "Leadership Style", []string{"leadership", "style"}},
		{"punctuation split", "lead, with. empowerment!", []string{"lead", "with", "empowerment"}},
		{"numbers kept", "shipped in 2021", []string{"shipped", "in", "2021"}},
		{"single chars dropped", "a b I go", []string{"go"}},
		{"empty", "", nil},
		{"whitespace only", "   \t\n", nil},
		{"mixed case", "RAG Pipeline", []string{"rag", "pipeline"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniqueTokens(t *testing.T) {
	got := uniqueTokens("go go gopher go")
	assert.Equal(t, []string{"go", "gopher"}, got)
}
