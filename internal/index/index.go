package index

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/quillworks/quill-cli/internal/core/ports/driven"
)

// blobVersion is the serialized index format version.
const blobVersion = 1

// Ensure Index satisfies both capability surfaces.
var (
	_ driven.IndexBuilder = (*Index)(nil)
	_ driven.LexicalIndex = (*Index)(nil)
)

// Index is a forward inverted index: token -> set of chunk ids.
// It is built single-threaded during ingestion and immutable once
// loaded for querying; no internal locking is needed.
type Index struct {
	postings map[string][]string

	// sortedTokens is rebuilt after mutation and supports the binary
	// search that implements prefix matching.
	sortedTokens []string
	dirty        bool
}

// blob is the on-disk JSON form of the index.
type blob struct {
	Version  int                 `json:"version"`
	Postings map[string][]string `json:"postings"`
}

// New creates an empty index.
func New() *Index {
	return &Index{postings: make(map[string][]string)}
}

// Add indexes the searchable text under the given chunk id. Each token
// records the chunk id at most once.
func (x *Index) Add(chunkID, text string) {
	for _, tok := range uniqueTokens(text) {
		ids := x.postings[tok]
		if len(ids) > 0 && ids[len(ids)-1] == chunkID {
			continue
		}
		x.postings[tok] = append(ids, chunkID)
	}
	x.dirty = true
}

// Search returns chunk ids matching the query, ordered by the number of
// distinct query tokens matched (descending, ties broken by id for
// determinism), truncated to limit. A query token matches any indexed
// token it is a prefix of.
func (x *Index) Search(query string, limit int) []string {
	terms := uniqueTokens(query)
	if len(terms) == 0 {
		return nil
	}

	matches := make(map[string]int)
	for _, term := range terms {
		for _, tok := range x.tokensWithPrefix(term) {
			for _, id := range x.postings[tok] {
				matches[id]++
			}
		}
	}
	if len(matches) == 0 {
		return nil
	}

	ids := make([]string, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if matches[ids[i]] != matches[ids[j]] {
			return matches[ids[i]] > matches[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// Export serializes the index into a portable blob.
func (x *Index) Export() ([]byte, error) {
	data, err := json.Marshal(blob{
		Version:  blobVersion,
		Postings: x.postings,
	})
	if err != nil {
		return nil, fmt.Errorf("exporting index: %w", err)
	}
	return data, nil
}

// Import replaces the index contents with a previously exported blob.
func (x *Index) Import(data []byte) error {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("importing index: %w", err)
	}
	if b.Version != blobVersion {
		return fmt.Errorf("importing index: unsupported blob version %d", b.Version)
	}
	if b.Postings == nil {
		b.Postings = make(map[string][]string)
	}
	x.postings = b.Postings
	x.dirty = true
	// Sort eagerly so a loaded index is never mutated by concurrent
	// Search calls.
	x.ensureSorted()
	return nil
}

// TokenCount returns the number of distinct indexed tokens.
func (x *Index) TokenCount() int {
	return len(x.postings)
}

// tokensWithPrefix returns the indexed tokens starting with the prefix.
// An exact-length match is included.
func (x *Index) tokensWithPrefix(prefix string) []string {
	x.ensureSorted()

	start := sort.SearchStrings(x.sortedTokens, prefix)
	var out []string
	for i := start; i < len(x.sortedTokens); i++ {
		if !strings.HasPrefix(x.sortedTokens[i], prefix) {
			break
		}
		out = append(out, x.sortedTokens[i])
	}
	return out
}

func (x *Index) ensureSorted() {
	if !x.dirty && x.sortedTokens != nil {
		return
	}
	x.sortedTokens = make([]string, 0, len(x.postings))
	for tok := range x.postings {
		x.sortedTokens = append(x.sortedTokens, tok)
	}
	sort.Strings(x.sortedTokens)
	x.dirty = false
}

// Factory creates index builders and reopens serialized blobs.
type Factory struct{}

// Ensure Factory implements the port.
var _ driven.IndexFactory = Factory{}

// NewBuilder returns an empty index builder.
func (Factory) NewBuilder() driven.IndexBuilder {
	return New()
}

// Open deserializes a blob produced by Export.
func (Factory) Open(data []byte) (driven.LexicalIndex, error) {
	x := New()
	if err := x.Import(data); err != nil {
		return nil, err
	}
	return x, nil
}
