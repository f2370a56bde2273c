package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// Loader reads corpus documents from a content directory. Markdown
// files may carry TOML front matter delimited by "+++" lines; JSON
// files either provide a content field or are flattened into
// "key: value" text.
type Loader struct {
	dir string
}

// NewLoader creates a loader for the given content directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// frontMatter is the optional TOML header of a markdown document.
type frontMatter struct {
	Title    string   `toml:"title"`
	URL      string   `toml:"url"`
	Topics   []string `toml:"topics"`
	Keywords []string `toml:"keywords"`
	Year     int      `toml:"year"`
}

// jsonDocument is the shape of a JSON corpus file.
type jsonDocument struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Topics   []string `json:"topics"`
	Keywords []string `json:"keywords"`
	Year     int      `json:"year"`
	Content  string   `json:"content"`
}

// Load reads every markdown and JSON document under the content
// directory, sorted by path for deterministic ordering. Document
// Content holds the raw source text; sanitization happens during
// chunking.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	var paths []string
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content directory %s: %w", l.dir, err)
	}
	sort.Strings(paths)

	docs := make([]domain.Document, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		var doc domain.Document
		if strings.EqualFold(filepath.Ext(path), ".json") {
			doc, err = parseJSONDocument(path, data)
		} else {
			doc, err = parseMarkdownDocument(path, data)
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(doc.Content) == "" {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// frontMatterDelim separates TOML front matter from the markdown body.
const frontMatterDelim = "+++"

func parseMarkdownDocument(path string, data []byte) (domain.Document, error) {
	content := string(data)
	slug := Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	var fm frontMatter
	if rest, ok := splitFrontMatter(content); ok {
		if err := toml.Unmarshal([]byte(rest.header), &fm); err != nil {
			return domain.Document{}, fmt.Errorf("parsing front matter of %s: %w", path, err)
		}
		content = rest.body
	}

	title := fm.Title
	if title == "" {
		title = extractMarkdownTitle(content, slug)
	}
	url := fm.URL
	if url == "" {
		url = "/" + slug
	}
	year := fm.Year
	if year == 0 {
		year = deriveYear(content)
	}

	return domain.Document{
		ID:       slug,
		Title:    title,
		URL:      url,
		Content:  content,
		Topics:   fm.Topics,
		Year:     year,
		Keywords: fm.Keywords,
	}, nil
}

func parseJSONDocument(path string, data []byte) (domain.Document, error) {
	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err != nil {
		return domain.Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	slug := jd.ID
	if slug == "" {
		slug = Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	content := jd.Content
	if content == "" {
		// Raw data files have no content field; flatten the values
		// into indexable text instead.
		content = flattenJSON(data)
	}

	title := jd.Title
	if title == "" {
		title = slug
	}
	url := jd.URL
	if url == "" {
		url = "/" + slug
	}
	year := jd.Year
	if year == 0 {
		year = deriveYear(content)
	}

	return domain.Document{
		ID:       slug,
		Title:    title,
		URL:      url,
		Content:  content,
		Topics:   jd.Topics,
		Year:     year,
		Keywords: jd.Keywords,
	}, nil
}

type splitResult struct {
	header string
	body   string
}

// splitFrontMatter separates a leading +++ TOML block from the body.
func splitFrontMatter(content string) (splitResult, bool) {
	trimmed := strings.TrimLeft(content, "\n\r \t")
	if !strings.HasPrefix(trimmed, frontMatterDelim) {
		return splitResult{}, false
	}

	rest := trimmed[len(frontMatterDelim):]
	end := strings.Index(rest, frontMatterDelim)
	if end < 0 {
		return splitResult{}, false
	}

	return splitResult{
		header: rest[:end],
		body:   rest[end+len(frontMatterDelim):],
	}, true
}

// extractMarkdownTitle finds the first H1 heading, falling back to the
// file slug.
func extractMarkdownTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return fallback
}

var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// deriveYear extracts the first plausible year from content. Returns
// zero when none is present.
func deriveYear(content string) int {
	match := yearRe.FindString(content)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// flattenJSON renders arbitrary JSON into "key: value" lines so raw
// data files remain searchable.
func flattenJSON(data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return ""
	}

	var b strings.Builder
	flattenValue(&b, "", v)
	return b.String()
}

func flattenValue(b *strings.Builder, key string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenValue(b, joinKey(key, k), val[k])
		}
	case []any:
		for _, item := range val {
			flattenValue(b, key, item)
		}
	case string:
		writeEntry(b, key, val)
	case float64:
		writeEntry(b, key, strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		writeEntry(b, key, strconv.FormatBool(val))
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func writeEntry(b *strings.Builder, key, value string) {
	if key == "" {
		b.WriteString(value)
	} else {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
	}
	b.WriteString("\n")
}
