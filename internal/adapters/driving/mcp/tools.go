package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query to find content chunks"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 12)"`
	Scope string `json:"scope,omitempty" jsonschema:"restrict results to one source document slug"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ChunkID  string  `json:"chunk_id"`
	Document string  `json:"document"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Score    float64 `json:"score"`
	Snippet  string  `json:"snippet"`
}

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed content"`
	Scope    string `json:"scope,omitempty" jsonschema:"restrict retrieval to one source document slug"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Text      string           `json:"text"`
	Citations []CitationOutput `json:"citations,omitempty"`
	Grounded  bool             `json:"grounded"`
}

// CitationOutput represents one cited source.
type CitationOutput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the indexed portfolio content",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question answered from the indexed portfolio content, with citations",
	}, s.handleAsk)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	candidates, err := s.ports.Retrieval.Retrieve(ctx, input.Query, domain.RetrieveOptions{
		TopK:  input.Limit,
		Scope: input.Scope,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoIndex) {
			return nil, SearchOutput{}, errors.New("no index found; run 'quill ingest' first")
		}
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(candidates)),
		Count:   len(candidates),
	}
	for i, c := range candidates {
		output.Results[i] = SearchResultOutput{
			ChunkID:  c.ID,
			Document: c.DocID,
			Title:    c.Title,
			URL:      c.SourceURL,
			Score:    c.Score,
			Snippet:  domain.ContextEntryFrom(c).Snippet,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if s.ports.Chat == nil {
		return nil, AskOutput{}, errors.New("ask is unavailable: no generator configured")
	}

	answer, err := s.ports.Chat.Ask(ctx, input.Question, domain.AskOptions{Scope: input.Scope})
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Text:     answer.Text,
		Grounded: answer.Grounded,
	}
	for _, c := range answer.Citations {
		output.Citations = append(output.Citations, CitationOutput{
			Title: c.Title,
			URL:   c.SourceURL,
		})
	}

	return nil, output, nil
}
