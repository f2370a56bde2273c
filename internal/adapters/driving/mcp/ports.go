package mcp

import (
	"github.com/quillworks/quill-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval serves the search tool.
	Retrieval driving.RetrievalService

	// Chat serves the ask tool. Optional; without it the ask tool
	// reports that no generator is configured.
	Chat driving.ChatService

	// Ingest serves the status resource. Optional.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
