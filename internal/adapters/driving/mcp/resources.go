package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillworks/quill-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for Quill resources.
const uriScheme = "quill://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Current index status: version, last rebuild, chunk and source counts",
		MIMEType:    "application/json",
	}, s.handleStatusResource)
}

// handleStatusResource returns the current index metadata.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type statusInfo struct {
		Indexed       bool      `json:"indexed"`
		Version       int       `json:"version,omitempty"`
		BuildID       string    `json:"build_id,omitempty"`
		LastIndexedAt time.Time `json:"last_indexed_at,omitempty"`
		ChunkCount    int       `json:"chunk_count,omitempty"`
		SourceCount   int       `json:"source_count,omitempty"`
	}

	info := statusInfo{}
	if s.ports.Ingest != nil {
		meta, err := s.ports.Ingest.Status(ctx)
		switch {
		case errors.Is(err, domain.ErrNoIndex):
			// Leave the zero value: not indexed yet.
		case err != nil:
			return nil, fmt.Errorf("reading index status: %w", err)
		default:
			info = statusInfo{
				Indexed:       true,
				Version:       meta.Version,
				BuildID:       meta.BuildID,
				LastIndexedAt: meta.LastIndexedAt,
				ChunkCount:    meta.ChunkCount,
				SourceCount:   meta.SourceCount,
			}
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling status: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
