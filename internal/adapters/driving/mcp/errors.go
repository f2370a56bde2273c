// Package mcp provides an MCP (Model Context Protocol) server adapter for Quill.
// It lets AI assistants search the indexed portfolio content and ask
// grounded questions over it.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
