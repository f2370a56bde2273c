package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "quill"
	serverVersion = "0.1.0"

	httpReadHeaderTimeout = 10 * time.Second
)

// Server exposes the retrieval pipeline to MCP clients: a search tool
// over the lexical index, an ask tool when a generator is wired, and a
// status resource describing the current index build.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer validates the ports and registers the tools and resources
// they enable. Retrieval is mandatory; ask degrades to an explanatory
// error without a chat service, and the status resource reports
// unindexed without an ingest service.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves over stdio, the transport editors spawn the binary with.
// Blocks until the context is cancelled or the stream closes.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr for clients
// that connect over the network instead of spawning a process.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr: addr,
		Handler: mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
			return s.server
		}, nil),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
