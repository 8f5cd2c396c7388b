// ABOUTME: MCP server for taglint integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for prompt-tag cleanup.

package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/logging"
	"github.com/fiffu/sd-promptkit/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server   *mcp.Server
	defaults models.Options
	logger   *log.Logger
}

// NewServer builds a server whose tools fall back to defaults for any
// option a caller leaves out.
func NewServer(defaults models.Options, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Server{defaults: defaults, logger: logger}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "taglint",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("serving MCP on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) linter(opts models.Options) *lint.Linter {
	return lint.New(opts, lint.WithLogger(s.logger))
}
