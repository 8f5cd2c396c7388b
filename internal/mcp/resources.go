// ABOUTME: MCP resources describing the canonical tag format.
// ABOUTME: Lets agents read the bracket table and formatting rules.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/fiffu/sd-promptkit/internal/brace"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const bracesURI = "taglint://braces"

func (s *Server) registerResources() {
	s.server.AddResource(
		&mcp.Resource{
			URI:         bracesURI,
			Name:        "Canonical tag format",
			Description: "Bracket pairs and formatting rules used when normalizing tags",
			MIMEType:    "text/plain",
		},
		s.handleReadBraces,
	)
}

func (s *Server) handleReadBraces(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != bracesURI {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     formatRules(),
			},
		},
	}, nil
}

func formatRules() string {
	var sb strings.Builder

	sb.WriteString("Bracket pairs: " + strings.Join(brace.Default.Pairs(), " ") + "\n\n")
	sb.WriteString("Canonical form: <openers><name>[: <weight>]<closers>\n")
	sb.WriteString("- names are lowercased and underscores become spaces unless preserved\n")
	sb.WriteString("- wrapping closers always mirror the wrapping openers; extra closers are dropped\n")
	sb.WriteString("- brackets inside a name are kept when balanced, closed when dangling, dropped when stray\n")
	sb.WriteString("- weights are written as \": <number>\"; a bare trailing 1.x is read as a weight\n")
	sb.WriteString("- a weighted tag without brackets is wrapped in ()\n")
	sb.WriteString("- the first tag with a given name wins; later ones are removed\n")

	return sb.String()
}
