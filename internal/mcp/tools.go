// ABOUTME: MCP tools for linting, fixing and normalizing prompt tags.
// ABOUTME: Arguments are decoded strictly; bad input yields an error result.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fiffu/sd-promptkit/internal/models"
	"github.com/fiffu/sd-promptkit/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const optionProperties = `
				"preserve_case": {"type": "boolean", "description": "Keep letter case instead of lowercasing"},
				"preserve_underscore": {"type": "boolean", "description": "Keep underscores instead of turning them into spaces"},
				"preserve_newlines": {"type": "boolean", "description": "Do not treat newlines as tag delimiters"}`

func (s *Server) registerTools() {
	// lint_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "lint_tags",
		Description: "Classify every comma-separated tag as Noop, Lint or Remove and return the canonical forms",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tags": {"type": "string", "description": "Comma-separated prompt tags"},` + optionProperties + `
			},
			"required": ["tags"]
		}`),
	}, s.handleLintTags)

	// fix_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "fix_tags",
		Description: "Return the cleaned prompt: canonical tags with duplicates and empties removed",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tags": {"type": "string", "description": "Comma-separated prompt tags"},` + optionProperties + `
			},
			"required": ["tags"]
		}`),
	}, s.handleFixTags)

	// normalize_tag
	s.server.AddTool(&mcp.Tool{
		Name:        "normalize_tag",
		Description: "Normalize a single tag and return its name, weight and canonical form",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tag": {"type": "string", "description": "A single tag"},` + optionProperties + `
			},
			"required": ["tag"]
		}`),
	}, s.handleNormalizeTag)
}

type optionParams struct {
	PreserveCase       *bool `json:"preserve_case"`
	PreserveUnderscore *bool `json:"preserve_underscore"`
	PreserveNewlines   *bool `json:"preserve_newlines"`
}

// resolve overlays the options a caller set onto the server defaults.
func (p optionParams) resolve(defaults models.Options) models.Options {
	opts := defaults
	if p.PreserveCase != nil {
		opts.PreserveCase = *p.PreserveCase
	}
	if p.PreserveUnderscore != nil {
		opts.PreserveUnderscore = *p.PreserveUnderscore
	}
	if p.PreserveNewlines != nil {
		opts.PreserveNewlines = *p.PreserveNewlines
	}
	return opts
}

type tagsParams struct {
	Tags *string `json:"tags"`
	optionParams
}

type tagParams struct {
	Tag *string `json:"tag"`
	optionParams
}

// decodeArgs rejects unknown fields and mistyped values.
func decodeArgs(raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage(`{}`)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("failed to encode result: %v", err)
	}
	return textResult(string(data))
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

// Tool handlers.
func (s *Server) handleLintTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params tagsParams
	if err := decodeArgs(req.Params.Arguments, &params); err != nil {
		return errorResult("%v", err), nil
	}
	if params.Tags == nil {
		return errorResult("tags is required"), nil
	}

	opts := params.resolve(s.defaults)
	results := s.linter(opts).ClassifyAll(*params.Tags)

	data, err := ui.ExportJSON(ui.NewReport(results, opts))
	if err != nil {
		return errorResult("failed to encode report: %v", err), nil
	}
	return textResult(string(data)), nil
}

func (s *Server) handleFixTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params tagsParams
	if err := decodeArgs(req.Params.Arguments, &params); err != nil {
		return errorResult("%v", err), nil
	}
	if params.Tags == nil {
		return errorResult("tags is required"), nil
	}

	opts := params.resolve(s.defaults)
	results := s.linter(opts).ClassifyAll(*params.Tags)

	return textResult(ui.NewReport(results, opts).Fixed), nil
}

func (s *Server) handleNormalizeTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params tagParams
	if err := decodeArgs(req.Params.Arguments, &params); err != nil {
		return errorResult("%v", err), nil
	}
	if params.Tag == nil || strings.TrimSpace(*params.Tag) == "" {
		return errorResult("tag is required"), nil
	}

	tag := s.linter(params.resolve(s.defaults)).Normalize(*params.Tag)
	return jsonResult(tag), nil
}
