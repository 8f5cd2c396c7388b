// ABOUTME: MCP prompts for common prompt-cleanup workflows.
// ABOUTME: Guides agents to use the tag tools before editing prompts.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "clean-prompt",
		Description: "Clean up a comma-separated image prompt and explain what changed",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "prompt",
				Description: "The prompt tags to clean",
				Required:    true,
			},
		},
	}, s.getCleanPromptPrompt)
}

func (s *Server) getCleanPromptPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	prompt, ok := req.Params.Arguments["prompt"]
	if !ok || prompt == "" {
		return nil, fmt.Errorf("prompt argument is required")
	}

	template := fmt.Sprintf(`Clean up this image-generation prompt:

%s

1. Use the lint_tags tool to classify every tag
2. For each tag marked Lint, explain the correction (case, underscores, braces or weight syntax)
3. For each tag marked Remove, say which earlier tag it duplicates or that it was empty
4. Use the fix_tags tool and return its output as the final cleaned prompt`, prompt)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
