package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/caselens/internal/bundle"
	"github.com/custodia-labs/caselens/internal/core/domain"
)

// SummarizeInput is the input schema for the summarize_case tool.
type SummarizeInput struct {
	BundlePath string `json:"bundle_path" jsonschema:"path to the case bundle JSON file"`
	NoCache    bool   `json:"no_cache,omitempty" jsonschema:"bypass the summary cache and rebuild"`
}

// SummarizeOutput is the output schema for the summarize_case tool.
type SummarizeOutput struct {
	Summary *domain.LayeredSummary `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize_case",
		Description: "Build a role-aware layered summary of a case bundle",
	}, s.handleSummarizeCase)
}

// handleSummarizeCase handles the summarize_case tool invocation.
func (s *Server) handleSummarizeCase(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	b, err := bundle.Load(input.BundlePath)
	if err != nil {
		return nil, SummarizeOutput{}, err
	}

	var summary *domain.LayeredSummary
	if input.NoCache {
		summary, err = s.ports.Summary.Build(b)
	} else {
		summary, err = s.ports.Summary.GetOrBuild(ctx, b)
	}
	if err != nil {
		return nil, SummarizeOutput{}, err
	}

	return nil, SummarizeOutput{Summary: summary}, nil
}
