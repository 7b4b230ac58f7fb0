// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Caselens. It lets AI assistants build role-aware layered summaries of local
// case bundles.
package mcp

import "errors"

// ErrMissingSummaryService is returned when the summary service is not provided.
var ErrMissingSummaryService = errors.New("mcp: summary service is required")
