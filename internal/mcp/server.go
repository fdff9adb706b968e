// Package mcp provides Model Context Protocol server functionality over
// the crawler database.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/devdigger/digkit/application/service"
)

// Server wraps the MCP server with digkit tools.
type Server struct {
	mcpServer *server.MCPServer
	reader    service.Reader
	logger    *slog.Logger
}

// NewServer creates a new MCP server over the given reader.
func NewServer(reader service.Reader, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		reader: reader,
		logger: logger,
	}

	mcpServer := server.NewMCPServer(
		"digkit",
		version,
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

// registerTools registers all digkit tools with the MCP server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Substring search over crawled documentation chunks"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The substring to match (case-sensitive)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)"),
		),
	)
	mcpServer.AddTool(searchTool, s.handleSearch)

	examplesTool := mcp.NewTool("get_code_examples",
		mcp.WithDescription("List extracted code examples, optionally filtered by language"),
		mcp.WithString("language",
			mcp.Description("Filter by language tag (e.g. go, python)"),
		),
	)
	mcpServer.AddTool(examplesTool, s.handleGetCodeExamples)

	statsTool := mcp.NewTool("stats",
		mcp.WithDescription("Row counts for the crawler database tables"),
	)
	mcpServer.AddTool(statsTool, s.handleStats)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := request.GetInt("limit", 10)

	hits, err := s.reader.Search(ctx, query, limit)
	if err != nil {
		s.logger.Error("search failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	type searchResult struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		URL     string `json:"url"`
		Title   string `json:"title"`
	}

	results := make([]searchResult, len(hits))
	for i, hit := range hits {
		results[i] = searchResult{
			ID:      hit.Document().ID(),
			Content: hit.Document().Content(),
			URL:     hit.URL(),
			Title:   hit.Title(),
		}
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetCodeExamples handles the get_code_examples tool invocation.
func (s *Server) handleGetCodeExamples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	language := request.GetString("language", "")

	examples, err := s.reader.Examples(ctx, language)
	if err != nil {
		s.logger.Error("list code examples failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("list code examples failed: %v", err)), nil
	}

	type exampleResult struct {
		ID          string `json:"id"`
		Language    string `json:"language"`
		Description string `json:"description"`
		Code        string `json:"code"`
		SourceURL   string `json:"source_url"`
	}

	results := make([]exampleResult, len(examples))
	for i, e := range examples {
		results[i] = exampleResult{
			ID:          e.ID(),
			Language:    e.Language(),
			Description: e.Description(),
			Code:        e.Code(),
			SourceURL:   e.SourceURL(),
		}
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleStats handles the stats tool invocation.
func (s *Server) handleStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.reader.Stats(ctx)
	if err != nil {
		s.logger.Error("stats failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("stats failed: %v", err)), nil
	}

	result := map[string]int64{
		"sources":       stats.Sources(),
		"documents":     stats.Documents(),
		"code_examples": stats.CodeExamples(),
		"collections":   stats.Collections(),
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
