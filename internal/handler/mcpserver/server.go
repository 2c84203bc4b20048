// Package mcpserver exposes the Medium read operations as MCP tools.
// Each tool validates its arguments, delegates to the access layer,
// and renders the result as pretty-printed JSON text content.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"medium-mcp/internal/domain/entity"
	"medium-mcp/internal/observability/metrics"
	mediumUC "medium-mcp/internal/usecase/medium"
)

const (
	defaultCount = 3
	minCount     = 1
	maxCount     = 100

	defaultFormat = "text"
	defaultMode   = "top_month"
)

var validFormats = map[string]bool{
	"text":     true,
	"html":     true,
	"markdown": true,
}

var validFeedModes = map[string]bool{
	"hot":          true,
	"new":          true,
	"top_year":     true,
	"top_month":    true,
	"top_week":     true,
	"top_all_time": true,
}

// Handler carries the dependencies of the tool implementations. A nil
// service means initialization failed; the tools stay registered and
// report the failure on every call.
type Handler struct {
	svc    *mediumUC.Service
	logger *slog.Logger
}

// NewServer builds the MCP server with all five Medium tools
// registered. svc may be nil when startup configuration failed.
func NewServer(svc *mediumUC.Service, logger *slog.Logger, version string) *mcp.Server {
	h := &Handler{svc: svc, logger: logger}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "medium-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_info",
		Description: "Get information about a Medium user by username",
	}, h.getUserInfo)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user_articles",
		Description: "Get recent articles published by a Medium user",
	}, h.getUserArticles)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_article_content",
		Description: "Get the full content of a Medium article in text, html, or markdown format",
	}, h.getArticleContent)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_top_feeds",
		Description: "Get trending Medium articles, optionally filtered by tag",
	}, h.getTopFeeds)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_articles",
		Description: "Search Medium articles by keyword query",
	}, h.searchArticles)

	return server
}

// respond runs one tool invocation end to end: request logging, the
// uninitialized-server guard, metrics, and result rendering.
func (h *Handler) respond(ctx context.Context, tool string, fn func(context.Context, *mediumUC.Service) (any, error)) (*mcp.CallToolResult, any, error) {
	start := time.Now()
	logger := h.logger.With(
		slog.String("tool", tool),
		slog.String("request_id", uuid.New().String()),
	)

	if h.svc == nil {
		logger.Error("tool call on uninitialized server")
		metrics.RecordToolCall(tool, "error", time.Since(start))
		return nil, nil, wrapToolError(entity.ErrNotInitialized)
	}

	result, err := fn(ctx, h.svc)
	if err != nil {
		var opErr *entity.OperationError
		if errors.As(err, &opErr) {
			logger.Error("tool call failed",
				slog.String("message", opErr.Message),
				slog.Int("status_code", opErr.StatusCode))
		} else {
			logger.Error("tool call failed with unexpected error", slog.Any("error", err))
		}
		metrics.RecordToolCall(tool, "error", time.Since(start))
		return nil, nil, wrapToolError(err)
	}

	text, err := toJSONText(result)
	if err != nil {
		logger.Error("result encoding failed", slog.Any("error", err))
		metrics.RecordToolCall(tool, "error", time.Since(start))
		return nil, nil, wrapToolError(err)
	}

	logger.Info("tool call completed", slog.Duration("duration", time.Since(start)))
	metrics.RecordToolCall(tool, "success", time.Since(start))
	return textToolResult(text), nil, nil
}

// reject fails a tool call on argument validation, before any upstream
// work happens.
func (h *Handler) reject(tool string, err error) (*mcp.CallToolResult, any, error) {
	h.logger.Warn("tool call rejected",
		slog.String("tool", tool),
		slog.Any("error", err))
	metrics.RecordToolCall(tool, "rejected", 0)
	return nil, nil, wrapToolError(err)
}

// wrapToolError renders an error as the client-facing tool error text.
// Classified operation errors get the Medium API prefix; everything
// else, including validation failures, gets the generic one.
func wrapToolError(err error) error {
	var opErr *entity.OperationError
	if errors.As(err, &opErr) {
		return fmt.Errorf("Medium API Error: %s", opErr.Message)
	}
	return fmt.Errorf("Error: %v", err)
}

// toJSONText renders a result as indented JSON without HTML escaping,
// so non-ASCII and markup characters appear literally.
func toJSONText(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func textToolResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// resolveCount applies the default and validates the shared count
// argument.
func resolveCount(count *int) (int, error) {
	if count == nil {
		return defaultCount, nil
	}
	if *count < minCount || *count > maxCount {
		return 0, fmt.Errorf("count must be between %d and %d", minCount, maxCount)
	}
	return *count, nil
}
