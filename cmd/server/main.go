// Command server runs the Medium MCP server over stdio.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"medium-mcp/internal/config"
	"medium-mcp/internal/handler/mcpserver"
	infraMedium "medium-mcp/internal/infra/medium"
	"medium-mcp/internal/observability/logging"
	mediumUC "medium-mcp/internal/usecase/medium"
)

func main() {
	// Logs go to stderr: stdout carries the MCP stdio transport.
	logger := logging.NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger = logging.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	svc := &mediumUC.Service{
		API:         infraMedium.NewClient(cfg, logger),
		MaxArticles: cfg.MaxArticlesPerRequest,
	}
	server := mcpserver.NewServer(svc, logger, getVersion())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startMetricsServer(ctx, logger)

	logger.Info("medium mcp server starting",
		slog.String("version", getVersion()),
		slog.Int("max_articles_per_request", cfg.MaxArticlesPerRequest))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server terminated", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("medium mcp server stopped")
}

func getVersion() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
