package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"glossary/infrastructure/config"
	"glossary/infrastructure/di"
	"glossary/interfaces/mcpserver"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// stdout carries the protocol; metrics have no listener here
	cfg.Features.EnableMetrics = false

	container, cleanup, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer cleanup()

	server := mcpserver.NewServer(container.Glossary, version, container.Logger)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		container.Logger.Error("MCP server stopped", zap.Error(err))
	}
}
