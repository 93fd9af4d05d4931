package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "sfadsms/internal/adapters/mcp"
	"sfadsms/internal/bootstrap"
	"sfadsms/internal/config"
)

func main() {
	rootFlag := flag.String("root", config.RootPath(), "path to the store root")
	flag.Parse()

	// Logs go to the log file only; stdout carries the protocol
	app, err := bootstrap.Open(bootstrap.Options{Root: *rootFlag})
	if err != nil {
		log.Fatalf("sfadsms-mcp: %v", err)
	}
	defer app.Close()

	mcpServer := server.NewMCPServer(
		"sfadsms-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	deps := &mcpadapter.Deps{
		Store:      app.Store,
		Reconciler: app.Reconciler,
		Prober:     app.Prober,
		Index:      app.Index,
		Auditor:    app.Auditor,
		Audit:      app.Audit,
	}
	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		app.Logger.Error("mcp server stopped", "error", err)
		app.Close()
		log.Fatalf("sfadsms-mcp: %v", err)
	}
}
