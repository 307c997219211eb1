package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "logicgrid/internal/adapters/mcp"
	"logicgrid/internal/config"
)

func main() {
	cfg := config.Load()
	flag.IntVar(&cfg.MaxPasses, "max-passes", cfg.MaxPasses, "propagation pass cap")
	flag.Float64Var(&cfg.PinSnap, "pin-snap", cfg.PinSnap, "gate pin snap radius")
	flag.Float64Var(&cfg.MergeRadius, "merge-radius", cfg.MergeRadius, "wire endpoint merge radius")
	flag.Float64Var(&cfg.LampRadius, "lamp-radius", cfg.LampRadius, "lamp connection radius")
	flag.Parse()

	sess := mcpadapter.NewSession(cfg.Options())

	mcpServer := server.NewMCPServer(
		"logicgrid-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, sess)
	mcpadapter.RegisterWriteTools(mcpServer, sess)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("logicgrid-mcp: %v", err)
	}
}
