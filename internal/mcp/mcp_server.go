// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the healthdash MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.TableLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Healthdash Data Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: normalize_dataset ---
	s.AddTool(mcp.NewTool("normalize_dataset",
		mcp.WithDescription("Reshape a wide health indicator table (one row per country, one column per year) into long (country, year, value) records."),
		mcp.WithString("path", mcp.Description("Path to the CSV or XLSX dataset."), mcp.Required()),
		mcp.WithString("countries", mcp.Description("Comma-separated country allow-list (defaults to the configured list).")),
		mcp.WithString("value_columns", mcp.Description("Comma-separated year columns to melt, e.g. '1980,2008'.")),
	), h.handleNormalizeDataset)

	// --- 2. Tool: get_figures ---
	s.AddTool(mcp.NewTool("get_figures",
		mcp.WithDescription("Build the three dashboard charts (cholesterol over time, BMI over time, cholesterol vs BMI) as plotly figure JSON."),
		mcp.WithString("cholesterol_path", mcp.Description("Path to the cholesterol dataset (defaults to the configured path).")),
		mcp.WithString("bmi_path", mcp.Description("Path to the BMI dataset (defaults to the configured path).")),
	), h.handleGetFigures)

	return s
}

// StartMCPServer starts the healthdash MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.TableLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
