package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/healthdash/core"
	"github.com/huangsam/healthdash/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.TableLoader
}

// jsonResult encodes data as an indented JSON text result, or a tool error when encoding fails.
func jsonResult(data any) *mcp.CallToolResult {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err))
	}
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleNormalizeDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputPath = request.GetString("path", "")
	if cfg.InputPath == "" {
		return mcp.NewToolResultError("path is required"), nil
	}
	if c := request.GetString("countries", ""); c != "" {
		cfg.Countries = contract.ParseList([]string{c})
	}
	if v := request.GetString("value_columns", ""); v != "" {
		cfg.ValueColumns = contract.ParseList([]string{v})
		cfg.KeepColumns = append([]string{cfg.IDColumn}, cfg.ValueColumns...)
	}

	if err := contract.RevalidateColumns(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid column parameters: %v", err)), nil
	}

	table, _, err := core.GetNormalizeResults(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("normalization failed: %v", err)), nil
	}

	return jsonResult(table), nil
}

func (h *toolHandler) handleGetFigures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("cholesterol_path", ""); p != "" {
		cfg.CholesterolPath = p
	}
	if p := request.GetString("bmi_path", ""); p != "" {
		cfg.BMIPath = p
	}

	figures, _, err := core.GetFiguresResults(core.WithSuppressHeader(ctx), cfg, h.loader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("figure assembly failed: %v", err)), nil
	}

	return jsonResult(figures), nil
}
