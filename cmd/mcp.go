package cmd

import (
	"github.com/huangsam/healthdash/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the healthdash MCP server",
	Long:  `Launch an MCP server over stdio that lets AI agents normalize datasets and fetch dashboard figures.`,
	Args:  cobra.NoArgs,
	// Tool handlers suppress run headers so stdio stays reserved for the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, loader)
	},
}
