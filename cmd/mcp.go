package cmd

import (
	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/mcp"
	"github.com/sawamura/equisight/media"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Equisight MCP server",
	Long:  `Launch an MCP server that allows AI agents to evaluate horses and estimate prices via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		extractor := media.NewExtractor()
		evaluator := core.NewEvaluator(extractor, extractor, cfg.Hints)
		return mcp.StartMCPServer(rootCtx, cfg, evaluator)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
