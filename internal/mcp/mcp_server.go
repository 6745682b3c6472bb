// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/contract"
)

// NewMCPServer initializes and configures the Equisight MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, evaluator *core.Evaluator) *server.MCPServer {
	s := server.NewMCPServer(
		"Equisight Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:   baseCfg,
		evaluator: evaluator,
	}

	// --- 1. Tool: evaluate_horse ---
	s.AddTool(mcp.NewTool("evaluate_horse",
		mcp.WithDescription("Run the locked ability evaluation for one yearling and return the full bilingual report."),
		mcp.WithString("sire", mcp.Description("Sire name (JA or EN spelling).")),
		mcp.WithString("damsire", mcp.Description("Damsire name (JA or EN spelling).")),
		mcp.WithString("sex", mcp.Description("Sex as free text (牝/牡 or english equivalents).")),
		mcp.WithNumber("body_weight", mcp.Description("Body weight in kg (omit if unknown).")),
		mcp.WithNumber("height", mcp.Description("Height in cm (omit if unknown).")),
		mcp.WithNumber("girth", mcp.Description("Girth in cm (omit if unknown).")),
		mcp.WithNumber("cannon", mcp.Description("Cannon circumference in cm (omit if unknown).")),
		mcp.WithNumber("distance_m", mcp.Description("Intended race distance in meters. Defaults to 1600.")),
		mcp.WithString("photo_path", mcp.Description("Path to a side-profile photo file.")),
		mcp.WithString("video_path", mcp.Description("Path to a gait/canter video file.")),
	), h.handleEvaluateHorse)

	// --- 2. Tool: estimate_market ---
	s.AddTool(mcp.NewTool("estimate_market",
		mcp.WithDescription("Estimate a market price range in yen from sire anchor, dam value and blacktype proxies. Independent of the ability evaluation."),
		mcp.WithString("sire", mcp.Description("Sire name used for the anchor lookup.")),
		mcp.WithString("sex", mcp.Description("Sex as free text (牝/牡 or english equivalents).")),
		mcp.WithNumber("sire_fee_median", mcp.Description("Explicit sire-fee anchor in yen. Overrides every table.")),
		mcp.WithNumber("dam_value", mcp.Description("Dam value in yen.")),
		mcp.WithNumber("blacktype_count", mcp.Description("Blacktype count in the near pedigree.")),
		mcp.WithNumber("nearby_gsw", mcp.Description("Graded-stakes winners in the near pedigree.")),
	), h.handleEstimateMarket)

	return s
}

// StartMCPServer starts the Equisight MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, evaluator *core.Evaluator) error {
	s := NewMCPServer(baseCfg, evaluator)
	return server.ServeStdio(s)
}
