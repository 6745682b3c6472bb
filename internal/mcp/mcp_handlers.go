package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	evaluator *core.Evaluator
}

func (h *toolHandler) handleEvaluateHorse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := schema.EvaluationInput{
		Sire:       request.GetString("sire", ""),
		Damsire:    request.GetString("damsire", ""),
		Sex:        request.GetString("sex", ""),
		BodyWeight: request.GetFloat("body_weight", 0),
		Height:     request.GetFloat("height", 0),
		Girth:      request.GetFloat("girth", 0),
		Cannon:     request.GetFloat("cannon", 0),
		DistanceM:  request.GetFloat("distance_m", 0),
	}
	photoPath := request.GetString("photo_path", "")
	videoPath := request.GetString("video_path", "")

	report := h.evaluator.Evaluate(in, photoPath, videoPath)

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleEstimateMarket(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := schema.EvaluationInput{
		Sire: request.GetString("sire", ""),
		Sex:  request.GetString("sex", ""),
	}

	// Absent and zero are different inputs here: zero is a real anchor,
	// absent falls through the lookup layers.
	var ov schema.MarketOverrides
	args := request.GetArguments()
	if _, ok := args["sire_fee_median"]; ok {
		v := request.GetFloat("sire_fee_median", 0)
		ov.SireFeeMedian = &v
	}
	if _, ok := args["dam_value"]; ok {
		v := request.GetFloat("dam_value", 0)
		ov.DamValue = &v
	}
	if _, ok := args["blacktype_count"]; ok {
		v := request.GetFloat("blacktype_count", 0)
		ov.BlacktypeCount = &v
	}
	if _, ok := args["nearby_gsw"]; ok {
		v := request.GetFloat("nearby_gsw", 0)
		ov.NearbyGSW = &v
	}

	est := core.EstimateMarket(in, ov, h.baseCfg.Medians)

	jsonData, _ := json.MarshalIndent(est, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
