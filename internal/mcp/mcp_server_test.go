package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/contract"
	mcp_internal "github.com/sawamura/equisight/internal/mcp"
	"github.com/sawamura/equisight/media"
	"github.com/sawamura/equisight/schema"
)

func TestMCPServerTools(t *testing.T) {
	baseCfg := &contract.Config{
		Output:  schema.TextOut,
		Hints:   core.DefaultHints(),
		Medians: map[string]float64{},
	}
	extractor := media.NewExtractor()
	evaluator := core.NewEvaluator(extractor, extractor, baseCfg.Hints)
	s := mcp_internal.NewMCPServer(baseCfg, evaluator)

	ctx := context.Background()

	t.Run("evaluate_horse returns full report", func(t *testing.T) {
		tool := s.GetTool("evaluate_horse")
		require.NotNil(t, tool, "Tool evaluate_horse should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "evaluate_horse",
				Arguments: map[string]any{
					"sire":       "Speightstown",
					"distance_m": 1200.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var report schema.Report
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &report))
		assert.Equal(t, schema.AlgoVersion, report.AlgoVersion)
		assert.Equal(t, 48.82, report.Ability.Ability)
		assert.Equal(t, schema.RankD, report.Rank)
		assert.Equal(t, 0.45, report.Confidence)
	})

	t.Run("estimate_market honors explicit override", func(t *testing.T) {
		tool := s.GetTool("estimate_market")
		require.NotNil(t, tool, "Tool estimate_market should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "estimate_market",
				Arguments: map[string]any{
					"sire":            "未知の種牡馬",
					"sex":             "牡",
					"sire_fee_median": 2000000.0,
					"dam_value":       1000000.0,
					"blacktype_count": 2.0,
					"nearby_gsw":      1.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var est schema.MarketEstimate
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &est))
		assert.Equal(t, int64(2_080_000), est.YenLow)
		assert.Equal(t, int64(4_790_000), est.YenHigh)
	})

	t.Run("estimate_market absent overrides fall through", func(t *testing.T) {
		tool := s.GetTool("estimate_market")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "estimate_market",
				Arguments: map[string]any{"sire": "オールザベスト"},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var est schema.MarketEstimate
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &est))
		assert.Equal(t, int64(3_300_000), est.Anchor)
	})
}
