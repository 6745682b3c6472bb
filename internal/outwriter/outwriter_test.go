package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
)

// sampleReport builds a minimal but fully-populated report for writer tests.
func sampleReport() *schema.Report {
	traits := schema.TraitVector{
		Speed: 53, Power: 51, Stamina: 53, Durability: 50,
		Risk: 50, Acceleration: 52, Stability: 50,
	}
	return &schema.Report{
		AlgoVersion: schema.AlgoVersion,
		Total:       49,
		Rank:        schema.RankD,
		Stars:       "★☆☆☆☆",
		StarCount:   1,
		Confidence:  0.45,
		Ability: schema.AbilityResult{
			Ability: 48.82, Alpha: 0.733, Turfiness: 0.542,
			SpeedStar: 52.75, RiskStar: 50,
		},
		Surface: schema.Bilingual{JA: "芝・ダート両用", EN: "Versatile on turf and dirt"},
		Reason:  schema.Bilingual{JA: "スピード・パワー均衡", EN: "Speed and power in balance"},
		Comment: schema.Bilingual{JA: "バランス型の馬体", EN: "A balanced profile"},
		Pattern: schema.PatternBalanced,
		Bucket:  schema.Sprint,
		Traits:  traits,
		Display: schema.DisplayRows(traits),
		Notes: schema.Notes{
			Body:     []string{"馬体測定値なしのため平均補完"},
			Photo:    []string{"側面写真が未添付のため平均補完"},
			Video:    []string{"動画が未添付のため平均補完"},
			Pedigree: []string{"血統データから傾向を推定"},
		},
		Debug: schema.Debug{
			DistanceM: 1200,
			Indices: schema.IndexSet{
				Body: 50, Photo: 50, Motion: 50, Speed: 50,
				Accel: 50, Stability: 50, Pedigree: 56,
			},
		},
	}
}

func TestWriteReportTableContainsHeadline(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Width: 60}
	err := writeReportTable(sampleReport(), cfg, 5*time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "総合評価 49点")
	assert.Contains(t, out, "★☆☆☆☆")
	assert.Contains(t, out, "1200m")
	assert.Contains(t, out, schema.AlgoVersion)
	assert.Contains(t, out, "バランス型の馬体")
	assert.Contains(t, out, "[馬体] 馬体測定値なしのため平均補完")
	assert.Contains(t, out, "[血統] 血統データから傾向を推定")
	// No explain block unless requested
	assert.NotContains(t, out, "中間指標")
}

func TestWriteReportTableExplain(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Output: schema.TextOut, Width: 60, Explain: true}
	err := writeReportTable(sampleReport(), cfg, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "中間指標")
	assert.Contains(t, out, "pedigree=56.00")
	assert.Contains(t, out, "alpha=0.733")
	assert.Contains(t, out, "turfiness=0.542")
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeReportCSV(&buf, sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header, rec := records[0], records[1]
	assert.Equal(t, "total", header[1])
	assert.Equal(t, "49", rec[1])
	assert.Equal(t, "D", rec[2])
	assert.Equal(t, "0.45", rec[4])
	assert.Equal(t, "48.82", rec[5])
	assert.Equal(t, "Sprint", rec[8])
	assert.Equal(t, "B", rec[9])
}

func TestWriteMarketText(t *testing.T) {
	var buf bytes.Buffer
	est := schema.MarketEstimate{
		YenLow:  2080000,
		YenHigh: 4790000,
		Anchor:  2000000,
		Source:  schema.Bilingual{JA: "種付料中央値を基準", EN: "Anchored on sire fee median"},
	}
	err := writeMarketText(&buf, est)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "推定価格帯: ¥2,080,000 〜 ¥4,790,000")
	assert.Contains(t, out, "種牡馬アンカー: ¥2,000,000")
	assert.Contains(t, out, "Anchored on sire fee median")
}

func TestWriteMarketCSV(t *testing.T) {
	var buf bytes.Buffer
	est := schema.MarketEstimate{YenLow: 2080000, YenHigh: 4790000, Anchor: 2000000,
		Source: schema.Bilingual{EN: "built-in anchor"}}
	err := writeMarketCSV(&buf, est)
	require.NoError(t, err)

	assert.Equal(t, "yen_low,yen_high,anchor,source\n2080000,4790000,2000000,built-in anchor\n", buf.String())
}

func TestWriteHistoryCSV(t *testing.T) {
	records := []schema.RunRecord{
		{
			RunID: 2, RunTime: "2026-08-26T10:00:00Z", Sire: "スパイツタウン",
			DistanceM: 1200, Ability: 48.82, Rank: "D", Stars: 1,
			Confidence: 0.45, Pattern: "B", Turfiness: 0.542,
		},
	}
	var buf bytes.Buffer
	err := writeHistoryCSV(&buf, records)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "run_id,run_time,sire,damsire,distance_m,ability,rank,stars,confidence,pattern,turfiness", lines[0])
	assert.Equal(t, "2,2026-08-26T10:00:00Z,スパイツタウン,,1200,48.82,D,1,0.45,B,0.542", lines[1])
}

func TestWriteHistoryTableFooter(t *testing.T) {
	var buf bytes.Buffer
	err := writeHistoryTable(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Showing 0 stored runs")
}

func TestFormulaRenderModel(t *testing.T) {
	model := buildFormulaRenderModel()
	assert.Equal(t, schema.AlgoVersion, model.AlgoVersion)
	require.Len(t, model.Entries, 10)

	names := make([]string, 0, len(model.Entries))
	for _, e := range model.Entries {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Ability")
	assert.Contains(t, names, "alpha")
	assert.Contains(t, names, "turfiness")
}

func TestWriteFormulaText(t *testing.T) {
	var buf bytes.Buffer
	err := writeFormulaText(&buf, buildFormulaRenderModel())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Ability Formula")
	assert.Contains(t, out, "ABILITY: single headline score")
	assert.Contains(t, out, "sigmoid(0.085*(Speed-Power))")
}

func TestGetMaxCommentWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "override applies reserve", width: 60, expected: 50},
		{name: "floor at 30", width: 20, expected: 30},
		{name: "cap at 100", width: 200, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tt.width}
			assert.Equal(t, tt.expected, GetMaxCommentWidth(cfg))
		})
	}
}
