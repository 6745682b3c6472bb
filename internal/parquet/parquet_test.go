package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eqschema "github.com/sawamura/equisight/schema"
)

func TestEvaluationRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(EvaluationRun))
	require.NotNil(t, schema)

	// Check that all expected columns exist
	expectedColumns := []string{
		"run_id",
		"run_time",
		"sire",
		"damsire",
		"distance_m",
		"ability",
		"rank",
		"stars",
		"confidence",
		"pattern",
		"turfiness",
		"trait_speed",
		"trait_power",
		"trait_stamina",
		"trait_durability",
		"trait_risk",
		"trait_acceleration",
		"trait_stability",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteEvaluationRunsParquet(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "runs.parquet")

	sire := "Speightstown"
	data := []EvaluationRun{
		{
			RunID:      1,
			RunTime:    time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC),
			Sire:       &sire,
			DistanceM:  1200,
			Ability:    48.82,
			Rank:       "D",
			Stars:      1,
			Confidence: 0.45,
			Pattern:    "B",
			Turfiness:  0.542,
			TraitSpeed: 53, TraitPower: 51, TraitStamina: 53, TraitDurability: 50,
			TraitRisk: 50, TraitAcceleration: 52, TraitStability: 50,
		},
		{
			RunID:   2,
			RunTime: time.Date(2026, 8, 26, 11, 0, 0, 0, time.UTC),
			// Sire/Damsire nil: nullable fields
			DistanceM: 1600, Ability: 62.10, Rank: "C", Stars: 2,
			Confidence: 0.65, Pattern: "S", Turfiness: 0.48,
		},
	}

	require.NoError(t, WriteEvaluationRunsParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read back and verify row content survives the round trip.
	rows, err := parquet.ReadFile[EvaluationRun](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].RunID)
	require.NotNil(t, rows[0].Sire)
	assert.Equal(t, "Speightstown", *rows[0].Sire)
	assert.Equal(t, 48.82, rows[0].Ability)
	assert.Nil(t, rows[1].Sire)
}

func TestConvertRunRecords(t *testing.T) {
	records := []eqschema.RunRecord{
		{
			RunID:     7,
			RunTime:   "2026-08-26T10:30:00Z",
			Sire:      "エスケンデレヤ",
			Damsire:   "",
			DistanceM: 1400,
			Ability:   55.5,
			Rank:      "D",
			Stars:     1,
			Pattern:   "B",
			Traits:    eqschema.TraitVector{Speed: 60},
		},
	}

	runs := ConvertRunRecords(records)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(7), runs[0].RunID)
	assert.Equal(t, 2026, runs[0].RunTime.Year())
	require.NotNil(t, runs[0].Sire)
	assert.Equal(t, "エスケンデレヤ", *runs[0].Sire)
	assert.Nil(t, runs[0].Damsire, "empty name maps to null")
	assert.Equal(t, 60.0, runs[0].TraitSpeed)
}
