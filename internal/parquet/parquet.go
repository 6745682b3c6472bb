// Package parquet provides data structures and functions for exporting
// stored evaluation runs to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/sawamura/equisight/schema"
)

// EvaluationRun represents a single persisted evaluation run.
// This struct maps to the equisight_runs database table.
type EvaluationRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunTime is when the evaluation ran (TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// Sire is the sire name as entered (nullable)
	Sire *string `parquet:"sire,optional,snappy"`

	// Damsire is the damsire name as entered (nullable)
	Damsire *string `parquet:"damsire,optional,snappy"`

	// DistanceM is the intended race distance in meters
	DistanceM float64 `parquet:"distance_m,snappy"`

	// Ability is the locked-formula headline score
	Ability float64 `parquet:"ability,snappy"`

	// Rank is the ordinal ability category (A-D)
	Rank string `parquet:"rank,snappy"`

	// Stars is the 1-5 star count
	Stars int32 `parquet:"stars,snappy"`

	// Confidence scores how much real input backed the run
	Confidence float64 `parquet:"confidence,snappy"`

	// Pattern is the narrative archetype (C/P/S/B)
	Pattern string `parquet:"pattern,snappy"`

	// Turfiness is the surface tendency in [0,1]
	Turfiness float64 `parquet:"turfiness,snappy"`

	// The seven trait scores
	TraitSpeed        float64 `parquet:"trait_speed,snappy"`
	TraitPower        float64 `parquet:"trait_power,snappy"`
	TraitStamina      float64 `parquet:"trait_stamina,snappy"`
	TraitDurability   float64 `parquet:"trait_durability,snappy"`
	TraitRisk         float64 `parquet:"trait_risk,snappy"`
	TraitAcceleration float64 `parquet:"trait_acceleration,snappy"`
	TraitStability    float64 `parquet:"trait_stability,snappy"`
}

// WriteEvaluationRunsParquet writes a slice of EvaluationRun structs to a
// Parquet file.
func WriteEvaluationRunsParquet(data []EvaluationRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EvaluationRun struct tags
	writer := parquet.NewGenericWriter[EvaluationRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to EvaluationRun for Parquet
// export. Unparseable run times fall back to the zero time rather than
// aborting the export.
func ConvertRunRecords(records []schema.RunRecord) []EvaluationRun {
	result := make([]EvaluationRun, len(records))
	for i, record := range records {
		runTime, _ := time.Parse(time.RFC3339Nano, record.RunTime)

		var sire, damsire *string
		if record.Sire != "" {
			s := record.Sire
			sire = &s
		}
		if record.Damsire != "" {
			d := record.Damsire
			damsire = &d
		}

		result[i] = EvaluationRun{
			RunID:             record.RunID,
			RunTime:           runTime,
			Sire:              sire,
			Damsire:           damsire,
			DistanceM:         record.DistanceM,
			Ability:           record.Ability,
			Rank:              record.Rank,
			Stars:             int32(record.Stars),
			Confidence:        record.Confidence,
			Pattern:           record.Pattern,
			Turfiness:         record.Turfiness,
			TraitSpeed:        record.Traits.Speed,
			TraitPower:        record.Traits.Power,
			TraitStamina:      record.Traits.Stamina,
			TraitDurability:   record.Traits.Durability,
			TraitRisk:         record.Traits.Risk,
			TraitAcceleration: record.Traits.Acceleration,
			TraitStability:    record.Traits.Stability,
		}
	}
	return result
}
