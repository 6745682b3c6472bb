package evalstore

import (
	"errors"
	"fmt"

	"github.com/sawamura/equisight/internal/parquet"
)

// ExecuteRunExport writes every stored run to a single Parquet file.
func ExecuteRunExport(store *RunStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluation runs: %d\n", status.TotalRuns)

	records, err := store.ListRuns(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	runs := parquet.ConvertRunRecords(records)
	if err := parquet.WriteEvaluationRunsParquet(runs, outputFile); err != nil {
		return fmt.Errorf("failed to write runs parquet: %w", err)
	}

	fmt.Printf("Exported %d runs to %s\n", len(runs), outputFile)
	return nil
}
