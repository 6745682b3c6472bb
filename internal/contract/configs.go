// Package contract holds configuration, validation and small shared helpers
// that sit between the CLI surface and the scoring core.
package contract

import (
	"fmt"
	"strings"

	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/schema"
)

// Default values for configuration.
const (
	DefaultDistanceM = 1600.0
	DefaultPrecision = 2
	MaxWidth         = 500
)

// Config holds the validated runtime configuration.
// Simple fields are copied straight from the raw input; fields that need
// parsing or file loading (hints, medians) are set by ProcessAndValidate.
type Config struct {
	Output       string                 // Output format: "text", "json" or "csv"
	OutputFile   string                 // Optional path to write output directly
	Width        int                    // Terminal width override (0 = detect)
	Explain      bool                   // If true, print intermediate indices
	StoreBackend schema.DatabaseBackend // Run store backend
	StoreConnect string                 // Run store connection string / file path
	MediansFile  string                 // Path to the sire median price table (JSON)
	HintsFile    string                 // Optional path to pedigree hint tables (JSON)

	Hints   core.Hints         // Pedigree line biases (FINAL loaded tables)
	Medians map[string]float64 // Sire name -> median price in yen
}

// ConfigRawInput holds the raw values merged by Viper from defaults, config
// file, env vars and flags. Viper unmarshals into this struct.
type ConfigRawInput struct {
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Explain      bool   `mapstructure:"explain"`
	StoreBackend string `mapstructure:"store-backend"`
	StoreConnect string `mapstructure:"store-connect"`
	MediansFile  string `mapstructure:"medians-file"`
	HintsFile    string `mapstructure:"hints-file"`
}

// ProcessAndValidate performs parsing and validation on the raw inputs and
// populates the final Config struct, loading the external tables.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Output format ---
	cfg.Output = strings.ToLower(input.Output)
	validOutputs := map[string]bool{schema.TextOut: true, schema.JSONOut: true, schema.CSVOut: true}
	if _, ok := validOutputs[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, csv", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 2. Width ---
	if input.Width < 0 || input.Width > MaxWidth {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxWidth, input.Width)
	}
	cfg.Width = input.Width

	cfg.Explain = input.Explain

	// --- 3. Store backend ---
	backend := schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
		cfg.StoreBackend = backend
	default:
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgres, none", input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect

	// --- 4. External tables ---
	// Hint tables fall back to the built-in line sets; the medians table
	// falls back to empty (the estimator has its own default anchors).
	cfg.HintsFile = input.HintsFile
	hints, err := LoadHints(input.HintsFile)
	if err != nil {
		return fmt.Errorf("failed to load hints file %q: %w", input.HintsFile, err)
	}
	cfg.Hints = hints

	cfg.MediansFile = input.MediansFile
	medians, err := LoadMedians(input.MediansFile)
	if err != nil {
		LogWarn("could not load market medians, using built-in anchors", err)
		medians = map[string]float64{}
	}
	cfg.Medians = medians

	return nil
}
