// Package cmd defines the command-line interface for equisight.
package cmd

import (
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(formulaCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", schema.TextOut, "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print intermediate indices and formula terms")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgres or none")
	rootCmd.PersistentFlags().String("store-connect", "", "Database connection string for mysql/postgres, or SQLite file path")
	rootCmd.PersistentFlags().String("medians-file", "", "Path to a JSON table of sire median prices in yen")
	rootCmd.PersistentFlags().String("hints-file", "", "Path to a JSON table of pedigree line biases")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Per-horse form fields stay on the commands themselves. They describe
	// one invocation, not configuration, so they are read straight from
	// Cobra instead of being bound into Viper (evaluate and market share
	// flag names, and Viper keys are global).
	evaluateCmd.Flags().String("sire", "", "Sire name (Japanese or English)")
	evaluateCmd.Flags().String("dam", "", "Dam name")
	evaluateCmd.Flags().String("damsire", "", "Damsire name (Japanese or English)")
	evaluateCmd.Flags().String("sex", "", "Sex: 牡, 牝, セン or english equivalents")
	evaluateCmd.Flags().String("coat", "", "Coat color, used by the growth preview")
	evaluateCmd.Flags().Float64("body-weight", 0, "Body weight in kg (0 = not measured)")
	evaluateCmd.Flags().Float64("height", 0, "Height in cm (0 = not measured)")
	evaluateCmd.Flags().Float64("girth", 0, "Girth in cm (0 = not measured)")
	evaluateCmd.Flags().Float64("cannon", 0, "Cannon circumference in cm (0 = not measured)")
	evaluateCmd.Flags().Float64("distance", 0, "Intended race distance in meters (0 = 1600)")
	evaluateCmd.Flags().String("photo", "", "Path to a side-profile photo")
	evaluateCmd.Flags().String("video", "", "Path to a gait or canter video")
	evaluateCmd.Flags().Bool("growth-preview", false, "Render a predicted 3yo image next to the report")
	evaluateCmd.Flags().String("growth-out", "", "Directory for the growth preview image (default: photo's directory)")

	marketCmd.Flags().String("sire", "", "Sire name (Japanese or English)")
	marketCmd.Flags().String("sex", "", "Sex: 牡, 牝, セン or english equivalents")
	marketCmd.Flags().String("sire-fee-median", "", "Override: sire median price in yen (empty = not supplied)")
	marketCmd.Flags().String("dam-value", "", "Dam's own sale or estimated value in yen")
	marketCmd.Flags().String("blacktype-count", "", "Number of blacktype horses under the dam")
	marketCmd.Flags().String("nearby-gsw", "", "Number of graded stakes winners within two dams")

	// Bind all flags of historyCmd to Viper
	historyCmd.Flags().IntP("limit", "l", defaultHistoryLimit, "Number of runs to display (0 = all)")
	if err := viper.BindPFlags(historyCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}

// flagString reads a string flag defined on cmd. Lookup failures are
// programming errors (a typo in the flag name), so they are fatal.
func flagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		contract.LogFatal("Error reading flag --"+name, err)
	}
	return v
}

// flagFloat reads a float64 flag defined on cmd.
func flagFloat(cmd *cobra.Command, name string) float64 {
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		contract.LogFatal("Error reading flag --"+name, err)
	}
	return v
}

// flagBool reads a bool flag defined on cmd.
func flagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		contract.LogFatal("Error reading flag --"+name, err)
	}
	return v
}
