package cmd

import (
	"fmt"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/internal/evalstore"
	"github.com/sawamura/equisight/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// openRunStore opens the run store from the validated config.
func openRunStore() (*evalstore.RunStore, error) {
	if cfg.StoreBackend == schema.NoneBackend {
		return nil, fmt.Errorf("run store is disabled (--store-backend none)")
	}
	return evalstore.NewRunStore(cfg.StoreBackend, cfg.StoreConnect)
}

// storeCmd focused on run store management.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the evaluation run store",
	Long: `Manage the database that records every evaluation run.

When enabled, every 'equisight evaluate' stores:
- Run metadata (timestamp, pedigree, distance)
- The ability score, rank, stars and confidence
- The full trait vector and turfiness

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run store statistics
  export  - Export runs to Parquet for analytics
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Check the store
  equisight store status

  # Export for analysis in pandas/DuckDB
  equisight store export --output-file runs.parquet`,
}

// storeStatusCmd shows run store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run store statistics and connection details",
	Long: `Show detailed information about the run store.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last run ID and timestamp

Examples:
  # Check run tracking status
  equisight store status`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		evalstore.PrintRunStatus(status)
	},
}

// storeExportCmd exports run data to a Parquet file.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded evaluation runs to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all runs
  equisight store export --output-file runs.parquet

  # Use with DuckDB for analysis
  duckdb -c "SELECT sire, avg(ability) FROM read_parquet('runs.parquet') GROUP BY sire"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		if err := evalstore.ExecuteRunExport(store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// storeClearCmd clears the run data.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded evaluation runs",
	Long: `Delete every stored evaluation run.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  equisight store export --output-file backup.parquet
  equisight store clear`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openRunStore()
		if err != nil {
			contract.LogFatal("Failed to open run store", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.ClearRuns(); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// storeMigrateCmd runs database migrations for the run store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  equisight store migrate

  # Migrate to specific version
  equisight store migrate --target-version 1

  # Rollback to previous version
  equisight store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := evalstore.MigrateRuns(cfg.StoreBackend, cfg.StoreConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
