package cmd

import (
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/internal/evalstore"
	"github.com/sawamura/equisight/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// defaultHistoryLimit caps the listing so a long-lived store stays readable.
const defaultHistoryLimit = 20

// historyCmd lists persisted evaluation runs, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past evaluation runs from the run store.",
	Long: `Show persisted evaluation runs, newest first.

Each evaluate invocation is recorded with its inputs, ability score, rank
and traits (unless --store-backend none). Use history to compare a horse
against earlier evaluations or to review a sale season's worth of runs.

Examples:
  # Most recent runs
  equisight history

  # Everything, as CSV for a spreadsheet
  equisight history --limit 0 --output csv --output-file runs.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runHistory(); err != nil {
			contract.LogFatal("Cannot list run history", err)
		}
	},
}

func runHistory() error {
	store, err := evalstore.NewRunStore(cfg.StoreBackend, cfg.StoreConnect)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListRuns(viper.GetInt("limit"))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHistory(records, cfg)
}
