package cmd

import (
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/internal/outwriter"
	"github.com/spf13/cobra"
)

// formulaCmd documents the locked scoring formula.
var formulaCmd = &cobra.Command{
	Use:   "formula",
	Short: "Print the locked formula definitions step by step.",
	Long: `Show every derivation step of the scoring pipeline, from the raw
evidence indices through traits, alpha, turfiness and the final ability
number.

The formula is locked: the printed definitions are the exact arithmetic the
evaluate command runs, constants included. Use this to document a report or
to verify a score by hand.

Examples:
  # Human-readable walkthrough
  equisight formula

  # Machine-readable, for docs tooling
  equisight formula --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.NewOutWriter().WriteFormula(cfg); err != nil {
			contract.LogFatal("Cannot print formula definitions", err)
		}
	},
}
