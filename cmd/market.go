package cmd

import (
	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/internal/outwriter"
	"github.com/sawamura/equisight/schema"
	"github.com/spf13/cobra"
)

// marketCmd estimates a sale price range, independent of the ability score.
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Estimate a sale price range from pedigree and market inputs.",
	Long: `Estimate a market price band in yen for a single horse.

The estimate anchors on the sire's median price: an explicit override wins,
then the medians table (--medians-file), then the built-in anchors, then a
global default. Dam value, blacktype counts and nearby graded winners add
premiums on top, and sex applies a final factor.

Ability scores never feed the estimate. The market pipeline is anchored on
comparable sales, not on this tool's own opinion of the horse.

Numeric overrides are passed as text so that zero stays distinguishable
from "not supplied": --dam-value 0 is a real input, an omitted flag is not.

Examples:
  # Anchor from the built-in table
  equisight market --sire オールザベスト --sex 牝

  # Full override set
  equisight market --sire スパイツタウン --sex 牡 \
    --sire-fee-median 2000000 --dam-value 10000000 \
    --blacktype-count 2 --nearby-gsw 1`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runMarket(cmd); err != nil {
			contract.LogFatal("Cannot run market estimate", err)
		}
	},
}

func runMarket(cmd *cobra.Command) error {
	in := schema.EvaluationInput{
		Sire: flagString(cmd, "sire"),
		Sex:  flagString(cmd, "sex"),
	}
	ov := schema.MarketOverrides{
		SireFeeMedian:  contract.ParseFloat(flagString(cmd, "sire-fee-median")),
		DamValue:       contract.ParseFloat(flagString(cmd, "dam-value")),
		BlacktypeCount: contract.ParseFloat(flagString(cmd, "blacktype-count")),
		NearbyGSW:      contract.ParseFloat(flagString(cmd, "nearby-gsw")),
	}

	est := core.EstimateMarket(in, ov, cfg.Medians)
	return outwriter.NewOutWriter().WriteMarket(est, cfg)
}
