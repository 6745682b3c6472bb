package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sawamura/equisight/core"
	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/internal/evalstore"
	"github.com/sawamura/equisight/internal/outwriter"
	"github.com/sawamura/equisight/media"
	"github.com/sawamura/equisight/schema"
	"github.com/spf13/cobra"
)

// evaluateCmd runs the full assessment pipeline for one horse.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a yearling and print its ability report.",
	Long: `Run the deterministic assessment pipeline for a single horse.

Every input is optional. Missing fields degrade to neutral values with a
diagnostic note, so the report is always fully populated:
- Body measurements feed a conformation index
- A side-profile photo feeds a photo index
- A gait/canter video feeds motion, speed, acceleration and stability indices
- Sire and damsire names feed a pedigree index

The indices become seven trait scores, then a single ability number, rank,
stars and a bilingual comment. The same inputs always produce the same
report.

Each run is recorded in the run store (see 'equisight history') unless the
store backend is set to none.

Examples:
  # Pedigree and distance only
  equisight evaluate --sire スパイツタウン --distance 1200

  # Full form with media
  equisight evaluate --sire "Asia Express" --damsire Eskendereya \
    --body-weight 470 --height 158 --girth 180 --cannon 20 \
    --distance 1600 --photo side.jpg --video canter.mp4

  # Include the intermediate indices
  equisight evaluate --sire スパイツタウン --explain

  # Render a predicted 3yo image next to the report
  equisight evaluate --photo side.jpg --coat 鹿毛 --growth-preview`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runEvaluate(cmd); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}

func runEvaluate(cmd *cobra.Command) error {
	in := schema.EvaluationInput{
		Sire:       flagString(cmd, "sire"),
		Dam:        flagString(cmd, "dam"),
		Damsire:    flagString(cmd, "damsire"),
		Sex:        flagString(cmd, "sex"),
		Coat:       flagString(cmd, "coat"),
		BodyWeight: flagFloat(cmd, "body-weight"),
		Height:     flagFloat(cmd, "height"),
		Girth:      flagFloat(cmd, "girth"),
		Cannon:     flagFloat(cmd, "cannon"),
		DistanceM:  flagFloat(cmd, "distance"),
	}
	photoPath := flagString(cmd, "photo")
	videoPath := flagString(cmd, "video")

	extractor := media.NewExtractor()
	evaluator := core.NewEvaluator(extractor, extractor, cfg.Hints)

	start := time.Now()
	report := evaluator.Evaluate(in, photoPath, videoPath)
	duration := time.Since(start)

	// Recording is best-effort: a broken store must never block the report.
	if cfg.StoreBackend != schema.NoneBackend {
		store, err := evalstore.NewRunStore(cfg.StoreBackend, cfg.StoreConnect)
		if err != nil {
			contract.LogWarn("run store unavailable, result not recorded", err)
		} else {
			if _, err := store.RecordRun(in, report, time.Now()); err != nil {
				contract.LogWarn("could not record run", err)
			}
			_ = store.Close()
		}
	}

	if flagBool(cmd, "growth-preview") {
		if photoPath == "" {
			contract.LogWarn("growth preview needs --photo", nil)
		} else {
			outPath, err := media.GrowthPreview(photoPath, in.Coat, flagString(cmd, "growth-out"))
			if err != nil {
				contract.LogWarn("could not render growth preview", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "🖼  Growth preview written to %s\n", outPath)
			}
		}
	}

	return outwriter.NewOutWriter().WriteReport(report, cfg, duration)
}
