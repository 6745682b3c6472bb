package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
)

// formulaEntry is one displayed derivation step.
type formulaEntry struct {
	Name    string   `json:"name"`
	Purpose string   `json:"purpose"`
	Inputs  []string `json:"inputs"`
	Formula string   `json:"formula"`
}

// formulaRenderModel is the full render model for the formula display.
type formulaRenderModel struct {
	AlgoVersion string         `json:"algo_version"`
	Description string         `json:"description"`
	Entries     []formulaEntry `json:"entries"`
}

// buildFormulaRenderModel assembles the static derivation documentation.
// The strings mirror the coefficients in core; this display is purely
// informational and performs no scoring.
func buildFormulaRenderModel() *formulaRenderModel {
	return &formulaRenderModel{
		AlgoVersion: schema.AlgoVersion,
		Description: "Seven traits derive from the evidence indices, then a distance-blended formula produces a single ability score. Coefficients are locked per algo version.",
		Entries: []formulaEntry{
			{
				Name:    "Speed",
				Purpose: "forward propulsion",
				Inputs:  []string{"speed_index", "pedigree_index", "motion_index"},
				Formula: "0.60*speed + 0.15*pedigree + 0.25*motion (+2 Sprint)",
			},
			{
				Name:    "Power",
				Purpose: "drive and frame strength",
				Inputs:  []string{"body_index", "photo_index", "pedigree_index"},
				Formula: "0.55*body + 0.25*photo + 0.20*pedigree",
			},
			{
				Name:    "Stamina",
				Purpose: "sustained effort over distance",
				Inputs:  []string{"motion_index", "body_index", "pedigree_index", "shortness"},
				Formula: "0.40*motion + 0.35*body + 0.25*pedigree + (1-shortness)*8 (+2 Stayer)",
			},
			{
				Name:    "Durability",
				Purpose: "soundness of frame",
				Inputs:  []string{"photo_index", "body_index", "stability_index"},
				Formula: "0.45*photo + 0.35*body + 0.20*stability (+1 Stayer)",
			},
			{
				Name:    "Risk",
				Purpose: "injury/inconsistency exposure",
				Inputs:  []string{"stability_index", "Durability"},
				Formula: "100 - (0.65*stability + 0.35*durability), clamp [10,80]",
			},
			{
				Name:    "Acceleration",
				Purpose: "burst and response",
				Inputs:  []string{"accel_index", "Speed (pre-nudge)", "motion_index"},
				Formula: "0.55*accel + 0.30*speed + 0.15*motion (+2 Sprint)",
			},
			{
				Name:    "Stability",
				Purpose: "repeatability of performance",
				Inputs:  []string{"stability_index", "Durability", "Risk"},
				Formula: "0.70*stability + 0.20*durability + 0.10*(100-risk)",
			},
			{
				Name:    "Ability",
				Purpose: "single headline score",
				Inputs:  []string{"Speed*", "Stamina", "Durability", "Risk*", "alpha"},
				Formula: "alpha*(0.75*Speed+0.25*Accel) + (1-alpha)*Stamina + 0.10*Durability - 0.18*(0.70*Risk+0.30*(100-Stability)), clamp [1,99]",
			},
			{
				Name:    "alpha",
				Purpose: "distance blend toward speed",
				Inputs:  []string{"shortness", "turfiness"},
				Formula: "clamp(0.35 + 0.45*shortness + 0.10*(turfiness-0.5)*2, 0.30, 0.90)",
			},
			{
				Name:    "turfiness",
				Purpose: "surface tendency",
				Inputs:  []string{"Speed", "Power"},
				Formula: "sigmoid(0.085*(Speed-Power))",
			},
		},
	}
}

// PrintFormulaDefinitions displays the formal definitions of the locked
// scoring formula. This is a static display that runs no evaluation.
func PrintFormulaDefinitions(cfg *contract.Config) error {
	renderModel := buildFormulaRenderModel()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulaCSV(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFormulaText(w, renderModel)
		}, "Wrote text")
	}
}

// writeFormulaText displays the formula in human-readable text format.
func writeFormulaText(w io.Writer, model *formulaRenderModel) error {
	if _, err := fmt.Fprintf(w, "🐎 Ability Formula (%s)\n", model.AlgoVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", strings.Repeat("=", 24), model.Description); err != nil {
		return err
	}

	for _, e := range model.Entries {
		if _, err := fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(e.Name), e.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Inputs: %s\n", strings.Join(e.Inputs, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n\n", e.Formula); err != nil {
			return err
		}
	}
	return nil
}

// writeFormulaCSV writes the formula entries in CSV format.
func writeFormulaCSV(w io.Writer, model *formulaRenderModel) error {
	header := []string{"name", "purpose", "inputs", "formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range model.Entries {
			rec := []string{e.Name, e.Purpose, strings.Join(e.Inputs, "|"), e.Formula}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
