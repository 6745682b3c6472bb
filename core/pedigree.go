package core

import (
	"strings"

	"github.com/sawamura/equisight/schema"
)

// Hints holds the pedigree line tables: horse name -> bias added to the
// pedigree index. Table entries are configuration, not logic: they load
// from an external file so the lines can change without touching formulas.
type Hints struct {
	SpeedLines map[string]float64 // sire names with a speed-leaning prior
	PowerLines map[string]float64 // damsire names with a power-leaning prior
}

// Default line biases.
const (
	speedLineBias = 6.0
	powerLineBias = 4.0
)

// DefaultHints returns the built-in hint tables (JA and EN spellings).
func DefaultHints() Hints {
	return Hints{
		SpeedLines: map[string]float64{
			"Speightstown": speedLineBias,
			"スパイツタウン":       speedLineBias,
			"Eskendereya":  speedLineBias,
			"エスケンデレヤ":      speedLineBias,
		},
		PowerLines: map[string]float64{
			"サウスヴィグラス":        powerLineBias,
			"South Vigorous":  powerLineBias,
			"アジアエクスプレス":       powerLineBias,
			"Asia Express":    powerLineBias,
		},
	}
}

// Pedigree notes.
const (
	notePedDefault = "血統は簡易事前分布（v1.0）"
	notePedSpeed   = "父系からスピード寄りの事前補正"
	notePedPower   = "母父からパワー寄りの事前補正"
)

// PedigreeIndex derives the pedigree index from sire/damsire membership in
// the hint tables. This is a static lookup, not inference: start at the
// neutral 50, add the matched biases, clamp to [40,75].
func PedigreeIndex(sire, damsire string, hints Hints) (float64, string) {
	idx := schema.NeutralPedigree
	note := notePedDefault

	if bias, ok := hints.SpeedLines[strings.TrimSpace(sire)]; ok {
		idx += bias
		note = notePedSpeed
	}
	if bias, ok := hints.PowerLines[strings.TrimSpace(damsire)]; ok {
		idx += bias
		note = notePedPower
	}

	return clamp(idx, schema.PedigreeMin, schema.PedigreeMax), note
}
