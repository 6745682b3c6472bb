package core

import (
	"math"
	"strings"

	"github.com/sawamura/equisight/schema"
)

// Market adjustment coefficients (locked).
const (
	damPremiumRate = 0.25
	damPremiumCap  = 3_000_000.0
	blacktypeYen   = 250_000.0
	nearbyGSWYen   = 350_000.0
	fillyFactor    = 1.06
	coltFactor     = 1.03
	lowFactor      = 0.65
	highFactor     = 1.50
)

// GlobalAnchorDefault is the last-resort sire-fee anchor when the sire is
// unknown to every table.
const GlobalAnchorDefault = 1_500_000.0

// defaultAnchors are the built-in per-name anchors consulted after the
// external medians table. Initial coverage of the 2-5M yen band.
var defaultAnchors = map[string]float64{
	"オールザベスト":    3_300_000,
	"アジアエクスプレス":  2_000_000,
	"エスケンデレヤ":    1_700_000,
}

// marketSource is the fixed rationale attached to every estimate.
var marketSource = schema.Bilingual{
	JA: "推定根拠：種牡馬の市場取引中央値（入力 or 内部DB）＋母馬価値＋近親実績補正",
	EN: "Based on sire median market price + dam value + blacktype proxies.",
}

// anchorFor resolves the sire-fee anchor with the fixed precedence:
// explicit override -> external medians table -> built-in per-name anchor
// -> global fallback. The layers overlap on purpose; their order is part of
// the locked behavior.
func anchorFor(sire string, override *float64, medians map[string]float64) float64 {
	if override != nil {
		return *override
	}
	if v, ok := medians[sire]; ok {
		return v
	}
	if v, ok := defaultAnchors[sire]; ok {
		return v
	}
	return GlobalAnchorDefault
}

// roundToTenThousand rounds yen to the nearest 10,000.
func roundToTenThousand(v float64) int64 {
	return int64(math.Round(v/10_000.0)) * 10_000
}

// EstimateMarket turns the sire-fee anchor plus dam/blacktype/proximity
// signals into a price range. It is fully independent of the ability
// pipeline and never consults trait or ability output.
func EstimateMarket(in schema.EvaluationInput, ov schema.MarketOverrides, medians map[string]float64) schema.MarketEstimate {
	sire := strings.TrimSpace(in.Sire)
	sex := strings.TrimSpace(in.Sex)

	anchor := anchorFor(sire, ov.SireFeeMedian, medians)

	damValue := 0.0
	if ov.DamValue != nil {
		damValue = *ov.DamValue
	}
	blacktype := 0.0
	if ov.BlacktypeCount != nil {
		blacktype = *ov.BlacktypeCount
	}
	nearGSW := 0.0
	if ov.NearbyGSW != nil {
		nearGSW = *ov.NearbyGSW
	}

	base := anchor
	base += math.Min(damPremiumCap, damValue*damPremiumRate)
	base += blacktype * blacktypeYen
	base += nearGSW * nearbyGSWYen

	// Fillies carry broodmare value; colts a mild racing premium.
	switch {
	case isFilly(sex):
		base *= fillyFactor
	case isColt(sex):
		base *= coltFactor
	}

	// Wider range to avoid underestimation in early-stage market sampling.
	low := roundToTenThousand(base * lowFactor)
	high := roundToTenThousand(base * highFactor)
	if low < 0 {
		low = 0
	}
	if high < low {
		high = low
	}

	return schema.MarketEstimate{
		YenLow:  low,
		YenHigh: high,
		Anchor:  roundToTenThousand(anchor),
		Source:  marketSource,
	}
}

// isFilly reports whether the free-text sex field indicates a female horse.
// JA kanji takes precedence; english spellings are accepted for CLI use.
func isFilly(sex string) bool {
	if strings.Contains(sex, "牝") {
		return true
	}
	s := strings.ToLower(sex)
	return s == "f" || s == "filly" || s == "female" || s == "mare"
}

// isColt reports whether the free-text sex field indicates a male horse.
func isColt(sex string) bool {
	if strings.Contains(sex, "牡") {
		return true
	}
	s := strings.ToLower(sex)
	return s == "m" || s == "colt" || s == "male" || s == "stallion"
}
