package core

import (
	"math"

	"github.com/sawamura/equisight/schema"
)

// DistanceBucket returns the distance category and a shortness factor in
// [0,1] (1 = sprint, 0 = staying). Non-positive distance defaults to 1600m.
// The shortness ramp maps ~1000m to 1.0 and ~2200m to 0.0.
func DistanceBucket(distanceM float64) (schema.Bucket, float64) {
	d := distanceM
	if d <= 0 {
		d = 1600.0
	}

	dKM := d / 1000.0
	shortness := clamp((2.2-dKM)/1.2, 0.0, 1.0)

	switch {
	case d <= 1400:
		return schema.Sprint, shortness
	case d <= 2000:
		return schema.Mile, shortness
	default:
		return schema.Stayer, shortness
	}
}

// DeriveTraits combines the evidence indices into the seven traits.
//
// Derivation order matters: Risk uses the Durability computed in this same
// pass, Acceleration uses the pre-nudge Speed, Stability uses Durability
// and Risk, all on unrounded values. Bucket nudges apply next, then every
// trait is rounded to the nearest integer exactly once.
func DeriveTraits(idx schema.IndexSet, distanceM float64) schema.TraitVector {
	bucket, shortness := DistanceBucket(distanceM)

	speed := clamp(0.60*idx.Speed+0.15*idx.Pedigree+0.25*idx.Motion, schema.IndexMin, schema.IndexMax)
	power := clamp(0.55*idx.Body+0.25*idx.Photo+0.20*idx.Pedigree, schema.IndexMin, schema.IndexMax)

	// Stamina: distance, physique and rhythm
	stamina := clamp(
		0.40*idx.Motion+0.35*idx.Body+0.25*idx.Pedigree+(1.0-shortness)*8.0,
		schema.IndexMin, schema.IndexMax,
	)

	durability := clamp(0.45*idx.Photo+0.35*idx.Body+0.20*idx.Stability, schema.IndexMin, schema.IndexMax)

	// Risk increases when stability is low and volatility is high
	risk := clamp(100.0-(0.65*idx.Stability+0.35*durability), schema.RiskMin, schema.RiskMax)

	acceleration := clamp(0.55*idx.Accel+0.30*speed+0.15*idx.Motion, schema.IndexMin, schema.IndexMax)
	stability := clamp(0.70*idx.Stability+0.20*durability+0.10*(100.0-risk), schema.IndexMin, schema.IndexMax)

	// slight distance-aware nudges (kept mild)
	switch bucket {
	case schema.Sprint:
		speed = clamp(speed+2.0, schema.IndexMin, schema.IndexMax)
		acceleration = clamp(acceleration+2.0, schema.IndexMin, schema.IndexMax)
	case schema.Stayer:
		stamina = clamp(stamina+2.0, schema.IndexMin, schema.IndexMax)
		durability = clamp(durability+1.0, schema.IndexMin, schema.IndexMax)
	}

	return schema.TraitVector{
		Speed:        math.Round(speed),
		Power:        math.Round(power),
		Stamina:      math.Round(stamina),
		Durability:   math.Round(durability),
		Risk:         math.Round(risk),
		Acceleration: math.Round(acceleration),
		Stability:    math.Round(stability),
	}
}
