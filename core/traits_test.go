package core

import (
	"testing"

	"github.com/sawamura/equisight/schema"
	"github.com/stretchr/testify/assert"
)

func TestDistanceBucket(t *testing.T) {
	tests := []struct {
		name      string
		distanceM float64
		bucket    schema.Bucket
		shortness float64
		delta     float64
	}{
		{name: "sprint 1200", distanceM: 1200, bucket: schema.Sprint, shortness: 0.8333, delta: 0.0001},
		{name: "sprint boundary 1400", distanceM: 1400, bucket: schema.Sprint, shortness: 0.6667, delta: 0.0001},
		{name: "mile 1600", distanceM: 1600, bucket: schema.Mile, shortness: 0.5, delta: 0.0001},
		{name: "mile boundary 2000", distanceM: 2000, bucket: schema.Mile, shortness: 0.1667, delta: 0.0001},
		{name: "stayer 2400", distanceM: 2400, bucket: schema.Stayer, shortness: 0.0, delta: 0.0001},
		{name: "shortness caps at 1", distanceM: 800, bucket: schema.Sprint, shortness: 1.0, delta: 0.0001},
		{name: "zero distance defaults to 1600", distanceM: 0, bucket: schema.Mile, shortness: 0.5, delta: 0.0001},
		{name: "negative distance defaults to 1600", distanceM: -300, bucket: schema.Mile, shortness: 0.5, delta: 0.0001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, shortness := DistanceBucket(tt.distanceM)
			assert.Equal(t, tt.bucket, bucket)
			assert.InDelta(t, tt.shortness, shortness, tt.delta)
		})
	}
}

// neutralIndexSet returns an IndexSet with every evidence index at 50.
func neutralIndexSet() schema.IndexSet {
	return schema.IndexSet{
		Body: 50, Photo: 50, Motion: 50, Speed: 50,
		Accel: 50, Stability: 50, Pedigree: 50,
	}
}

// TestDeriveTraitsNeutralSprint pins the exact trait vector for an
// all-neutral horse with a speed-line pedigree at 1200m. These literals
// come from running the blend weights by hand; any drift in a coefficient
// or in the derivation order shows up here.
func TestDeriveTraitsNeutralSprint(t *testing.T) {
	idx := neutralIndexSet()
	idx.Pedigree = 56

	traits := DeriveTraits(idx, 1200)

	assert.Equal(t, 53.0, traits.Speed)
	assert.Equal(t, 51.0, traits.Power)
	assert.Equal(t, 53.0, traits.Stamina)
	assert.Equal(t, 50.0, traits.Durability)
	assert.Equal(t, 50.0, traits.Risk)
	assert.Equal(t, 52.0, traits.Acceleration)
	assert.Equal(t, 50.0, traits.Stability)
}

// TestDeriveTraitsAccelerationUsesPreNudgeSpeed verifies that the Sprint
// nudge on Speed does not leak into Acceleration's Speed term.
func TestDeriveTraitsAccelerationUsesPreNudgeSpeed(t *testing.T) {
	idx := neutralIndexSet()

	sprint := DeriveTraits(idx, 1200)
	mile := DeriveTraits(idx, 1600)

	// Acceleration differs only by the flat +2 Sprint nudge, not by the
	// nudged Speed feeding back in (which would add 0.30*2 more).
	assert.Equal(t, mile.Acceleration+2.0, sprint.Acceleration)
}

func TestDeriveTraitsStayerNudges(t *testing.T) {
	idx := neutralIndexSet()

	mile := DeriveTraits(idx, 1600)
	stayer := DeriveTraits(idx, 2400)

	// Stamina carries the distance term (1-shortness)*8 plus the +2 nudge:
	// mile gets +4, stayer gets +8+2.
	assert.Equal(t, mile.Stamina+6.0, stayer.Stamina)
	assert.Equal(t, mile.Durability+1.0, stayer.Durability)
	assert.Equal(t, mile.Speed, stayer.Speed)
}

// TestDeriveTraitsClamping drives every index to its extreme and checks
// each trait stays inside its documented range.
func TestDeriveTraitsClamping(t *testing.T) {
	extremes := []schema.IndexSet{
		{Body: 90, Photo: 90, Motion: 90, Speed: 90, Accel: 90, Stability: 90, Pedigree: 75},
		{Body: 35, Photo: 35, Motion: 35, Speed: 35, Accel: 35, Stability: 35, Pedigree: 40},
	}
	distances := []float64{1000, 1600, 3200}

	for _, idx := range extremes {
		for _, d := range distances {
			traits := DeriveTraits(idx, d)
			for _, v := range []float64{
				traits.Speed, traits.Power, traits.Stamina,
				traits.Durability, traits.Acceleration, traits.Stability,
			} {
				assert.GreaterOrEqual(t, v, schema.IndexMin)
				assert.LessOrEqual(t, v, schema.IndexMax)
			}
			assert.GreaterOrEqual(t, traits.Risk, schema.RiskMin)
			assert.LessOrEqual(t, traits.Risk, schema.RiskMax)
		}
	}
}

// TestDeriveTraitsRiskTracksInstability checks the Risk direction: lower
// stability evidence means higher risk.
func TestDeriveTraitsRiskTracksInstability(t *testing.T) {
	steady := neutralIndexSet()
	steady.Stability = 85

	shaky := neutralIndexSet()
	shaky.Stability = 35

	assert.Less(t, DeriveTraits(steady, 1600).Risk, DeriveTraits(shaky, 1600).Risk)
}
