package core

import (
	"math"
	"strings"

	"github.com/sawamura/equisight/schema"
)

// Locked ability coefficients. Changing any of these requires a new
// schema.AlgoVersion.
const (
	turfinessK  = 0.085
	lambdaDur   = 0.10
	rhoRisk     = 0.18
	alphaFloor  = 0.30
	alphaCeil   = 0.90
	starFilled  = "★"
	starEmpty   = "☆"
	starsTotal  = 5
)

// AbilityFromTraits runs the locked ability formula:
//
//	turfiness = sigmoid(k*(Speed-Power))
//	Speed*    = 0.75*Speed + 0.25*Acceleration
//	Risk*     = 0.70*Risk  + 0.30*(100-Stability)
//	Ability   = α*Speed* + (1-α)*Stamina + λ*Durability - ρ*Risk*
//
// where α blends toward Speed* for sprints and toward Stamina for stayers.
func AbilityFromTraits(t schema.TraitVector, distanceM float64) schema.AbilityResult {
	turfiness := sigmoid(turfinessK * (t.Speed - t.Power))

	_, shortness := DistanceBucket(distanceM)
	alpha := clamp(0.35+0.45*shortness+0.10*(turfiness-0.5)*2.0, alphaFloor, alphaCeil)

	speedStar := 0.75*t.Speed + 0.25*t.Acceleration
	riskStar := 0.70*t.Risk + 0.30*(100.0-t.Stability)

	ability := alpha*speedStar + (1.0-alpha)*t.Stamina + lambdaDur*t.Durability - rhoRisk*riskStar
	ability = clamp(ability, schema.AbilityMin, schema.AbilityMax)

	return schema.AbilityResult{
		Ability:   roundTo(ability, 2),
		Alpha:     roundTo(alpha, 3),
		Turfiness: roundTo(turfiness, 3),
		SpeedStar: roundTo(speedStar, 2),
		RiskStar:  roundTo(riskStar, 2),
	}
}

// RankFromAbility maps the ability score onto the ordinal rank.
func RankFromAbility(ability float64) schema.Rank {
	switch {
	case ability >= 82:
		return schema.RankA
	case ability >= 72:
		return schema.RankB
	case ability >= 62:
		return schema.RankC
	default:
		return schema.RankD
	}
}

// StarsFromAbility maps the ability score onto a 1-5 star count and the
// rendered glyph string (filled + empty, always 5 glyphs).
func StarsFromAbility(ability float64) (int, string) {
	var n int
	switch {
	case ability >= 85:
		n = 5
	case ability >= 78:
		n = 4
	case ability >= 70:
		n = 3
	case ability >= 62:
		n = 2
	default:
		n = 1
	}
	return n, strings.Repeat(starFilled, n) + strings.Repeat(starEmpty, starsTotal-n)
}

// TotalFromAbility is the integer headline score shown next to the rank.
func TotalFromAbility(ability float64) int {
	return int(math.Round(ability))
}
