// Package core implements the locked ability model: measurement, photo,
// video and pedigree evidence is normalized onto bounded indices, combined
// into seven traits and a single ability score, and classified into a
// bilingual narrative. The market estimator runs on a disjoint input set.
//
// Everything here is pure and deterministic: same inputs, bit-for-bit same
// outputs. No error ever escapes the pipeline; missing or unreadable
// evidence degrades to neutral defaults with a diagnostic note.
package core

import (
	"math"

	"github.com/sawamura/equisight/schema"
)

// PhotoExtractor derives a photo index from a side-profile image file.
type PhotoExtractor interface {
	ExtractPhotoFeature(path string) schema.PhotoFeature
}

// VideoExtractor derives motion indices from a gait/canter video file.
type VideoExtractor interface {
	ExtractVideoFeature(path string) schema.VideoFeature
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// sigmoid is numerically stable enough for the trait differential range.
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// roundTo rounds x to the given number of decimal places, half away from
// zero, matching the rounding the locked formula was calibrated with.
func roundTo(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
