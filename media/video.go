package media

import (
	"image"
	"math"
	"os"

	"github.com/sawamura/equisight/schema"
)

// Sampling limits. The fallback decoder buffers at most bufferCap frames
// to bound memory on long clips.
const (
	sampleMin     = 6
	sampleMax     = 24
	sampleDefault = 12
	bufferCap     = 240
)

// Video notes.
const (
	noteVideoReadFail  = "動画の読込に失敗したため平均値で補完"
	noteVideoNoFrames  = "動画から有効フレームを取得できず平均値で補完"
	noteVideoApplied   = "動画（歩様/キャンター）から推進量・瞬発・安定性を算出"
	noteVideoFallback  = "動画（歩様/キャンター）から推進量・瞬発・安定性を算出（代替デコーダ）"
)

// frameSource yields frames sampled evenly across a video stream, already
// downscaled to the analysis resolution. The two implementations share
// this contract so the derivation code never knows which decoder ran.
type frameSource interface {
	sample(path string) ([]*image.Gray, error)
}

// sampleTarget picks how many frames to sample: proportional to the total
// frame count when known, defaulting to 12 when unknown, always within
// [6,24].
func sampleTarget(totalFrames int) int {
	if totalFrames <= 0 {
		return sampleDefault
	}
	t := totalFrames / 10
	if t < sampleMin {
		return sampleMin
	}
	if t > sampleMax {
		return sampleMax
	}
	return t
}

// evenIndexes returns n indexes spread evenly over [0, total).
func evenIndexes(total, n int) []int {
	if total <= 0 || n <= 0 {
		return nil
	}
	if n > total {
		n = total
	}
	idxs := make([]int, n)
	if n == 1 {
		return idxs
	}
	for i := range n {
		idxs[i] = int(float64(i) * float64(total-1) / float64(n-1))
	}
	return idxs
}

// pairDiffs computes the mean absolute grayscale difference for each
// consecutive sampled pair.
func pairDiffs(frames []*image.Gray) []float64 {
	if len(frames) < 2 {
		return nil
	}
	diffs := make([]float64, 0, len(frames)-1)
	for i := 1; i < len(frames); i++ {
		diffs = append(diffs, meanAbsDiff(frames[i-1], frames[i]))
	}
	return diffs
}

// ExtractVideoFeature derives motion, speed, acceleration and stability
// indices from frame-to-frame differencing of a sampled video.
//
// The decode chain is a capability probe: if the primary (seeking) source
// cannot open the container or produces fewer than 2 usable difference
// samples, the sequential fallback runs against the same contract. If that
// also fails, the neutral pack is returned with a failure note; like every
// other evidence source, extraction never raises.
func (e *Extractor) ExtractVideoFeature(path string) schema.VideoFeature {
	if _, err := os.Stat(path); err != nil {
		return packVideo(50, 50, 0, noteVideoReadFail)
	}

	frames, err := e.primary.sample(path)
	diffs := pairDiffs(frames)
	note := noteVideoApplied

	if err != nil || len(diffs) < 2 {
		frames, err = e.fallback.sample(path)
		if err != nil {
			return packVideo(50, 50, 0, noteVideoReadFail)
		}
		diffs = pairDiffs(frames)
		if len(diffs) == 0 {
			return packVideo(50, 50, 0, noteVideoNoFrames)
		}
		note = noteVideoFallback
	}

	m, v := meanAndVariance(diffs)

	// Normalize to 0-100 with soft caps
	motion := math.Max(schema.IndexMin, math.Min(schema.IndexMax, (m/10.0)*100.0))
	speed := math.Max(schema.IndexMin, math.Min(schema.IndexMax, (m/10.0)*85.0+(v/30.0)*15.0))

	return packVideo(motion, speed, v, note)
}

// packVideo derives the volatility-based scores and assembles the feature.
// Volatility is the spread of the per-pair differences: a punchier gait
// raises it, but so does an unsteady one, so it feeds acceleration and
// stability in opposite directions.
func packVideo(motion, speed, variance float64, note string) schema.VideoFeature {
	volatility := math.Max(0.0, math.Min(100.0, (variance/30.0)*100.0))
	accel := math.Max(schema.IndexMin, math.Min(schema.IndexMax, 40.0+0.55*volatility))
	stability := math.Max(schema.IndexMin, math.Min(schema.IndexMax, 90.0-0.70*volatility))

	return schema.VideoFeature{
		Motion:     math.Round(math.Max(0.0, math.Min(100.0, motion))),
		Speed:      math.Round(math.Max(0.0, math.Min(100.0, speed))),
		Accel:      math.Round(accel),
		Stability:  math.Round(stability),
		Volatility: math.Round(volatility),
		Note:       note,
	}
}
