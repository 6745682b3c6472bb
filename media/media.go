// Package media extracts numeric signal from unreliable photo and video
// files. Both extractors share the same boundary contract: they never
// return an error; a missing or undecodable file degrades to the neutral
// score with a diagnostic note, so the scoring pipeline upstream always
// receives a fully populated feature.
package media

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Analysis resolution for frame differencing. Frames are downscaled to
// this size before any pixel work to bound CPU and memory on oversized
// media.
const (
	diffWidth  = 320
	diffHeight = 180
)

// Extractor implements the photo and video feature extraction entry
// points. The zero value is not usable; construct with NewExtractor.
type Extractor struct {
	primary  frameSource
	fallback frameSource
}

// NewExtractor returns an Extractor with the default decode chain:
// the seeking decoder first, the sequential ffmpeg pipe as fallback.
func NewExtractor() *Extractor {
	return &Extractor{primary: mpegSource{}, fallback: ffmpegSource{}}
}

// scaleGray downscales any frame to the fixed analysis resolution as
// 8-bit grayscale. ApproxBiLinear is deterministic, which the pipeline
// depends on.
func scaleGray(src image.Image) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, diffWidth, diffHeight))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// toGray converts an image to 8-bit grayscale at its native resolution.
func toGray(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
	return dst
}

// meanAbsDiff returns the mean absolute pixel difference between two
// equally sized grayscale frames.
func meanAbsDiff(a, b *image.Gray) float64 {
	n := len(a.Pix)
	if n == 0 || n != len(b.Pix) {
		return 0
	}
	var sum int64
	for i := range n {
		d := int64(a.Pix[i]) - int64(b.Pix[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return float64(sum) / float64(n)
}

// meanAndVariance returns the mean and the population variance of vs.
func meanAndVariance(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	mean := sum / float64(len(vs))
	var sq float64
	for _, v := range vs {
		d := v - mean
		sq += d * d
	}
	return mean, sq / float64(len(vs))
}
