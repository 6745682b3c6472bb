package media

import (
	"image"
	"math"
	"os"

	// Side photos arrive as consumer camera output.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/sawamura/equisight/schema"
)

// Photo scoring constants. Sharpness saturates at 200 Laplacian variance
// units; edge density is scored against a target fraction (too low means
// blurry/underexposed, too high means noisy); side photos are typically
// wide, so the aspect score peaks near 1.6.
const (
	sharpnessScale  = 200.0
	edgeThreshold   = 60 // gradient magnitude that flags a pixel as edge
	edgeTarget      = 0.08
	edgeFalloff     = 600.0
	edgePenaltyCap  = 60.0
	aspectTarget    = 1.6
	aspectFalloff   = 35.0
	aspectPenalty   = 50.0
)

// Photo blend weights (locked).
const (
	wSharp  = 0.45
	wEdge   = 0.35
	wAspect = 0.20
)

// Photo notes.
const (
	notePhotoReadFail = "側面写真の読込に失敗したため平均値で補完"
	notePhotoApplied  = "側面写真の鮮明度と輪郭情報から馬体補正を適用"
)

// ExtractPhotoFeature computes a photo score in [35,90] from the side
// profile image: sharpness (Laplacian variance), edge density and aspect
// ratio, blended with fixed weights. Every failure mode (missing file,
// unreadable bytes) yields the neutral 50 with a failure note; no error
// ever crosses this boundary.
func (e *Extractor) ExtractPhotoFeature(path string) schema.PhotoFeature {
	f, err := os.Open(path)
	if err != nil {
		return schema.PhotoFeature{Score: schema.NeutralIndex, Note: notePhotoReadFail}
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return schema.PhotoFeature{Score: schema.NeutralIndex, Note: notePhotoReadFail}
	}

	gray := toGray(img)
	w := gray.Rect.Dx()
	h := gray.Rect.Dy()
	if w < 3 || h < 3 {
		return schema.PhotoFeature{Score: schema.NeutralIndex, Note: notePhotoReadFail}
	}

	sharpScore := math.Min(100.0, math.Max(0.0, laplacianVariance(gray)/sharpnessScale*100.0))

	density := edgeDensity(gray)
	edgeScore := 100.0 - math.Min(edgePenaltyCap, math.Abs(density-edgeTarget)*edgeFalloff)

	ar := float64(w) / math.Max(1.0, float64(h))
	aspectScore := 100.0 - math.Min(aspectPenalty, math.Abs(ar-aspectTarget)*aspectFalloff)

	score := wSharp*sharpScore + wEdge*edgeScore + wAspect*aspectScore
	score = math.Max(schema.IndexMin, math.Min(schema.IndexMax, score))

	return schema.PhotoFeature{Score: math.Round(score), Note: notePhotoApplied}
}

// laplacianVariance measures focus as the variance of the 4-neighbor
// Laplacian response over the interior pixels.
func laplacianVariance(g *image.Gray) float64 {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	responses := make([]float64, 0, (w-2)*(h-2))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := int(g.Pix[y*g.Stride+x])
			up := int(g.Pix[(y-1)*g.Stride+x])
			down := int(g.Pix[(y+1)*g.Stride+x])
			left := int(g.Pix[y*g.Stride+x-1])
			right := int(g.Pix[y*g.Stride+x+1])
			responses = append(responses, float64(up+down+left+right-4*c))
		}
	}
	_, variance := meanAndVariance(responses)
	return variance
}

// edgeDensity returns the fraction of pixels whose central-difference
// gradient magnitude exceeds the fixed threshold.
func edgeDensity(g *image.Gray) float64 {
	w, h := g.Rect.Dx(), g.Rect.Dy()
	var flagged int
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := int(g.Pix[y*g.Stride+x+1]) - int(g.Pix[y*g.Stride+x-1])
			gy := int(g.Pix[(y+1)*g.Stride+x]) - int(g.Pix[(y-1)*g.Stride+x])
			if gx < 0 {
				gx = -gx
			}
			if gy < 0 {
				gy = -gy
			}
			if gx+gy >= edgeThreshold {
				flagged++
			}
		}
	}
	return float64(flagged) / float64(w*h)
}
