package media

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Growth transform factors. The preview must keep the same horse
// recognizable, so the geometry change is mild: a two-year-old mostly
// lengthens through the barrel with a little extra wither height.
const (
	growWidthFactor  = 1.06
	growHeightFactor = 1.02
	growContrast     = 1.02
	growSaturation   = 1.02
	growSharpness    = 1.05
)

// coatSaturation maps a coat color to the saturation nudge that keeps the
// preview's color temperature consistent with the stated coat. Unlisted
// coats get no extra nudge.
func coatSaturation(coat string) float64 {
	switch strings.TrimSpace(coat) {
	case "栗毛", "栃栗毛", "パロミノ":
		return 1.10
	case "鹿毛", "黒鹿毛", "青鹿毛", "青毛", "バックスキン":
		return 1.04
	case "芦毛", "白毛":
		return 0.85
	}
	return 1.0
}

// GrowthPreview renders a "three-year-old body" projection of a side
// photo: a mild horizontal/vertical stretch center-cropped back to the
// original frame, with light contrast, saturation and sharpness touch-ups
// tinted toward the stated coat. The result is written as a PNG named
// pred_3yo_<stem>.png inside outDir, defaulting to the photo's own
// directory, and the written path is returned.
func GrowthPreview(photoPath, coat, outDir string) (string, error) {
	if outDir == "" {
		outDir = filepath.Dir(photoPath)
	}
	f, err := os.Open(photoPath)
	if err != nil {
		return "", err
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return "", err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	newW := int(float64(w) * growWidthFactor)
	newH := int(float64(h) * growHeightFactor)

	grown := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(grown, grown.Bounds(), src, b, xdraw.Src, nil)

	// Center-crop back to the source frame so the framing reads the same.
	left := max(0, (newW-w)/2)
	top := max(0, (newH-h)/2)
	cropped := grown.SubImage(image.Rect(left, top, left+w, top+h)).(*image.RGBA)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(out, image.Point{}, cropped, cropped.Bounds(), xdraw.Src, nil)

	adjustContrast(out, growContrast)
	adjustSaturation(out, growSaturation)
	if sat := coatSaturation(coat); sat != 1.0 {
		adjustSaturation(out, sat)
	}
	sharpened := sharpen(out, growSharpness)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	stem := strings.TrimSuffix(filepath.Base(photoPath), filepath.Ext(photoPath))
	dst := filepath.Join(outDir, fmt.Sprintf("pred_3yo_%s.png", stem))
	g, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer g.Close()
	if err := png.Encode(g, sharpened); err != nil {
		return "", err
	}
	return dst, nil
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// adjustContrast scales pixel values away from the image's mean luminance.
func adjustContrast(img *image.RGBA, factor float64) {
	b := img.Bounds()
	var sum, n float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, bl := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
			sum += 0.299*r + 0.587*g + 0.114*bl
			n++
		}
	}
	if n == 0 {
		return
	}
	mean := sum / n
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			for c := range 3 {
				v := float64(img.Pix[i+c])
				img.Pix[i+c] = clampByte(mean + (v-mean)*factor)
			}
		}
	}
}

// adjustSaturation blends each pixel toward (factor<1) or away from
// (factor>1) its own luminance.
func adjustSaturation(img *image.RGBA, factor float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, bl := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])
			lum := 0.299*r + 0.587*g + 0.114*bl
			img.Pix[i] = clampByte(lum + (r-lum)*factor)
			img.Pix[i+1] = clampByte(lum + (g-lum)*factor)
			img.Pix[i+2] = clampByte(lum + (bl-lum)*factor)
		}
	}
}

// sharpen blends the image away from a 3x3 box blur of itself.
func sharpen(img *image.RGBA, factor float64) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	copy(out.Pix, img.Pix)
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			i := img.PixOffset(x, y)
			for c := range 3 {
				var blur float64
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						blur += float64(img.Pix[img.PixOffset(x+dx, y+dy)+c])
					}
				}
				blur /= 9
				v := float64(img.Pix[i+c])
				out.Pix[i+c] = clampByte(blur + (v-blur)*factor)
			}
		}
	}
	return out
}
