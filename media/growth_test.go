package media

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthPreview(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "yearling.png", noisyImage(200, 120, 11))

	out, err := GrowthPreview(src, "鹿毛", filepath.Join(dir, "generated"))
	require.NoError(t, err)
	assert.Equal(t, "pred_3yo_yearling.png", filepath.Base(out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)

	// The grown image is cropped back to the source frame.
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}

func TestGrowthPreviewDefaultsToPhotoDir(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "yearling.png", noisyImage(80, 50, 7))

	out, err := GrowthPreview(src, "鹿毛", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pred_3yo_yearling.png"), out)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestGrowthPreviewMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := GrowthPreview(filepath.Join(dir, "absent.png"), "栗毛", dir)
	assert.Error(t, err)
}

func TestCoatSaturation(t *testing.T) {
	tests := []struct {
		coat string
		want float64
	}{
		{coat: "栗毛", want: 1.10},
		{coat: "黒鹿毛", want: 1.04},
		{coat: "芦毛", want: 0.85},
		{coat: " 白毛 ", want: 0.85},
		{coat: "未登録", want: 1.0},
		{coat: "", want: 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coatSaturation(tt.coat), tt.coat)
	}
}
