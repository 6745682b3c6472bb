package media

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource replays canned frames or a canned error.
type stubSource struct {
	frames []*image.Gray
	err    error
	calls  int
}

func (s *stubSource) sample(string) ([]*image.Gray, error) {
	s.calls++
	return s.frames, s.err
}

// uniformFrame is a full-analysis-size frame with every pixel at tone.
func uniformFrame(tone uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, diffWidth, diffHeight))
	for i := range g.Pix {
		g.Pix[i] = tone
	}
	return g
}

// touchFile creates an empty file so the stat precheck passes.
func touchFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestExtractVideoFeatureMissingFile(t *testing.T) {
	e := NewExtractor()
	feat := e.ExtractVideoFeature(filepath.Join(t.TempDir(), "nope.mp4"))
	assert.Equal(t, 50.0, feat.Motion)
	assert.Equal(t, 50.0, feat.Speed)
	assert.Equal(t, 0.0, feat.Volatility)
	assert.Equal(t, noteVideoReadFail, feat.Note)
}

func TestExtractVideoFeaturePrimaryPath(t *testing.T) {
	// Alternating tones: every pair diff is exactly 20, variance 0.
	primary := &stubSource{frames: []*image.Gray{
		uniformFrame(100), uniformFrame(120), uniformFrame(100), uniformFrame(120),
	}}
	fallback := &stubSource{err: errors.New("unused")}
	e := &Extractor{primary: primary, fallback: fallback}

	feat := e.ExtractVideoFeature(touchFile(t, "walk.mpg"))

	// m=20, v=0: motion=min(90,200)=90, speed=min(90,170)=90,
	// vol=0, accel=40, stability=90.
	assert.Equal(t, 90.0, feat.Motion)
	assert.Equal(t, 90.0, feat.Speed)
	assert.Equal(t, 0.0, feat.Volatility)
	assert.Equal(t, 40.0, feat.Accel)
	assert.Equal(t, 90.0, feat.Stability)
	assert.Equal(t, noteVideoApplied, feat.Note)
	assert.Equal(t, 0, fallback.calls, "fallback never runs when primary delivers")
}

func TestExtractVideoFeatureFallbackOnPrimaryError(t *testing.T) {
	primary := &stubSource{err: errors.New("unsupported container")}
	fallback := &stubSource{frames: []*image.Gray{
		uniformFrame(50), uniformFrame(53), uniformFrame(50), uniformFrame(53),
	}}
	e := &Extractor{primary: primary, fallback: fallback}

	feat := e.ExtractVideoFeature(touchFile(t, "walk.mp4"))

	// m=3: motion=clamp(30,35,90)=35, speed=clamp(25.5,35,90)=35.
	assert.Equal(t, 35.0, feat.Motion)
	assert.Equal(t, 35.0, feat.Speed)
	assert.Equal(t, noteVideoFallback, feat.Note)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestExtractVideoFeatureFallbackOnTooFewDiffs(t *testing.T) {
	// Two frames give one diff; the caller needs at least two.
	primary := &stubSource{frames: []*image.Gray{uniformFrame(10), uniformFrame(20)}}
	fallback := &stubSource{frames: []*image.Gray{
		uniformFrame(10), uniformFrame(20), uniformFrame(10),
	}}
	e := &Extractor{primary: primary, fallback: fallback}

	feat := e.ExtractVideoFeature(touchFile(t, "short.mpg"))
	assert.Equal(t, noteVideoFallback, feat.Note)
	assert.Equal(t, 1, fallback.calls)
}

func TestExtractVideoFeatureNeutralWhenBothFail(t *testing.T) {
	e := &Extractor{
		primary:  &stubSource{err: errors.New("bad header")},
		fallback: &stubSource{err: errors.New("ffmpeg unavailable")},
	}

	feat := e.ExtractVideoFeature(touchFile(t, "broken.avi"))
	assert.Equal(t, 50.0, feat.Motion)
	assert.Equal(t, 50.0, feat.Speed)
	assert.Equal(t, 40.0, feat.Accel)
	assert.Equal(t, 90.0, feat.Stability)
	assert.Equal(t, noteVideoReadFail, feat.Note)
}

func TestExtractVideoFeatureNoFramesNote(t *testing.T) {
	e := &Extractor{
		primary:  &stubSource{err: errors.New("bad header")},
		fallback: &stubSource{frames: []*image.Gray{uniformFrame(42)}},
	}

	feat := e.ExtractVideoFeature(touchFile(t, "oneframe.mov"))
	assert.Equal(t, noteVideoNoFrames, feat.Note)
}

func TestExtractVideoFeatureUndecodableBytes(t *testing.T) {
	// Real extractor end to end against bytes neither decoder accepts.
	path := filepath.Join(t.TempDir(), "garbage.mpg")
	require.NoError(t, os.WriteFile(path, []byte("this is not a video"), 0o644))

	e := NewExtractor()
	feat := e.ExtractVideoFeature(path)
	assert.Equal(t, 50.0, feat.Motion)
	assert.Equal(t, noteVideoReadFail, feat.Note)
}

func TestSampleTarget(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  int
	}{
		{name: "unknown count", total: 0, want: 12},
		{name: "negative count", total: -5, want: 12},
		{name: "short clip floors at 6", total: 30, want: 6},
		{name: "mid clip scales", total: 150, want: 15},
		{name: "long clip caps at 24", total: 5000, want: 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sampleTarget(tt.total))
		})
	}
}

func TestEvenIndexes(t *testing.T) {
	assert.Nil(t, evenIndexes(0, 5))
	assert.Equal(t, []int{0}, evenIndexes(10, 1))
	assert.Equal(t, []int{0, 4, 9}, evenIndexes(10, 3))
	assert.Equal(t, []int{0, 1, 2}, evenIndexes(3, 8), "never exceeds available frames")
}

func TestPackVideoVolatilitySplit(t *testing.T) {
	// High variance raises acceleration and drags stability down.
	calm := packVideo(60, 60, 0, noteVideoApplied)
	wild := packVideo(60, 60, 30, noteVideoApplied)

	assert.Equal(t, 0.0, calm.Volatility)
	assert.Equal(t, 100.0, wild.Volatility)
	assert.Greater(t, wild.Accel, calm.Accel)
	assert.Less(t, wild.Stability, calm.Stability)
	// Caps: accel tops at 90, stability floors at 35.
	assert.Equal(t, 90.0, wild.Accel)
	assert.Equal(t, 35.0, wild.Stability)
}
