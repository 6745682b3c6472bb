package media

import (
	"errors"
	"image"
	"os"
	"time"

	"github.com/gen2brain/mpeg"
)

// mpegSource is the primary frame source. It decodes MPEG-1 program
// streams natively and seeks to evenly spaced timestamps, so it touches
// only the frames it needs. Containers it cannot parse fail fast and the
// caller falls through to the sequential source.
type mpegSource struct{}

func (mpegSource) sample(path string) ([]*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := mpeg.New(f)
	if err != nil {
		return nil, err
	}
	dec.SetAudioEnabled(false)

	dur := dec.Duration().Seconds()
	if dur <= 0 {
		return nil, errors.New("mpeg: unknown duration, cannot seek")
	}

	total := int(dur * dec.Framerate())
	n := sampleTarget(total)

	frames := make([]*image.Gray, 0, n)
	for i := range n {
		// Offset the grid by half a step so samples sit mid-segment.
		ts := dur * (float64(i) + 0.5) / float64(n)
		frame := dec.SeekFrame(time.Duration(ts*float64(time.Second)), true)
		if frame == nil {
			continue
		}
		frames = append(frames, scaleGray(frame.RGBA()))
	}
	if len(frames) == 0 {
		return nil, errors.New("mpeg: no decodable frames")
	}
	return frames, nil
}
