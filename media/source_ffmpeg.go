package media

import (
	"errors"
	"image"

	vidio "github.com/AlexEidt/Vidio"
)

// ffmpegSource is the sequential fallback. It pipes frames through an
// ffmpeg subprocess, so it reads every container ffmpeg knows, but it
// cannot seek: frames stream in order and are buffered up to bufferCap,
// then subsampled to the target grid. Frames are downscaled to gray on
// read so the buffer stays small.
type ffmpegSource struct{}

func (ffmpegSource) sample(path string) ([]*image.Gray, error) {
	video, err := vidio.NewVideo(path)
	if err != nil {
		return nil, err
	}
	defer video.Close()

	w, h := video.Width(), video.Height()
	if w <= 0 || h <= 0 {
		return nil, errors.New("ffmpeg: empty video stream")
	}

	// Vidio allocates its frame buffer lazily on the first Read, so
	// install one up front; otherwise the wrapper below would keep a nil
	// Pix slice.
	buf := make([]byte, w*h*4)
	if err := video.SetFrameBuffer(buf); err != nil {
		return nil, err
	}
	rgba := &image.RGBA{
		Pix:    buf,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}

	var buffered []*image.Gray
	for video.Read() && len(buffered) < bufferCap {
		buffered = append(buffered, scaleGray(rgba))
	}
	if len(buffered) == 0 {
		return nil, errors.New("ffmpeg: no decodable frames")
	}

	n := sampleTarget(video.Frames())
	idxs := evenIndexes(len(buffered), n)
	frames := make([]*image.Gray, 0, len(idxs))
	for _, i := range idxs {
		frames = append(frames, buffered[i])
	}
	return frames, nil
}
