package sprite

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyFrameSet is returned when a frame set would contain no frames.
var ErrEmptyFrameSet = errors.New("sprite: frame set is empty")

// Frame is one raster image together with its opacity mask.
// The mask is derived once when the frame is created.
type Frame struct {
	Image image.Image
	Mask  *Mask
}

// NewFrame wraps an image and computes its mask.
func NewFrame(img image.Image) Frame {
	return Frame{Image: img, Mask: MaskFromImage(img)}
}

// Width returns the frame width in pixels.
func (f Frame) Width() int { return f.Image.Bounds().Dx() }

// Height returns the frame height in pixels.
func (f Frame) Height() int { return f.Image.Bounds().Dy() }

// FrameSet is an ordered, non-empty animation cycle. It is immutable
// after creation and compared by identity.
type FrameSet struct {
	name   string
	frames []Frame
}

// NewFrameSet builds a frame set from decoded images.
func NewFrameSet(name string, images []image.Image) (*FrameSet, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFrameSet, name)
	}
	frames := make([]Frame, len(images))
	for i, img := range images {
		frames[i] = NewFrame(img)
	}
	return &FrameSet{name: name, frames: frames}, nil
}

// Name returns the pose name, e.g. "walking".
func (fs *FrameSet) Name() string { return fs.name }

// Len returns the number of frames.
func (fs *FrameSet) Len() int { return len(fs.frames) }

// Frame returns frame i modulo the set length.
func (fs *FrameSet) Frame(i int) Frame {
	n := len(fs.frames)
	return fs.frames[((i%n)+n)%n]
}
