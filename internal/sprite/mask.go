// Package sprite provides frame sets, per-pixel opacity masks and the
// timer-driven animated sprite shared by every entity in the runner.
package sprite

import (
	"image"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// AlphaThreshold is the 8-bit alpha a pixel must exceed to count as opaque.
const AlphaThreshold = 127

// Mask is a per-pixel opacity bitmap. Bit (x, y) is set when the source
// pixel is opaque.
type Mask struct {
	w, h int
	bits []uint64 // row-major, stride words per row
	word int      // stride in words
}

// NewMask creates an empty mask of the given size.
func NewMask(w, h int) *Mask {
	w = core.Max(w, 0)
	h = core.Max(h, 0)
	stride := (w + 63) / 64
	return &Mask{
		w:    w,
		h:    h,
		word: stride,
		bits: make([]uint64, stride*h),
	}
}

// MaskFromImage derives an opacity mask from an image's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() core.Rect {
	return core.NewRect(0, 0, m.w, m.h)
}

// Set marks pixel (x, y) opaque. Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.word+x/64] |= 1 << uint(x%64)
}

// At reports whether pixel (x, y) is opaque.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.word+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.At(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any opaque pixel of m coincides with an opaque
// pixel of other when other's origin sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	_, _, ok := m.Overlap(other, dx, dy)
	return ok
}

// Overlap returns the first overlapping pixel in m's coordinates, scanning
// rows top to bottom.
func (m *Mask) Overlap(other *Mask, dx, dy int) (int, int, bool) {
	if m == nil || other == nil {
		return 0, 0, false
	}
	area := m.Bounds().Intersect(other.Bounds().Translate(dx, dy))
	if area.Empty() {
		return 0, 0, false
	}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
