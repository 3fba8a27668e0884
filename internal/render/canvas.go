// Package render turns the runner's raster frame into terminal cells.
//
// Frames are composited at world resolution into an RGBA canvas, then
// downsampled so each terminal cell shows two vertical pixels through the
// upper half block: foreground is the top pixel, background the bottom.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Overlay is a line of text anchored at a world point. Text is not
// rasterized; it is written straight into cells so it stays legible at any
// terminal size.
type Overlay struct {
	CX, CY float64
	Text   string
	Color  color.Color
}

// Canvas is an RGBA raster at world resolution.
type Canvas struct {
	img      *image.RGBA
	overlays []Overlay
}

// NewCanvas creates a canvas of w x h pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Begin starts a new frame by dropping the previous frame's overlays.
// Pixels are left as they are; the first draw call overwrites them.
func (c *Canvas) Begin() {
	c.overlays = c.overlays[:0]
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillRect paints a rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// Blit draws img with its top-left corner at (x, y). Positions truncate
// toward zero, the same way collision offsets do.
func (c *Canvas) Blit(img image.Image, x, y float64) {
	b := img.Bounds()
	at := image.Pt(int(x), int(y))
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(c.img, r, img, b.Min, draw.Over)
}

// Text records a centered overlay.
func (c *Canvas) Text(cx, cy float64, text string, col color.Color) {
	c.overlays = append(c.overlays, Overlay{CX: cx, CY: cy, Text: text, Color: col})
}

// Image returns the raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Overlays returns the text recorded since Begin.
func (c *Canvas) Overlays() []Overlay {
	return c.overlays
}

// Bounds returns the raster size.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}
