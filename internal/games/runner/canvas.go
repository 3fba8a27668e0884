package runner

import (
	"image"
	"image/color"
)

// Canvas receives draw commands in world pixels. The session never reads
// pixels back from it; collision uses the sprites' own masks.
type Canvas interface {
	// Fill paints the whole canvas.
	Fill(c color.Color)
	// FillRect paints a rectangle.
	FillRect(x, y, w, h float64, c color.Color)
	// Blit draws img with its top-left corner at (x, y), honoring alpha.
	Blit(img image.Image, x, y float64)
	// Text draws a line of text centered on (cx, cy).
	Text(cx, cy float64, text string, c color.Color)
}

// Colors used by the session when drawing.
var (
	ColorBackdrop = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorPlatform = color.RGBA{B: 200, A: 255}
	ColorScore    = color.RGBA{G: 200, A: 255}
	ColorGameOver = color.RGBA{R: 200, A: 255}
	ColorBlack    = color.RGBA{A: 255}
	ColorWhite    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
