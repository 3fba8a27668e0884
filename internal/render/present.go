package render

import (
	"image"
	"image/color"
	"math"
	"unicode/utf8"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// HalfBlock is the upper half block; its foreground is the top pixel.
const HalfBlock = '▀'

// Viewport is where the world lands in the half-block pixel grid of a
// terminal: cols wide and 2*rows tall.
type Viewport struct {
	X, Y  int // Top-left in grid pixels
	W, H  int
	Scale float64 // Grid pixels per world pixel
}

// Fit scales a world of the given size into cols x rows cells, keeping the
// aspect ratio and centering the result.
func Fit(world image.Rectangle, cols, rows int) Viewport {
	gw, gh := cols, rows*2
	ww, wh := world.Dx(), world.Dy()
	if ww <= 0 || wh <= 0 || gw <= 0 || gh <= 0 {
		return Viewport{}
	}
	scale := math.Min(float64(gw)/float64(ww), float64(gh)/float64(wh))
	w := int(math.Round(float64(ww) * scale))
	h := int(math.Round(float64(wh) * scale))
	return Viewport{
		X:     (gw - w) / 2,
		Y:     (gh - h) / 2,
		W:     w,
		H:     h,
		Scale: scale,
	}
}

// Cell maps a world point to a terminal cell.
func (v Viewport) Cell(x, y float64) (int, int) {
	gx := v.X + int(x*v.Scale)
	gy := v.Y + int(y*v.Scale)
	return gx, gy / 2
}

// Presenter downsamples canvas frames into a screen. It keeps its scratch
// buffer between frames.
type Presenter struct {
	scaler draw.Scaler
	grid   *image.RGBA
}

// NewPresenter creates a presenter using bilinear sampling.
func NewPresenter() *Presenter {
	return &Presenter{scaler: draw.ApproxBiLinear}
}

// NewPixelPresenter creates a presenter using nearest-neighbour sampling,
// which keeps hard pixel edges when the terminal is close to world size.
func NewPixelPresenter() *Presenter {
	return &Presenter{scaler: draw.NearestNeighbor}
}

// Present draws the canvas into dst, replacing its contents.
func (p *Presenter) Present(c *Canvas, dst *core.Screen) {
	cols, rows := dst.Width(), dst.Height()
	dst.Clear()

	vp := Fit(c.Bounds(), cols, rows)
	if vp.W == 0 || vp.H == 0 {
		return
	}

	gb := image.Rect(0, 0, cols, rows*2)
	if p.grid == nil || p.grid.Bounds() != gb {
		p.grid = image.NewRGBA(gb)
	} else {
		clear(p.grid.Pix)
	}
	target := image.Rect(vp.X, vp.Y, vp.X+vp.W, vp.Y+vp.H)
	p.scaler.Scale(p.grid, target, c.Image(), c.Bounds(), draw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := p.grid.RGBAAt(x, 2*y)
			bottom := p.grid.RGBAAt(x, 2*y+1)
			if top.A == 0 && bottom.A == 0 {
				continue
			}
			dst.SetCell(x, y, core.Cell{
				Rune: HalfBlock,
				FG:   cellColor(top),
				BG:   cellColor(bottom),
			})
		}
	}

	for _, o := range c.Overlays() {
		cx, cy := vp.Cell(o.CX, o.CY)
		x := core.Max(cx-utf8.RuneCountInString(o.Text)/2, 0)
		dst.DrawText(x, cy, o.Text, ToColor(o.Color))
	}
}

func cellColor(c color.RGBA) core.Color {
	if c.A == 0 {
		return core.ColorDefault
	}
	return core.RGB(c.R, c.G, c.B)
}

// ToColor converts an image color to a screen color, dropping alpha.
func ToColor(c color.Color) core.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return core.ColorDefault
	}
	return core.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
