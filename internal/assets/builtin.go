package assets

import (
	"image"
	"image/color"

	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// artScale is how many pixels one art character covers in each direction.
const artScale = 2

var palette = map[rune]color.NRGBA{
	'G': {R: 83, G: 160, B: 70, A: 255},   // body
	'D': {R: 46, G: 104, B: 40, A: 255},   // body shade
	'E': {R: 250, G: 250, B: 250, A: 255}, // eye
	'B': {R: 140, G: 90, B: 50, A: 255},   // bird
	'W': {R: 190, G: 140, B: 90, A: 255},  // wing
	'Y': {R: 240, G: 200, B: 60, A: 255},  // beak
	'C': {R: 40, G: 150, B: 60, A: 255},   // cactus
	'K': {R: 25, G: 100, B: 40, A: 255},   // cactus shade
}

var walkingArt = [][]string{
	{
		".....GGGGG",
		".....GEGGG",
		".....GGGGG",
		".....GGG..",
		"G...GGGG..",
		"GG.GGGGGD.",
		"GGGGGGGG..",
		".GGGGGGG..",
		"..GGGGG...",
		"...G..GG..",
		"...GG.....",
	},
	{
		".....GGGGG",
		".....GEGGG",
		".....GGGGG",
		".....GGG..",
		"G...GGGG..",
		"GG.GGGGGD.",
		"GGGGGGGG..",
		".GGGGGGG..",
		"..GGGGG...",
		"...GG..G..",
		".......GG.",
	},
}

var duckingArt = [][]string{
	{
		"..........GGGG",
		"G...GGGGGGGEGG",
		"GGGGGGGGGGGGGG",
		".GGGGGGGGGD...",
		"..GGGGGGG.....",
		"...G..GG......",
		"...GG.........",
	},
	{
		"..........GGGG",
		"G...GGGGGGGEGG",
		"GGGGGGGGGGGGGG",
		".GGGGGGGGGD...",
		"..GGGGGGG.....",
		"...GG..G......",
		".......GG.....",
	},
}

var flyerArt = [][]string{
	{
		"...WW.....",
		"...WWW....",
		".BB.WWW...",
		"BEBBBBBBBB",
		"YYBBBBBB..",
		"..........",
	},
	{
		"..........",
		"..........",
		".BB.......",
		"BEBBBBBBBB",
		"YYBBWWWB..",
		"....WWW...",
	},
}

var cactiArt = [][]string{
	{
		"..C..",
		".CC..",
		".CC.C",
		"CCC.C",
		"CCCCC",
		".CCK.",
		".CC..",
		".CC..",
	},
	{
		"...C...",
		"..CCC..",
		"C.CCC..",
		"C.CCC.C",
		"CCCCC.C",
		"..CCCCC",
		"..CCK..",
		"..CCK..",
		"..CCK..",
	},
	{
		".CC.",
		"CCC.",
		"CCCC",
		"CCKC",
		".CK.",
		".CK.",
	},
}

// Builtin returns the bundled pixel-art pack sized for layout.
func Builtin(layout Layout) *Pack {
	pack := &Pack{
		Walking: mustSet(SetWalking, walkingArt),
		Ducking: mustSet(SetDucking, duckingArt),
		Flyer:   mustSet(SetFlyer, flyerArt),
	}
	for _, art := range cactiArt {
		pack.Cacti = append(pack.Cacti, sprite.NewFrame(renderArt(art)))
	}
	pack.Background = skyGradient(layout.Width, layout.Height)
	pack.Platform = groundTile(layout.TileWidth, layout.PlatformHeight)
	return pack
}

func mustSet(name string, frames [][]string) *sprite.FrameSet {
	imgs := make([]image.Image, len(frames))
	for i, art := range frames {
		imgs[i] = renderArt(art)
	}
	fs, err := sprite.NewFrameSet(name, imgs)
	if err != nil {
		panic(err) // bundled art is never empty
	}
	return fs
}

// renderArt paints character art into an image. '.' and unknown runes are
// transparent.
func renderArt(rows []string) *image.NRGBA {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	img := image.NewNRGBA(image.Rect(0, 0, w*artScale, len(rows)*artScale))
	for y, row := range rows {
		for x, ch := range row {
			c, ok := palette[ch]
			if !ok {
				continue
			}
			for dy := 0; dy < artScale; dy++ {
				for dx := 0; dx < artScale; dx++ {
					img.SetNRGBA(x*artScale+dx, y*artScale+dy, c)
				}
			}
		}
	}
	return img
}

func skyGradient(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		c := color.NRGBA{
			R: uint8(120 + 90*t),
			G: uint8(170 + 60*t),
			B: uint8(230 - 20*t),
			A: 255,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func groundTile(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	grass := color.NRGBA{R: 90, G: 170, B: 60, A: 255}
	dirt := color.NRGBA{R: 150, G: 105, B: 60, A: 255}
	pebble := color.NRGBA{R: 110, G: 75, B: 45, A: 255}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := dirt
			switch {
			case y < 3:
				c = grass
			case (x*7+y*13)%23 == 0:
				c = pebble
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
