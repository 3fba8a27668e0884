package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-runner/internal/sprite"
)

// Directory names under an asset root.
const (
	PlayerDir     = "player_sprites"
	EnemyDir      = "enemy_sprites"
	BackgroundDir = "background_sprites"
)

// Frame set names.
const (
	SetWalking = "walking"
	SetDucking = "ducking"
	SetFlyer   = "flyer"
)

// LoadDir loads a pack from root. Every directory and image is required to
// be readable; the error names the path that failed.
func LoadDir(root string, layout Layout) (*Pack, error) {
	player, err := readImages(filepath.Join(root, PlayerDir))
	if err != nil {
		return nil, err
	}
	enemies, err := readImages(filepath.Join(root, EnemyDir))
	if err != nil {
		return nil, err
	}
	backgrounds, err := readImages(filepath.Join(root, BackgroundDir))
	if err != nil {
		return nil, err
	}

	pack := &Pack{}

	var walking, ducking []image.Image
	for _, f := range player {
		if Pose(f.name) == SetDucking {
			ducking = append(ducking, f.img)
		} else {
			walking = append(walking, f.img)
		}
	}
	if pack.Walking, err = sprite.NewFrameSet(SetWalking, walking); err != nil {
		return nil, fmt.Errorf("assets: %s: %w", filepath.Join(root, PlayerDir), err)
	}
	pack.Ducking = pack.Walking
	if len(ducking) > 0 {
		if pack.Ducking, err = sprite.NewFrameSet(SetDucking, ducking); err != nil {
			return nil, err
		}
	}

	flyer := make([]image.Image, len(enemies))
	for i, f := range enemies {
		flyer[i] = f.img
	}
	if pack.Flyer, err = sprite.NewFrameSet(SetFlyer, flyer); err != nil {
		return nil, fmt.Errorf("assets: %s: %w", filepath.Join(root, EnemyDir), err)
	}

	for _, f := range backgrounds {
		name := strings.ToLower(f.name)
		switch {
		case strings.Contains(name, "background"):
			pack.Background = Scale(f.img, layout.Width, layout.Height)
		case strings.Contains(name, "platform"):
			pack.Platform = Scale(f.img, layout.TileWidth, layout.PlatformHeight)
		case strings.Contains(name, "cacti"):
			pack.Cacti = append(pack.Cacti, sprite.NewFrame(f.img))
		}
	}
	if len(pack.Cacti) == 0 {
		return nil, fmt.Errorf("assets: %s: no cacti images", filepath.Join(root, BackgroundDir))
	}

	return pack, nil
}

// Pose classifies a player frame by file name. Names containing "ducking"
// belong to the ducking set; "walking" and everything else to walking.
func Pose(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "walking"):
		return SetWalking
	case strings.Contains(name, "ducking"):
		return SetDucking
	default:
		return SetWalking
	}
}

type namedImage struct {
	name string
	img  image.Image
}

// readImages decodes every regular, non-hidden file in dir in listing order.
func readImages(dir string) ([]namedImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read directory %s: %w", dir, err)
	}

	var out []namedImage
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		img, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, namedImage{name: e.Name(), img: img})
	}
	return out, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// Scale resizes img to w x h with nearest-neighbour sampling, which keeps
// pixel art crisp.
func Scale(img image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
