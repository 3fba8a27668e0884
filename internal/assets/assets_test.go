package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testLayout = Layout{Width: 320, Height: 200, TileWidth: 384, PlatformHeight: 30}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writePNG(t, filepath.Join(root, PlayerDir, "dino_walking_1.png"), 20, 22)
	writePNG(t, filepath.Join(root, PlayerDir, "dino_walking_2.png"), 20, 22)
	writePNG(t, filepath.Join(root, PlayerDir, "Dino_DUCKING_1.png"), 28, 14)
	writePNG(t, filepath.Join(root, PlayerDir, "idle.png"), 20, 22)
	writePNG(t, filepath.Join(root, EnemyDir, "bird1.png"), 20, 12)
	writePNG(t, filepath.Join(root, EnemyDir, "bird2.png"), 20, 12)
	writePNG(t, filepath.Join(root, BackgroundDir, "background.png"), 80, 50)
	writePNG(t, filepath.Join(root, BackgroundDir, "platform.png"), 40, 10)
	writePNG(t, filepath.Join(root, BackgroundDir, "cacti_small.png"), 10, 16)
	writePNG(t, filepath.Join(root, BackgroundDir, "cacti_big.png"), 14, 18)
	return root
}

func TestLoadDir(t *testing.T) {
	root := writeTree(t)

	pack, err := LoadDir(root, testLayout)
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}

	// Unmatched "idle.png" defaults into walking
	if pack.Walking.Len() != 3 {
		t.Errorf("walking frames = %d, expected 3", pack.Walking.Len())
	}
	if pack.Ducking.Len() != 1 || pack.Ducking.Name() != SetDucking {
		t.Errorf("ducking set = %s/%d", pack.Ducking.Name(), pack.Ducking.Len())
	}
	if pack.Flyer.Len() != 2 {
		t.Errorf("flyer frames = %d, expected 2", pack.Flyer.Len())
	}
	if len(pack.Cacti) != 2 {
		t.Errorf("cacti = %d, expected 2", len(pack.Cacti))
	}
	if b := pack.Background.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("background scaled to %v", b)
	}
	if b := pack.Platform.Bounds(); b.Dx() != 384 || b.Dy() != 30 {
		t.Errorf("platform scaled to %v", b)
	}
	if pack.Cacti[0].Mask.Count() == 0 {
		t.Error("opaque cactus should have a non-empty mask")
	}
}

func TestLoadDirMissingDirectory(t *testing.T) {
	root := writeTree(t)
	os.RemoveAll(filepath.Join(root, EnemyDir))

	_, err := LoadDir(root, testLayout)
	if err == nil || !strings.Contains(err.Error(), EnemyDir) {
		t.Errorf("error should name the missing directory, got %v", err)
	}
}

func TestLoadDirBadImage(t *testing.T) {
	root := writeTree(t)
	bad := filepath.Join(root, PlayerDir, "broken.png")
	os.WriteFile(bad, []byte("not a png"), 0o600)

	_, err := LoadDir(root, testLayout)
	if err == nil || !strings.Contains(err.Error(), "broken.png") {
		t.Errorf("error should name the broken file, got %v", err)
	}
}

func TestLoadDirRequiresCacti(t *testing.T) {
	root := writeTree(t)
	os.Remove(filepath.Join(root, BackgroundDir, "cacti_small.png"))
	os.Remove(filepath.Join(root, BackgroundDir, "cacti_big.png"))

	if _, err := LoadDir(root, testLayout); err == nil {
		t.Error("a pack without cacti should fail to load")
	}
}

func TestLoadDirDuckingFallsBackToWalking(t *testing.T) {
	root := writeTree(t)
	os.Remove(filepath.Join(root, PlayerDir, "Dino_DUCKING_1.png"))

	pack, err := LoadDir(root, testLayout)
	if err != nil {
		t.Fatal(err)
	}
	if pack.Ducking != pack.Walking {
		t.Error("missing ducking frames should reuse the walking set")
	}
}

func TestPose(t *testing.T) {
	tests := map[string]string{
		"walking_1.png":  SetWalking,
		"DUCKING_2.png":  SetDucking,
		"run.png":        SetWalking,
		"dino-Ducking.g": SetDucking,
	}
	for name, want := range tests {
		if got := Pose(name); got != want {
			t.Errorf("Pose(%q) = %q, expected %q", name, got, want)
		}
	}
}

func TestBuiltin(t *testing.T) {
	pack := Builtin(testLayout)

	if pack.Walking.Len() < 2 || pack.Ducking.Len() < 2 || pack.Flyer.Len() < 2 {
		t.Error("builtin sets should animate")
	}
	walk := pack.Walking.Frame(0)
	duck := pack.Ducking.Frame(0)
	if duck.Height() >= walk.Height() {
		t.Errorf("ducking (%d) should be shorter than walking (%d)", duck.Height(), walk.Height())
	}
	for i, c := range pack.Cacti {
		if c.Mask.Count() == 0 {
			t.Errorf("cactus %d has an empty mask", i)
		}
	}
	if b := pack.Platform.Bounds(); b.Dx() != testLayout.TileWidth || b.Dy() != testLayout.PlatformHeight {
		t.Errorf("platform tile = %v", b)
	}
	if len(pack.Summary()) != 6 {
		t.Errorf("Summary() = %v", pack.Summary())
	}
}
