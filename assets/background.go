package assets

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"sync"

	cfg "github.com/harvestgames/orchard/config"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// BackgroundImagePath is checked before falling back to procedural art.
const BackgroundImagePath = "assets/jungle_bg.png"

var (
	bgOnce sync.Once
	bg     *ebiten.Image
)

// Background returns the static forest backdrop. A PNG at
// BackgroundImagePath wins; anything missing or unreadable degrades to
// the generated forest, never to an error.
func Background() *ebiten.Image {
	bgOnce.Do(func() {
		w, h := cfg.C.Width, cfg.C.Height
		if img := loadBackgroundFile(w, h); img != nil {
			bg = ebiten.NewImageFromImage(img)
			return
		}
		bg = ebiten.NewImageFromImage(ForestRGBA(w, h, int(cfg.C.GroundY)))
	})
	return bg
}

func loadBackgroundFile(w, h int) image.Image {
	f, err := os.Open(BackgroundImagePath)
	if err != nil {
		return nil
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}

// ForestRGBA generates the fallback forest scene: sky gradient, canopy,
// tree line, ground and grass.
func ForestRGBA(w, h, groundY int) *image.RGBA {
	img := newCanvas(w, h)
	rng := rand.New(rand.NewSource(7))

	// Sky gradient over the top half
	half := h / 2
	for y := 0; y < half; y++ {
		t := float64(y) / float64(half)
		hline(img, y, color.RGBA{
			uint8(135 + 9*t),
			uint8(206 + 32*t),
			uint8(250 - 106*t),
			255,
		})
	}
	// Canopy gradient over the bottom half
	for y := half; y < h; y++ {
		t := float64(y-half) / float64(h-half)
		hline(img, y, color.RGBA{
			uint8(34 - 14*t),
			uint8(139 - 59*t),
			uint8(34 - 14*t),
			255,
		})
	}

	// Trees
	for i := 0; i < 15; i++ {
		x := i*w/15 + rng.Intn(101) - 50
		treeW := 50 + rng.Intn(41)
		treeH := 120 + rng.Intn(81)
		treeY := groundY - treeH
		trunkW := treeW / 2
		fillRect(img, x+treeW/2-trunkW/2, treeY, x+treeW/2+trunkW/2, groundY,
			color.RGBA{60, 35, 20, 255})
		for j := 0; j < 4; j++ {
			foliageY := treeY + j*(treeH/5)
			foliageR := treeW/2 + rng.Intn(31) - 15
			fillCircle(img, x+treeW/2, foliageY, foliageR, color.RGBA{25, 80, 25, 255})
		}
	}

	// Ground and grass blades
	fillRect(img, 0, groundY, w, h, color.RGBA{34, 139, 34, 255})
	for i := 0; i < 150; i++ {
		x := rng.Intn(w)
		grassH := 5 + rng.Intn(11)
		line(img, x, groundY, x, groundY-grassH, 2, color.RGBA{40, 150, 40, 255})
	}
	return img
}
