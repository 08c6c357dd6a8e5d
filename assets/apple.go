package assets

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
)

// AppleArt draws one apple deterministically from its spawn seed. The
// same RGBA feeds both the renderer and the classifier snapshot.
func AppleArt(seed int64, quality components.AppleQuality) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	radius := cfg.Apple.MinRadius + rng.Intn(cfg.Apple.MaxRadius-cfg.Apple.MinRadius+1)
	img := newCanvas(radius*2+20, radius*2+30)
	cx := img.Rect.Dx() / 2
	cy := img.Rect.Dy() / 2

	if quality == components.QualityDamaged {
		// Rotten: brown body with dark patches and a wilted leaf.
		fillEllipse(img, cx-radius, cy-radius, cx+radius, cy+radius+radius/5,
			color.RGBA{139, 90, 43, 255})
		for i := 0; i < 4+rng.Intn(3); i++ {
			pr := radius/3 + rng.Intn(radius/2-radius/3+1)
			px := cx + rng.Intn(radius+1) - radius/2
			py := cy + rng.Intn(radius+1) - radius/2
			fillEllipse(img, px-pr, py-pr, px+pr, py+pr+pr/5,
				color.RGBA{100, 60, 30, 255})
		}
		line(img, cx, cy-radius-5, cx, cy-radius, 3, color.RGBA{80, 50, 20, 255})
		line(img, cx+3, cy-radius-3, cx+11, cy-radius-13, 3, color.RGBA{100, 80, 30, 255})
		return img
	}

	// Fresh: bright red with a green leaf.
	r := 220 + rng.Intn(21) - 10
	g := 40 + rng.Intn(11) - 5
	b := 40 + rng.Intn(11) - 5
	fillCircle(img, cx, cy, radius, color.RGBA{uint8(r), uint8(g), uint8(b), 255})
	strokeCircle(img, cx, cy, radius, 3, color.RGBA{150, 0, 0, 255})
	leafX := cx + 12
	leafY := cy - radius - 15
	line(img, cx, cy-radius, leafX, leafY, 4, color.RGBA{40, 120, 40, 255})
	fillCircle(img, leafX, leafY, 6, color.RGBA{40, 120, 40, 255})
	return img
}
