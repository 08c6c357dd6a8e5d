package assets

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	cfg "github.com/harvestgames/orchard/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	boyMu    sync.Mutex
	boyCache = map[string]*ebiten.Image{}
)

// Boy returns the character drawable for one animation state, walk
// frame and facing direction. Every variant is drawn once and cached
// (one precomputed drawable per state, selected at render time).
func Boy(state cfg.StateID, frame, dir int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d", state, frame%2, dir)
	boyMu.Lock()
	defer boyMu.Unlock()
	if img, ok := boyCache[key]; ok {
		return img
	}
	rgba := boyRGBA(state, frame%2)
	if dir < 0 {
		rgba = flipH(rgba)
	}
	img := ebiten.NewImageFromImage(rgba)
	boyCache[key] = img
	return img
}

func boyRGBA(state cfg.StateID, frame int) *image.RGBA {
	w, h := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	img := newCanvas(w, h)
	cx := w / 2

	skin := color.RGBA{255, 220, 177, 255}
	hair := color.RGBA{60, 40, 25, 255}
	shirt := color.RGBA{70, 130, 200, 255}
	pants := color.RGBA{50, 50, 50, 255}
	shoe := color.RGBA{30, 30, 30, 255}

	// Head and hair
	fillCircle(img, cx, 35, 30, skin)
	fillEllipse(img, cx-30, 0, cx+30, 40, hair)

	// Eyes
	fillEllipse(img, cx-18, 28, cx-6, 44, color.RGBA{255, 255, 255, 255})
	fillEllipse(img, cx+6, 28, cx+18, 44, color.RGBA{255, 255, 255, 255})
	fillCircle(img, cx-12, 36, 5, color.RGBA{50, 120, 200, 255})
	fillCircle(img, cx+12, 36, 5, color.RGBA{50, 120, 200, 255})
	fillCircle(img, cx-12, 36, 3, color.RGBA{20, 20, 20, 255})
	fillCircle(img, cx+12, 36, 3, color.RGBA{20, 20, 20, 255})

	// Nose, mouth, cheeks
	fillEllipse(img, cx-3, 42, cx+3, 50, color.RGBA{240, 200, 160, 255})
	line(img, cx-8, 55, cx+8, 55, 2, color.RGBA{200, 100, 100, 255})
	fillCircle(img, cx-20, 45, 6, color.RGBA{255, 180, 180, 100})
	fillCircle(img, cx+20, 45, 6, color.RGBA{255, 180, 180, 100})

	// Body
	fillRect(img, cx-28, 65, cx+28, 115, shirt)

	// Arms vary by state
	switch state {
	case cfg.Picking:
		// Left arm normal, right arm reaching forward and up.
		fillEllipse(img, cx-40, 70, cx-22, 105, skin)
		line(img, cx+22, 70, cx+47, 95, 18, skin)
		fillCircle(img, cx+47, 95, 8, skin)
	case cfg.Walking:
		off := 5
		if frame == 1 {
			off = -5
		}
		fillEllipse(img, cx-40, 70+off, cx-22, 105+off, skin)
		fillEllipse(img, cx+22, 70-off, cx+40, 105-off, skin)
		fillCircle(img, cx-32, 100+off, 8, skin)
		fillCircle(img, cx+32, 100-off, 8, skin)
	case cfg.Jumping:
		// Both arms raised.
		line(img, cx-24, 75, cx-38, 55, 16, skin)
		line(img, cx+24, 75, cx+38, 55, 16, skin)
		fillCircle(img, cx-38, 55, 8, skin)
		fillCircle(img, cx+38, 55, 8, skin)
	default:
		fillEllipse(img, cx-40, 70, cx-22, 105, skin)
		fillEllipse(img, cx+22, 70, cx+40, 105, skin)
		fillCircle(img, cx-32, 100, 8, skin)
		fillCircle(img, cx+32, 100, 8, skin)
	}

	// Pants and shoes
	fillRect(img, cx-20, 115, cx-2, 155, pants)
	fillRect(img, cx+2, 115, cx+20, 155, pants)
	fillEllipse(img, cx-24, 150, cx-4, 160, shoe)
	fillEllipse(img, cx+4, 150, cx+24, 160, shoe)

	return img
}
