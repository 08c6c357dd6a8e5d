package assets

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const basketApplesShown = 6

var (
	basketMu    sync.Mutex
	basketCache = map[int]*ebiten.Image{}
)

// BasketSize is the basket sprite's width and height.
var BasketSize = image.Pt(100, 80)

// Basket returns the basket drawable showing up to six collected
// apples. Cached per visible count.
func Basket(appleCount int) *ebiten.Image {
	shown := appleCount
	if shown > basketApplesShown {
		shown = basketApplesShown
	}
	basketMu.Lock()
	defer basketMu.Unlock()
	if img, ok := basketCache[shown]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(basketRGBA(shown))
	basketCache[shown] = img
	return img
}

func basketRGBA(shown int) *image.RGBA {
	img := newCanvas(BasketSize.X, BasketSize.Y)

	// Body with darker rim and a handle
	fillEllipse(img, 10, 25, 90, 75, color.RGBA{139, 90, 43, 255})
	line(img, 30, 18, 50, 8, 5, color.RGBA{101, 67, 33, 255})
	line(img, 50, 8, 70, 18, 5, color.RGBA{101, 67, 33, 255})

	label(img, "BASKET", 25, 22)

	for i := 0; i < shown; i++ {
		x := 25 + (i%3)*25
		y := 40 + (i/3)*20
		fillCircle(img, x, y, 10, color.RGBA{220, 40, 40, 255})
		strokeCircle(img, x, y, 10, 2, color.RGBA{150, 0, 0, 255})
	}
	return img
}

func label(img *image.RGBA, s string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
