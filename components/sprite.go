package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData carries procedurally generated art. The source stays a
// plain RGBA so logic and the classifier never need the graphics
// context; conversion happens lazily on the render path.
type SpriteData struct {
	Source   *image.RGBA
	Rotation float64

	img *ebiten.Image
}

func (s *SpriteData) Image() *ebiten.Image {
	if s.img == nil && s.Source != nil {
		s.img = ebiten.NewImageFromImage(s.Source)
	}
	return s.img
}

var Sprite = donburi.NewComponentType[SpriteData]()
