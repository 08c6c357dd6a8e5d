package systems

import (
	"image/color"

	"github.com/harvestgames/orchard/assets"
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawBackground paints the forest backdrop and the ground line.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.DrawImage(assets.Background(), nil)
	vector.StrokeLine(screen,
		0, float32(cfg.C.GroundY),
		float32(cfg.C.Width), float32(cfg.C.GroundY),
		3, color.RGBA{139, 69, 19, 255}, false)
}

// DrawApples renders live collectibles, spinning them in runner mode.
func DrawApples(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Apple.Each(ecs.World, func(entry *donburi.Entry) {
		apple := components.Apple.Get(entry)
		if apple.Collected {
			return
		}
		sprite := components.Sprite.Get(entry)
		img := sprite.Image()
		if img == nil {
			return
		}
		obj := components.Object.Get(entry)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		if sprite.Rotation != 0 {
			drawOp.GeoM.Rotate(sprite.Rotation)
		}
		drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H/2)
		screen.DrawImage(img, drawOp)
	})
}

// DrawFlights renders collected apples arcing toward the basket.
func DrawFlights(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Flight.Each(ecs.World, func(entry *donburi.Entry) {
		f := components.Flight.Get(entry)
		img := components.Sprite.Get(entry).Image()
		if img == nil {
			return
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(f.Pos.X-float64(w)/2, f.Pos.Y-float64(h)/2)
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer renders the boy anchored bottom-center on his collision
// box, facing his movement direction.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Walk cycle alternates every 0.15s of state time.
	frame := int(state.StateTimer / 0.15)
	img := assets.Boy(state.DisplayState(), frame, player.Direction)

	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(
		obj.X+obj.W/2-float64(cfg.Player.FrameWidth)/2,
		obj.Y+obj.H-float64(cfg.Player.FrameHeight),
	)
	screen.DrawImage(img, drawOp)
}

// DrawBasket renders the basket with its collected apples.
func DrawBasket(ecs *ecs.ECS, screen *ebiten.Image) {
	basketEntry, ok := components.Basket.First(ecs.World)
	if !ok {
		return
	}
	basket := components.Basket.Get(basketEntry)
	img := assets.Basket(basket.AppleCount)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Translate(
		basket.X-float64(assets.BasketSize.X)/2,
		basket.Y-float64(assets.BasketSize.Y)/2,
	)
	screen.DrawImage(img, drawOp)
}
