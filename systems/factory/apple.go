package factory

import (
	"github.com/harvestgames/orchard/archetypes"
	"github.com/harvestgames/orchard/assets"
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnApple creates one collectible. Quality is decided here by the
// weighted coin flip and never changes afterwards.
func SpawnApple(e *ecs.ECS, session *components.SessionData) *donburi.Entry {
	quality := components.QualityDamaged
	if session.Rng.Float64() < cfg.Apple.GoodChance {
		quality = components.QualityGood
	}
	artSeed := session.Rng.Int63()

	apple := archetypes.Apple.Spawn(e)
	src := assets.AppleArt(artSeed, quality)
	radius := float64((src.Rect.Dx() - 20) / 2)

	var cx, cy float64
	data := components.AppleData{
		Quality: quality,
		ArtSeed: artSeed,
		Seq:     session.NextSeq,
	}
	session.NextSeq++

	if session.Mode == cfg.ModeRunner {
		// Off the right edge. Damaged apples roll along the ground so
		// they can be jumped over; good ones float at a reachable height.
		cx = float64(cfg.C.Width) + 40
		if quality == components.QualityDamaged {
			cy = cfg.C.GroundY - radius
		} else {
			cy = cfg.C.GroundY - 60 - session.Rng.Float64()*120
		}
	} else {
		// Above the visible top, inside the horizontal spawn band.
		band := float64(cfg.C.Width) - 2*cfg.Catch.SpawnMarginX
		cx = cfg.Catch.SpawnMarginX + session.Rng.Float64()*band
		cy = cfg.Apple.SpawnY
		jitter := (session.Rng.Float64()*2 - 1) * cfg.Catch.FallJitter
		data.FallSpeed = cfg.Catch.FallSpeed + jitter
	}

	obj := resolv.NewObject(cx-radius, cy-radius, radius*2, radius*2)
	obj.AddTags(tags.ResolvApple)
	obj.Data = apple
	components.Object.SetValue(apple, components.ObjectData{Object: obj})
	components.Apple.SetValue(apple, data)
	components.Sprite.SetValue(apple, components.SpriteData{Source: src})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return apple
}
