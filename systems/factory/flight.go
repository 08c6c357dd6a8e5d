package factory

import (
	"image"

	"github.com/harvestgames/orchard/archetypes"
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnFlight animates a collected apple from its pickup point to the
// basket. Cosmetic only.
func SpawnFlight(e *ecs.ECS, start, end components.Vector, arc float64, src *image.RGBA) *donburi.Entry {
	flight := archetypes.Flight.Spawn(e)
	components.Flight.SetValue(flight, components.FlightData{
		Start: start,
		End:   end,
		Pos:   start,
		Arc:   arc,
		Tween: gween.New(0, 1, float32(cfg.Flight.Duration), ease.Linear),
	})
	components.Sprite.SetValue(flight, components.SpriteData{Source: src})
	return flight
}
