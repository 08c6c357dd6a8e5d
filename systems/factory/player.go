package factory

import (
	"github.com/harvestgames/orchard/archetypes"
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the boy on the ground line: centered for catch,
// at the fixed runner X otherwise.
func CreatePlayer(e *ecs.ECS, mode cfg.ModeID) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	cw, ch := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	centerX := float64(cfg.C.Width) / 2
	if mode == cfg.ModeRunner {
		centerX = cfg.Runner.PlayerX
	}

	obj := resolv.NewObject(centerX-cw/2, cfg.C.GroundY-ch, cw, ch)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{Direction: 1})
	components.State.SetValue(player, components.StateData{CurrentState: cfg.Idle})

	gravity := 0.0
	if mode == cfg.ModeRunner {
		gravity = cfg.Runner.Gravity
	}
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  gravity,
		OnGround: true,
	})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return player
}
