package systems

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateApples advances collectible kinematics: constant-velocity fall
// in catch mode, shared leftward scroll in runner mode. Apples fully
// outside the visible area are destroyed.
func UpdateApples(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Phase != cfg.PhasePlaying {
		return
	}
	dt := cfg.C.Dt()

	var offscreen []*donburi.Entry
	components.Apple.Each(e.World, func(entry *donburi.Entry) {
		apple := components.Apple.Get(entry)
		if apple.Collected {
			return
		}
		obj := components.Object.Get(entry)

		if s.Mode == cfg.ModeRunner {
			obj.X -= s.Speed * dt
			apple.Spin += cfg.Apple.SpinRate * dt
			components.Sprite.Get(entry).Rotation = apple.Spin
			obj.Update()
			if obj.X+obj.W < 0 {
				offscreen = append(offscreen, entry)
			}
			return
		}

		obj.Y += apple.FallSpeed * dt
		obj.Update()
		if obj.Y > float64(cfg.C.Height) {
			offscreen = append(offscreen, entry)
		}
	})

	for _, entry := range offscreen {
		destroyEntity(e, entry)
	}
}
