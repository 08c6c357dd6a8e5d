package systems

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner creates one apple whenever the spawn deadline passes.
func UpdateSpawner(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Phase != cfg.PhasePlaying {
		return
	}
	if s.Elapsed < s.NextSpawn {
		return
	}
	factory.SpawnApple(e, s)
	s.NextSpawn = factory.NextSpawnDeadline(s)
}
