package systems

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems/factory"
	"github.com/harvestgames/orchard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestRound assembles a playable world without the window: space,
// session, player, basket and input, all driven by a fixed seed.
func newTestRound(mode cfg.ModeID) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateInput(e)
	factory.CreateSession(e, mode, nil, 7)
	factory.CreatePlayer(e, mode)
	factory.CreateBasket(e)
	return e
}

func testSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		panic("no session in test world")
	}
	return components.Session.Get(entry)
}

func testPlayer(e *ecs.ECS) *donburi.Entry {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		panic("no player in test world")
	}
	return entry
}

// placeApple spawns an apple and pins its quality and body center.
func placeApple(e *ecs.ECS, quality components.AppleQuality, cx, cy float64) *donburi.Entry {
	s := testSession(e)
	entry := factory.SpawnApple(e, s)
	components.Apple.Get(entry).Quality = quality
	obj := components.Object.Get(entry)
	obj.X = cx - obj.W/2
	obj.Y = cy - obj.H/2
	obj.Update()
	return entry
}

// appleOnPlayer spawns an apple centered on the player's body.
func appleOnPlayer(e *ecs.ECS, quality components.AppleQuality) *donburi.Entry {
	obj := components.Object.Get(testPlayer(e))
	return placeApple(e, quality, obj.X+obj.W/2, obj.Y+obj.H/2)
}

// holdAction simulates a key held since last frame.
func holdAction(e *ecs.ECS, id cfg.ActionID) {
	in := InputOf(e)
	in.Previous[id] = true
	in.Current[id] = true
}

// tapAction simulates a key edge this frame.
func tapAction(e *ecs.ECS, id cfg.ActionID) {
	in := InputOf(e)
	in.Previous[id] = false
	in.Current[id] = true
}

// releaseActions clears all input.
func releaseActions(e *ecs.ECS) {
	in := InputOf(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func countApples(e *ecs.ECS) int {
	n := 0
	components.Apple.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}

func countFlights(e *ecs.ECS) int {
	n := 0
	components.Flight.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}
