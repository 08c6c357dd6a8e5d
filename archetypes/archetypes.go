package archetypes

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
	)
	Apple = newArchetype(
		tags.Apple,
		components.Apple,
		components.Object,
		components.Sprite,
	)
	Flight = newArchetype(
		tags.Flight,
		components.Flight,
		components.Sprite,
	)
	Basket = newArchetype(
		tags.Basket,
		components.Basket,
	)
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
