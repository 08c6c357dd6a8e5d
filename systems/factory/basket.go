package factory

import (
	"github.com/harvestgames/orchard/archetypes"
	"github.com/harvestgames/orchard/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBasket places the collection basket in the top-left corner.
func CreateBasket(e *ecs.ECS) *donburi.Entry {
	basket := archetypes.Basket.Spawn(e)
	components.Basket.SetValue(basket, components.BasketData{X: 100, Y: 80})
	return basket
}
