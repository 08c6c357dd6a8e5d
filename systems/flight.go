package systems

import (
	"math"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlights moves collected apples along a straight-line blend with
// a sinusoidal vertical arc, destroying each when its tween finishes.
func UpdateFlights(e *ecs.ECS) {
	dt := float32(cfg.C.Dt())

	var finished []*donburi.Entry
	components.Flight.Each(e.World, func(entry *donburi.Entry) {
		f := components.Flight.Get(entry)
		t, done := f.Tween.Update(dt)
		f.Pos = FlightPosition(f.Start, f.End, f.Arc, float64(t))
		if done {
			f.Done = true
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		destroyEntity(e, entry)
	}
}

// FlightPosition interpolates the arc path at t in [0,1]: linear blend
// between start and end, displaced upward by arc*sin(pi*t).
func FlightPosition(start, end components.Vector, arc, t float64) components.Vector {
	return components.Vector{
		X: start.X + (end.X-start.X)*t,
		Y: start.Y + (end.Y-start.Y)*t - arc*math.Sin(t*math.Pi),
	}
}
