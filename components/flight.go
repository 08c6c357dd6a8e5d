package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlightData animates a collected apple flying toward the basket.
// Purely cosmetic: nothing reads it back into gameplay state.
type FlightData struct {
	Start Vector
	End   Vector
	Pos   Vector
	Arc   float64 // vertical arc amplitude, px
	Tween *gween.Tween
	Done  bool
}

var Flight = donburi.NewComponentType[FlightData]()
