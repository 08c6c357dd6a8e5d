package components

import (
	"github.com/harvestgames/orchard/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState config.StateID
	StateTimer   float64 // seconds in the current state
	PickTimer    float64 // seconds the pick animation still overrides display
}

// TriggerPick (re)starts the pick animation; a new pick restarts the
// timer even mid-animation.
func (s *StateData) TriggerPick(duration float64) {
	s.PickTimer = duration
}

// DisplayState resolves the animation shown this frame. Picking
// overrides everything else but never blocks movement.
func (s *StateData) DisplayState() config.StateID {
	if s.PickTimer > 0 {
		return config.Picking
	}
	return s.CurrentState
}

var State = donburi.NewComponentType[StateData]()
