package components

import (
	"github.com/harvestgames/orchard/config"
	"github.com/yohamta/donburi"
)

// InputData double-buffers action states so systems can detect edges.
type InputData struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

// ActionState is the resolved state of one action for this frame.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Action resolves an action against the double buffer.
func (in *InputData) Action(id config.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
