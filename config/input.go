package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action polled once per frame.
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionRestart
	ActionQuit
	ActionCount
)

// InputConfig maps actions to keyboard keys.
type InputConfig struct {
	Bindings map[ActionID][]ebiten.Key
}

var Input = InputConfig{
	Bindings: map[ActionID][]ebiten.Key{
		ActionMoveLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		ActionMoveRight: {ebiten.KeyArrowRight, ebiten.KeyD},
		ActionJump:      {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		ActionRestart:   {ebiten.KeySpace},
		ActionQuit:      {ebiten.KeyEscape, ebiten.KeyQ},
	},
}
