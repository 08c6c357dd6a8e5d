package systems

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the boy one tick: catch mode walks and clamps,
// runner mode integrates jump physics. The pick timer runs in both.
func UpdatePlayer(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Phase != cfg.PhasePlaying {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	dt := cfg.C.Dt()
	state := components.State.Get(playerEntry)
	state.StateTimer += dt
	if state.PickTimer > 0 {
		state.PickTimer -= dt
		if state.PickTimer < 0 {
			state.PickTimer = 0
		}
	}

	if s.Mode == cfg.ModeRunner {
		updateRunnerPlayer(playerEntry, dt)
	} else {
		updateCatchPlayer(e, playerEntry, dt)
	}
}

func updateCatchPlayer(e *ecs.ECS, playerEntry *donburi.Entry, dt float64) {
	input := InputOf(e)
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	left := input.Action(cfg.ActionMoveLeft).Pressed
	right := input.Action(cfg.ActionMoveRight).Pressed

	switch {
	case left:
		obj.X -= cfg.Catch.WalkSpeed * dt
		player.Direction = -1
		setState(state, cfg.Walking)
	case right:
		obj.X += cfg.Catch.WalkSpeed * dt
		player.Direction = 1
		setState(state, cfg.Walking)
	default:
		setState(state, cfg.Idle)
	}

	// Clamp the sprite center to the playfield margins.
	centerX := obj.X + obj.W/2
	if centerX < cfg.Catch.MarginX {
		centerX = cfg.Catch.MarginX
	}
	if maxX := float64(cfg.C.Width) - cfg.Catch.MarginX; centerX > maxX {
		centerX = maxX
	}
	obj.X = centerX - obj.W/2
	obj.Update()
}

func updateRunnerPlayer(playerEntry *donburi.Entry, dt float64) {
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Gravity integrates every frame; the jump itself is applied by
	// TriggerJump from the input edge.
	physics.SpeedY += physics.Gravity * dt
	obj.Y += physics.SpeedY * dt

	if obj.Y+obj.H >= cfg.C.GroundY {
		obj.Y = cfg.C.GroundY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
		if state.CurrentState == cfg.Jumping {
			setState(state, cfg.Idle)
		}
	}
	obj.Update()
}

// UpdateJumpInput applies the jump impulse on the key edge, only while
// grounded. Runs before UpdatePlayer so the impulse integrates the same
// tick.
func UpdateJumpInput(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Mode != cfg.ModeRunner || s.Phase != cfg.PhasePlaying {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if !InputOf(e).Action(cfg.ActionJump).JustPressed {
		return
	}
	TriggerJump(playerEntry)
}

// TriggerJump starts a jump if the player is grounded.
func TriggerJump(playerEntry *donburi.Entry) {
	physics := components.Physics.Get(playerEntry)
	if !physics.OnGround {
		return
	}
	physics.SpeedY = -cfg.Runner.JumpImpulse
	physics.OnGround = false
	setState(components.State.Get(playerEntry), cfg.Jumping)
	PlaySFX(SoundJump)
}

func setState(state *components.StateData, id cfg.StateID) {
	if state.CurrentState == id {
		return
	}
	state.CurrentState = id
	state.StateTimer = 0
}
