package systems

import (
	"math"
	"testing"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
)

func TestCatchWalkClampsToMargins(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	obj := components.Object.Get(testPlayer(e))

	// Hold right long enough to cross the whole playfield.
	ticks := int(2 * float64(cfg.C.Width) / cfg.Catch.WalkSpeed * float64(cfg.C.TPS))
	for i := 0; i < ticks; i++ {
		holdAction(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
	}
	maxCenter := float64(cfg.C.Width) - cfg.Catch.MarginX
	if got := obj.X + obj.W/2; math.Abs(got-maxCenter) > 1e-9 {
		t.Errorf("right clamp: center=%v want %v", got, maxCenter)
	}

	releaseActions(e)
	for i := 0; i < 2*ticks; i++ {
		holdAction(e, cfg.ActionMoveLeft)
		UpdatePlayer(e)
	}
	if got := obj.X + obj.W/2; math.Abs(got-cfg.Catch.MarginX) > 1e-9 {
		t.Errorf("left clamp: center=%v want %v", got, cfg.Catch.MarginX)
	}
}

func TestCatchWalkSetsStateAndDirection(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	player := components.Player.Get(testPlayer(e))
	state := components.State.Get(testPlayer(e))

	holdAction(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	if state.CurrentState != cfg.Walking {
		t.Errorf("expected walking, got %v", state.CurrentState)
	}
	if player.Direction != -1 {
		t.Errorf("expected direction -1, got %d", player.Direction)
	}

	releaseActions(e)
	UpdatePlayer(e)
	if state.CurrentState != cfg.Idle {
		t.Errorf("expected idle after release, got %v", state.CurrentState)
	}
}

func TestRunnerJumpRisesAndLands(t *testing.T) {
	e := newTestRound(cfg.ModeRunner)
	playerEntry := testPlayer(e)
	obj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	groundTop := cfg.C.GroundY - obj.H

	tapAction(e, cfg.ActionJump)
	UpdateJumpInput(e)
	if physics.OnGround {
		t.Fatal("jump should lift the grounded flag")
	}
	if state.CurrentState != cfg.Jumping {
		t.Fatalf("expected jumping state, got %v", state.CurrentState)
	}
	releaseActions(e)

	rose := false
	landedAt := -1
	// Ballistic airtime is 2*impulse/gravity; give it double.
	maxTicks := int(4 * cfg.Runner.JumpImpulse / cfg.Runner.Gravity * float64(cfg.C.TPS))
	for i := 0; i < maxTicks; i++ {
		UpdatePlayer(e)
		if obj.Y < groundTop-10 {
			rose = true
		}
		if physics.OnGround && rose {
			landedAt = i
			break
		}
	}

	if !rose {
		t.Fatal("player never left the ground")
	}
	if landedAt < 0 {
		t.Fatal("player never landed")
	}
	if obj.Y != groundTop {
		t.Errorf("landing should clamp to the ground line: y=%v want %v", obj.Y, groundTop)
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed should zero on landing, got %v", physics.SpeedY)
	}
	if state.CurrentState != cfg.Idle {
		t.Errorf("expected idle after landing, got %v", state.CurrentState)
	}

	airtime := float64(landedAt+1) / float64(cfg.C.TPS)
	expected := 2 * cfg.Runner.JumpImpulse / cfg.Runner.Gravity
	if math.Abs(airtime-expected) > 0.1 {
		t.Errorf("airtime %v deviates from ballistic %v", airtime, expected)
	}
}

func TestRunnerNoDoubleJump(t *testing.T) {
	e := newTestRound(cfg.ModeRunner)
	playerEntry := testPlayer(e)
	physics := components.Physics.Get(playerEntry)

	TriggerJump(playerEntry)
	speedAfterFirst := physics.SpeedY

	TriggerJump(playerEntry)
	if physics.SpeedY != speedAfterFirst {
		t.Errorf("airborne jump must be ignored: speed %v want %v", physics.SpeedY, speedAfterFirst)
	}
}

func TestPickTimerCountsDownAndClamps(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	state := components.State.Get(testPlayer(e))
	state.TriggerPick(cfg.Catch.PickDuration)

	ticks := int(cfg.Catch.PickDuration*float64(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		if state.PickTimer > 0 && state.DisplayState() != cfg.Picking {
			t.Fatal("pick animation should override the display state")
		}
		UpdatePlayer(e)
	}
	if state.PickTimer != 0 {
		t.Errorf("pick timer should clamp to 0, got %v", state.PickTimer)
	}
	if state.DisplayState() == cfg.Picking {
		t.Error("pick animation should be over")
	}
}

func TestPlayerFrozenAfterRoundEnds(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	s := testSession(e)
	s.Phase = cfg.PhaseEnded
	obj := components.Object.Get(testPlayer(e))
	startX := obj.X

	holdAction(e, cfg.ActionMoveRight)
	UpdatePlayer(e)

	if obj.X != startX {
		t.Errorf("player must not move on the game-over screen: x=%v want %v", obj.X, startX)
	}
}
