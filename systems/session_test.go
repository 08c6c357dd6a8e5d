package systems

import (
	"math"
	"testing"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
)

func TestRestartResetsEverything(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	s := testSession(e)

	// Dirty the round.
	appleOnPlayer(e, components.QualityGood)
	UpdateCollisions(e)
	appleOnPlayer(e, components.QualityDamaged)
	UpdateCollisions(e)
	placeApple(e, components.QualityGood, 400, 100)
	s.Elapsed = 42
	s.Phase = cfg.PhaseEnded

	tapAction(e, cfg.ActionRestart)
	NewUpdateSession(nil)(e)

	if s.Phase != cfg.PhasePlaying {
		t.Error("restart should resume play")
	}
	if s.Score != 0 || s.Points != 0 {
		t.Errorf("counters should reset, score=%d points=%d", s.Score, s.Points)
	}
	if s.Lives != cfg.Catch.StartingLives {
		t.Errorf("lives should reset to %d, got %d", cfg.Catch.StartingLives, s.Lives)
	}
	if s.GoodCollected != 0 || s.RottenCollected != 0 {
		t.Errorf("tallies should reset, good=%d rotten=%d", s.GoodCollected, s.RottenCollected)
	}
	if s.Elapsed != 0 {
		t.Errorf("clock should reset, got %v", s.Elapsed)
	}
	if got := countApples(e); got != 0 {
		t.Errorf("restart should clear apples, %d remain", got)
	}
	if got := countFlights(e); got != 0 {
		t.Errorf("restart should clear flights, %d remain", got)
	}

	basketEntry, _ := components.Basket.First(e.World)
	if got := components.Basket.Get(basketEntry).AppleCount; got != 0 {
		t.Errorf("basket should empty on restart, got %d", got)
	}

	playerObj := components.Object.Get(testPlayer(e))
	wantX := float64(cfg.C.Width)/2 - playerObj.W/2
	if playerObj.X != wantX {
		t.Errorf("player should recenter: x=%v want %v", playerObj.X, wantX)
	}
}

func TestQuitFromGameOverInvokesCallback(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	s := testSession(e)
	s.Phase = cfg.PhaseEnded

	quit := false
	update := NewUpdateSession(func() { quit = true })

	tapAction(e, cfg.ActionQuit)
	update(e)
	if !quit {
		t.Error("quit action on the game-over screen should invoke the callback")
	}
}

func TestQuitIgnoredWhilePlaying(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)

	quit := false
	update := NewUpdateSession(func() { quit = true })

	tapAction(e, cfg.ActionQuit)
	update(e)
	if quit {
		t.Error("quit is only offered from the game-over screen")
	}
}

func TestRunnerSpeedRampsWithTime(t *testing.T) {
	e := newTestRound(cfg.ModeRunner)
	s := testSession(e)
	update := NewUpdateSession(nil)

	ticks := 10 * cfg.C.TPS
	for i := 0; i < ticks; i++ {
		update(e)
	}

	want := cfg.Runner.BaseSpeed + s.Elapsed*cfg.Runner.SpeedRamp
	if math.Abs(s.Speed-want) > 1e-9 {
		t.Errorf("speed=%v want %v", s.Speed, want)
	}
	if s.Speed <= cfg.Runner.BaseSpeed {
		t.Error("speed should have ramped above the base")
	}
	if math.Abs(s.Elapsed-10) > 0.01 {
		t.Errorf("elapsed=%v want ~10s", s.Elapsed)
	}
}

func TestEndedRoundStopsTheClock(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	s := testSession(e)
	s.Phase = cfg.PhaseEnded
	s.Elapsed = 5

	NewUpdateSession(nil)(e)
	if s.Elapsed != 5 {
		t.Errorf("clock must freeze on game over, got %v", s.Elapsed)
	}
}
