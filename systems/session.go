package systems

import (
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems/factory"
	"github.com/harvestgames/orchard/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSession returns the session system. quit is invoked when the
// player quits from the game-over screen; it may be nil.
func NewUpdateSession(quit func()) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		sessionEntry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		s := components.Session.Get(sessionEntry)
		input := InputOf(e)

		if s.Phase == cfg.PhaseEnded {
			if input.Action(cfg.ActionRestart).JustPressed {
				ResetRound(e)
				return
			}
			if input.Action(cfg.ActionQuit).JustPressed && quit != nil {
				quit()
			}
			return
		}

		s.Elapsed += cfg.C.Dt()

		if s.Mode == cfg.ModeRunner {
			// Difficulty ramp: shared scroll speed grows with time.
			s.Speed = cfg.Runner.BaseSpeed + s.Elapsed*cfg.Runner.SpeedRamp
			return
		}

		// Catch: the loss condition is evaluated here, one tick after the
		// collision that spent the last life.
		if s.Lives <= 0 {
			s.Phase = cfg.PhaseEnded
			PlaySFX(SoundGameOver)
		}
	}
}

// ResetRound returns the world to its creation-time defaults: all
// apples and flights removed, counters zeroed, player re-placed. The
// recognizer and RNG survive the reset.
func ResetRound(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)

	var stale []*donburi.Entry
	components.Apple.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	components.Flight.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		destroyEntity(e, entry)
	}

	s.Phase = cfg.PhasePlaying
	s.Score = 0
	s.Points = 0
	s.Lives = cfg.Catch.StartingLives
	s.GoodCollected = 0
	s.RottenCollected = 0
	s.Elapsed = 0
	s.Speed = cfg.Runner.BaseSpeed
	s.NextSeq = 0
	s.NextSpawn = factory.NextSpawnDeadline(s)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		resetPlayer(playerEntry, s.Mode)
	}

	if basketEntry, ok := components.Basket.First(e.World); ok {
		components.Basket.Get(basketEntry).AppleCount = 0
	}
}

func resetPlayer(playerEntry *donburi.Entry, mode cfg.ModeID) {
	obj := components.Object.Get(playerEntry)
	centerX := float64(cfg.C.Width) / 2
	if mode == cfg.ModeRunner {
		centerX = cfg.Runner.PlayerX
	}
	obj.X = centerX - obj.W/2
	obj.Y = cfg.C.GroundY - obj.H
	obj.Update()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedY = 0
	physics.OnGround = true

	state := components.State.Get(playerEntry)
	state.CurrentState = cfg.Idle
	state.StateTimer = 0
	state.PickTimer = 0

	components.Player.Get(playerEntry).Direction = 1
}

// destroyEntity removes an entry and, when present, its collision
// object from the space.
func destroyEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
