package factory

import (
	"math/rand"

	"github.com/harvestgames/orchard/archetypes"
	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession builds the round-state entity. The recognizer may be
// nil (headless tests, or the operator removed the telemetry hook).
func CreateSession(e *ecs.ECS, mode cfg.ModeID, recognizer components.AppleRecognizer, seed int64) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)
	rng := rand.New(rand.NewSource(seed))

	data := components.SessionData{
		Mode:       mode,
		Phase:      cfg.PhasePlaying,
		Lives:      cfg.Catch.StartingLives,
		Speed:      cfg.Runner.BaseSpeed,
		Rng:        rng,
		Recognizer: recognizer,
	}
	data.NextSpawn = NextSpawnDeadline(&data)
	components.Session.SetValue(entry, data)
	return entry
}

// NextSpawnDeadline schedules the following apple relative to the
// session's elapsed time: fixed interval for catch, uniform interval
// for runner.
func NextSpawnDeadline(s *components.SessionData) float64 {
	if s.Mode == cfg.ModeRunner {
		return s.Elapsed + cfg.Runner.SpawnMin + s.Rng.Float64()*(cfg.Runner.SpawnMax-cfg.Runner.SpawnMin)
	}
	return s.Elapsed + cfg.Catch.SpawnInterval
}

// CreateSpace builds the collision space covering the playfield. Apples
// can live above or right of the visible area, so the space is padded.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	pad := 200
	components.Space.SetValue(entry, components.SpaceData{
		Space: resolv.NewSpace(cfg.C.Width+2*pad, cfg.C.Height+2*pad, 16, 16),
	})
	return entry
}

// CreateInput builds the singleton input entity.
func CreateInput(e *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(e)
}
