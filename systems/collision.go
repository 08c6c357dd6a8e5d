package systems

import (
	"sort"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems/factory"
	"github.com/harvestgames/orchard/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player/apple intersections. Candidates are
// ordered by spawn sequence so tie-breaks are deterministic: catch mode
// resolves only the first match per frame, runner mode resolves all.
func UpdateCollisions(e *ecs.ECS) {
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
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvApple)
	if check == nil {
		return
	}

	// Broad phase is cell-based; gather the candidate entries and
	// confirm with an exact AABB test in spawn order.
	var candidates []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvApple) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		apple := components.Apple.Get(entry)
		if apple.Collected {
			continue
		}
		if !aabbOverlap(playerObj.Object, obj) {
			continue
		}
		candidates = append(candidates, entry)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return components.Apple.Get(candidates[i]).Seq < components.Apple.Get(candidates[j]).Seq
	})

	for _, appleEntry := range candidates {
		resolveCollection(e, s, playerEntry, appleEntry)
		if s.Mode == cfg.ModeCatch {
			// First match wins; remaining collisions this frame are ignored.
			break
		}
	}
}

// resolveCollection applies exactly one outcome for one apple. The
// outcome depends only on the spawn-time quality flag: the classifier
// snapshot is submitted as a side effect and its verdict is never read.
func resolveCollection(e *ecs.ECS, s *components.SessionData, playerEntry, appleEntry *donburi.Entry) {
	apple := components.Apple.Get(appleEntry)
	sprite := components.Sprite.Get(appleEntry)
	appleObj := components.Object.Get(appleEntry)
	state := components.State.Get(playerEntry)

	apple.Collected = true

	if s.Recognizer != nil && sprite.Source != nil {
		s.Recognizer.Submit(sprite.Source, string(apple.Quality))
	}

	if apple.Quality == components.QualityGood {
		if s.Mode == cfg.ModeRunner {
			s.Points += cfg.Runner.GoodReward
			state.TriggerPick(cfg.Runner.PickDuration)
		} else {
			s.Score += cfg.Catch.GoodReward
			state.TriggerPick(cfg.Catch.PickDuration)
		}
		s.GoodCollected++
		spawnBasketFlight(e, s, appleEntry, appleObj.Object)
		PlaySFX(SoundCollect)
		destroyEntity(e, appleEntry)
		return
	}

	// Damaged apple.
	if s.Mode == cfg.ModeRunner {
		playerObj := components.Object.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		if runnerGrounded(playerObj.Object, physics) {
			s.RottenCollected++
			s.Phase = cfg.PhaseEnded
			PlaySFX(SoundGameOver)
		}
		// Airborne: jumped over, no penalty.
		destroyEntity(e, appleEntry)
		return
	}

	state.TriggerPick(cfg.Catch.PickDuration)
	s.RottenCollected++
	if s.Lives > 0 {
		s.Lives--
	}
	PlaySFX(SoundRotten)
	destroyEntity(e, appleEntry)
}

func spawnBasketFlight(e *ecs.ECS, s *components.SessionData, appleEntry *donburi.Entry, appleObj *resolv.Object) {
	basketEntry, ok := components.Basket.First(e.World)
	if !ok {
		return
	}
	basket := components.Basket.Get(basketEntry)
	basket.AppleCount = s.GoodCollected

	arc := cfg.Catch.FlightArc
	if s.Mode == cfg.ModeRunner {
		arc = cfg.Runner.FlightArc
	}
	start := components.Vector{X: appleObj.X + appleObj.W/2, Y: appleObj.Y + appleObj.H/2}
	end := components.Vector{X: basket.X, Y: basket.Y}
	factory.SpawnFlight(e, start, end, arc, components.Sprite.Get(appleEntry).Source)
}

// runnerGrounded is the obstacle-hit test: on the ground flag plus the
// bottom edge within the ground slack.
func runnerGrounded(playerObj *resolv.Object, physics *components.PhysicsData) bool {
	return physics.OnGround && playerObj.Y+playerObj.H >= cfg.C.GroundY-cfg.Runner.GroundSlack
}

func aabbOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
