package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems"
	"github.com/harvestgames/orchard/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoundScene runs one game round in the selected mode.
type RoundScene struct {
	ecs        *ecs.ECS
	controller GameController
	mode       cfg.ModeID
	recognizer components.AppleRecognizer
	once       sync.Once
}

// NewRoundScene creates a round scene for the given mode.
func NewRoundScene(gc GameController, mode cfg.ModeID, recognizer components.AppleRecognizer) *RoundScene {
	return &RoundScene{controller: gc, mode: mode, recognizer: recognizer}
}

func (rs *RoundScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RoundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RoundScene) configure() {
	systems.InitAudio()

	e := ecs.NewECS(donburi.NewWorld())

	// Order matters: the session system sees last frame's tallies, so a
	// life lost this frame ends the round on the next evaluation.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateSession(rs.controller.Quit))
	e.AddSystem(systems.UpdateJumpInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateSpawner)
	e.AddSystem(systems.UpdateApples)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateFlights)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawApples)
	e.AddRenderer(cfg.Default, systems.DrawFlights)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawBasket)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)

	rs.ecs = e

	factory.CreateSpace(rs.ecs)
	factory.CreateInput(rs.ecs)
	factory.CreateSession(rs.ecs, rs.mode, rs.recognizer, time.Now().UnixNano())
	factory.CreatePlayer(rs.ecs, rs.mode)
	factory.CreateBasket(rs.ecs)
}
