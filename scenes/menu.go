package scenes

import (
	"image/color"
	"sync"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems"
	"github.com/harvestgames/orchard/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GameController extends scene transitions with application shutdown.
type GameController interface {
	SceneChanger
	Quit()
}

// MenuScene displays the mode-select menu
type MenuScene struct {
	controller GameController
	recognizer components.AppleRecognizer
	menuUI     *ui.MenuUI
	once       sync.Once
	startMode  cfg.ModeID
	shouldPlay bool
	shouldQuit bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(gc GameController, recognizer components.AppleRecognizer) *MenuScene {
	return &MenuScene{controller: gc, recognizer: recognizer}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if ms.shouldQuit {
		ms.controller.Quit()
		return
	}
	if ms.shouldPlay {
		ms.shouldPlay = false
		systems.RememberMode(ms.startMode.String())
		ms.controller.ChangeScene(NewRoundScene(ms.controller, ms.startMode, ms.recognizer))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 34, 24, 255})

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	systems.InitAudio()

	ms.menuUI = ui.NewMenuUI(
		func() { ms.startMode = cfg.ModeCatch; ms.shouldPlay = true },
		func() { ms.startMode = cfg.ModeRunner; ms.shouldPlay = true },
		func() { ms.shouldQuit = true },
		func() bool {
			systems.SetMuted(!systems.Muted())
			systems.UpdateSettings(func(s *systems.SavedSettings) { s.Muted = systems.Muted() })
			return systems.Muted()
		},
	)
	ms.menuUI.SetSoundLabel(systems.Muted())
}
