package main

import (
	"flag"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/fonts"
	"github.com/harvestgames/orchard/scenes"
	"github.com/harvestgames/orchard/systems"
	"github.com/harvestgames/orchard/vision"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	quitting bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game loop on the next update.
func (g *Game) Quit() {
	g.quitting = true
}

func NewGame(recognizer *vision.Classifier, startMode string) *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 40)
	fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 18)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 13)

	g := &Game{
		bounds: image.Rectangle{},
	}
	if startMode != "" {
		g.scene = scenes.NewRoundScene(g, config.ParseMode(startMode), recognizer)
	} else {
		g.scene = scenes.NewMenuScene(g, recognizer)
	}
	return g
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	mode := flag.String("mode", "", "skip the menu and start this mode (catch|runner|last)")
	flag.Parse()

	if err := config.Load("orchard.yaml"); err != nil {
		log.Fatal("invalid config file", "err", err)
	}

	recognizer, err := vision.LoadClassifier(config.Vision.ModelPath, config.Vision.QueueSize)
	if err != nil {
		log.Error("apple classifier model is missing or unreadable",
			"path", config.Vision.ModelPath,
			"err", err)
		log.Error("train it first: go run ./cmd/trainmodel")
		os.Exit(1)
	}
	defer recognizer.Close()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	startMode := *mode
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
		if startMode == "last" {
			startMode = saved.LastMode
		}
	}
	if startMode == "last" {
		// No settings saved yet; nothing to resume.
		startMode = ""
	}

	if err := ebiten.RunGame(NewGame(recognizer, startMode)); err != nil {
		log.Fatal("game loop ended with error", "err", err)
	}
}
