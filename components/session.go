package components

import (
	"image"
	"math/rand"

	"github.com/harvestgames/orchard/config"
	"github.com/yohamta/donburi"
)

// AppleRecognizer receives snapshots of collected apples. Verdicts are
// telemetry only; no update system may read them back into gameplay.
type AppleRecognizer interface {
	// Submit enqueues a snapshot without blocking the frame.
	Submit(img image.Image, truth string)
	// Last reports the most recent verdict for the HUD telemetry line.
	Last() (label string, confidence float64, ok bool)
}

// SessionData owns one round of play. All counters reset together; no
// state crosses a reset except the recognizer.
type SessionData struct {
	Mode  config.ModeID
	Phase config.SessionPhase

	Score           int // catch mode
	Points          int // runner mode
	Lives           int
	GoodCollected   int
	RottenCollected int

	Elapsed   float64
	NextSpawn float64 // elapsed-time deadline for the next apple
	Speed     float64 // runner scroll speed, recomputed each tick

	Rng     *rand.Rand
	NextSeq uint64

	Recognizer AppleRecognizer
}

var Session = donburi.NewComponentType[SessionData]()
