package systems

import (
	"fmt"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin = 14
	heartSize = 18
	heartGap  = 6
	scoreBoxW = 180
	scoreBoxH = 26
)

// DrawHUD renders the in-round overlay: score centered at the top,
// lives or points depending on mode, and the latest classifier verdict.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Phase != cfg.PhasePlaying {
		return
	}

	width := float64(cfg.C.Width)
	hudFont := fonts.HUD.Get()

	// Score box centered at the top.
	vector.DrawFilledRect(screen,
		float32(width/2)-scoreBoxW/2, hudMargin,
		scoreBoxW, scoreBoxH,
		cfg.HUDBackdrop, false)

	var scoreStr string
	if s.Mode == cfg.ModeRunner {
		scoreStr = fmt.Sprintf("POINTS: %d", s.Points)
	} else {
		scoreStr = fmt.Sprintf("SCORE: %d", s.Score)
	}
	textWidth := len(scoreStr) * 9
	text.Draw(screen, scoreStr, hudFont, int(width/2)-textWidth/2, hudMargin+19, cfg.White)

	hint := "ARROWS or A/D to move"
	if s.Mode == cfg.ModeCatch {
		drawLives(screen, s.Lives)
	} else {
		elapsedStr := fmt.Sprintf("TIME: %d:%02d", int(s.Elapsed)/60, int(s.Elapsed)%60)
		text.Draw(screen, elapsedStr, hudFont, hudMargin, hudMargin+19, cfg.White)
		hint = "SPACE to jump"
	}
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, fonts.Small.Get(), int(width)-hintWidth-hudMargin, hudMargin+19, cfg.White)

	drawVerdict(screen, s)
}

// drawLives renders one heart per remaining life in the top-left corner.
func drawLives(screen *ebiten.Image, lives int) {
	for i := 0; i < lives; i++ {
		x := float32(hudMargin + i*(heartSize+heartGap))
		y := float32(hudMargin)
		drawHeart(screen, x, y, heartSize)
	}
}

// drawHeart approximates a heart with two lobes and a stacked wedge.
func drawHeart(screen *ebiten.Image, x, y, size float32) {
	r := size / 4
	vector.DrawFilledCircle(screen, x+r, y+r, r, cfg.HeartRed, false)
	vector.DrawFilledCircle(screen, x+3*r, y+r, r, cfg.HeartRed, false)
	// Taper the lower half with narrowing slabs.
	rows := int(size / 2)
	for i := 0; i < rows; i++ {
		inset := float32(i) * 2 * r / float32(rows)
		vector.DrawFilledRect(screen,
			x+inset/2, y+r+float32(i),
			size-inset, 1.5,
			cfg.HeartRed, false)
	}
}

// drawVerdict shows the most recent background classification. The
// verdict is advisory only; nothing in the round reads it back.
func drawVerdict(screen *ebiten.Image, s *components.SessionData) {
	if s.Recognizer == nil {
		return
	}
	label, confidence, ok := s.Recognizer.Last()
	if !ok {
		return
	}
	verdict := fmt.Sprintf("last apple: %s (%.0f%%)", label, confidence*100)
	text.Draw(screen, verdict, fonts.Small.Get(), hudMargin, cfg.C.Height-hudMargin, cfg.White)
}

// DrawGameOver renders the end-of-round overlay with final totals and
// the restart prompt.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	s := components.Session.Get(sessionEntry)
	if s.Phase != cfg.PhaseEnded {
		return
	}

	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.OverlayShade, false)

	title := "GAME OVER"
	titleWidth := len(title) * 24
	text.Draw(screen, title, fonts.Title.Get(), int(width/2)-titleWidth/2, int(height/2)-80, cfg.HeartRed)

	hudFont := fonts.HUD.Get()
	var total string
	if s.Mode == cfg.ModeRunner {
		total = fmt.Sprintf("Final points: %d", s.Points)
	} else {
		total = fmt.Sprintf("Final score: %d", s.Score)
	}
	lines := []string{
		total,
		fmt.Sprintf("Good apples: %d   Rotten apples: %d", s.GoodCollected, s.RottenCollected),
		fmt.Sprintf("Time survived: %d:%02d", int(s.Elapsed)/60, int(s.Elapsed)%60),
	}
	for i, line := range lines {
		lineWidth := len(line) * 9
		text.Draw(screen, line, hudFont, int(width/2)-lineWidth/2, int(height/2)-20+i*26, cfg.White)
	}

	hint := "Press SPACE to restart  |  ESC to quit"
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, fonts.Small.Get(), int(width/2)-hintWidth/2, int(height/2)+70, cfg.Gold)
}
