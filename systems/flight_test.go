package systems

import (
	"math"
	"testing"

	"github.com/harvestgames/orchard/components"
	cfg "github.com/harvestgames/orchard/config"
	"github.com/harvestgames/orchard/systems/factory"
)

func TestFlightPositionEndpoints(t *testing.T) {
	start := components.Vector{X: 700, Y: 400}
	end := components.Vector{X: 100, Y: 80}

	if got := FlightPosition(start, end, 60, 0); got != start {
		t.Errorf("t=0 should be the start point, got %+v", got)
	}
	got := FlightPosition(start, end, 60, 1)
	if math.Abs(got.X-end.X) > 1e-9 || math.Abs(got.Y-end.Y) > 1e-9 {
		t.Errorf("t=1 should be the end point, got %+v", got)
	}
}

func TestFlightPositionArcsAboveChord(t *testing.T) {
	start := components.Vector{X: 700, Y: 400}
	end := components.Vector{X: 100, Y: 80}
	arc := 60.0

	mid := FlightPosition(start, end, arc, 0.5)
	chordY := start.Y + (end.Y-start.Y)*0.5
	if math.Abs(mid.Y-(chordY-arc)) > 1e-9 {
		t.Errorf("midpoint should sit one arc height above the chord: y=%v want %v", mid.Y, chordY-arc)
	}

	// The whole path stays on or above the straight line.
	for _, tt := range []float64{0.1, 0.25, 0.75, 0.9} {
		p := FlightPosition(start, end, arc, tt)
		lineY := start.Y + (end.Y-start.Y)*tt
		if p.Y > lineY {
			t.Errorf("t=%v: path dipped below the chord (%v > %v)", tt, p.Y, lineY)
		}
	}
}

func TestFlightFinishesAndDespawns(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	start := components.Vector{X: 700, Y: 400}
	end := components.Vector{X: 100, Y: 80}
	factory.SpawnFlight(e, start, end, cfg.Catch.FlightArc, nil)

	ticks := int(cfg.Flight.Duration*float64(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateFlights(e)
	}

	if got := countFlights(e); got != 0 {
		t.Errorf("flight should despawn after %v seconds, %d remain", cfg.Flight.Duration, got)
	}
}

func TestFlightPositionTracksTween(t *testing.T) {
	e := newTestRound(cfg.ModeCatch)
	start := components.Vector{X: 600, Y: 300}
	end := components.Vector{X: 100, Y: 80}
	entry := factory.SpawnFlight(e, start, end, 50, nil)

	UpdateFlights(e)

	f := components.Flight.Get(entry)
	dt := cfg.C.Dt()
	want := FlightPosition(start, end, 50, dt/cfg.Flight.Duration)
	if math.Abs(f.Pos.X-want.X) > 0.01 || math.Abs(f.Pos.Y-want.Y) > 0.01 {
		t.Errorf("after one tick pos=%+v want %+v", f.Pos, want)
	}
}
