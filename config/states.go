package config

import "github.com/yohamta/donburi/ecs"

// StateID identifies a player animation state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walking
	Jumping
	Picking
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	case Picking:
		return "picking"
	default:
		return "none"
	}
}

// ModeID selects which of the two game variants a round runs.
type ModeID int

const (
	ModeCatch ModeID = iota
	ModeRunner
)

func (m ModeID) String() string {
	if m == ModeRunner {
		return "runner"
	}
	return "catch"
}

// ParseMode maps a stored mode name back to its ID. Unknown names fall
// back to catch.
func ParseMode(s string) ModeID {
	if s == "runner" {
		return ModeRunner
	}
	return ModeCatch
}

// SessionPhase is the round-level state machine: playing <-> ended.
type SessionPhase int

const (
	PhasePlaying SessionPhase = iota
	PhaseEnded
)

// Default is the single render layer.
const Default = ecs.LayerID(0)
