package snake

import "github.com/vovakirdan/snake/internal/core"

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Round     int
	RoundID   string
	Ticks     uint64 // Committed moves this round
	State     RunState
	Score     int
	Segments  []core.Position
	Direction core.Direction
	Food      core.Position
	LastCause Cause // Why the previous round ended
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:     g.round,
		RoundID:   g.roundID,
		Ticks:     g.ticks,
		State:     g.state,
		Score:     g.score,
		Segments:  g.snake.Segments(),
		Direction: g.snake.Direction(),
		Food:      g.food.Position(),
		LastCause: g.lastCause,
	}
}

// Head returns the head position of the snapshot.
func (s Snapshot) Head() core.Position {
	if len(s.Segments) == 0 {
		return core.Position{}
	}
	return s.Segments[0]
}
