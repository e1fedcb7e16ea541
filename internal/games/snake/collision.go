package snake

import "github.com/vovakirdan/snake/internal/core"

// CollisionRule reports whether a candidate head runs into the body.
// It is evaluated against the segments before the move is committed.
type CollisionRule func(s *Snake, head core.Position) bool

// StrictSelfCollision checks every current segment, tail included. A head
// stepping onto the tail is a collision even though the tail would move away
// this tick.
func StrictSelfCollision(s *Snake, head core.Position) bool {
	return s.Occupies(head)
}

// TailVacatingSelfCollision ignores the tail cell, which is freed by the same
// move. Food never sits on the snake, so a move onto the tail never grows.
func TailVacatingSelfCollision(s *Snake, head core.Position) bool {
	n := s.Len()
	for i, seg := range s.segments {
		if i == n-1 && n > 1 {
			break
		}
		if seg == head {
			return true
		}
	}
	return false
}

// Cause is why a round ended.
type Cause string

const (
	CauseNone      Cause = ""
	CauseWall      Cause = "wall"
	CauseSelf      Cause = "self"
	CauseBoardFull Cause = "board_full"
)
