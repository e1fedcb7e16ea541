package snake

import "github.com/vovakirdan/snake/internal/core"

// Snake is an ordered run of occupied cells, head first, plus a heading.
// It never validates moves: the Game refuses moves that would overlap.
type Snake struct {
	segments []core.Position // Head at index 0
	dir      core.Direction

	start    core.Position
	startDir core.Direction
}

// NewSnake creates a one-segment snake at start heading dir.
func NewSnake(start core.Position, dir core.Direction) *Snake {
	s := &Snake{start: start, startDir: dir}
	s.Reset()
	return s
}

// Head returns the most recently committed segment.
func (s *Snake) Head() core.Position {
	return s.segments[0]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() core.Position {
	return s.segments[len(s.segments)-1]
}

// Neck returns the segment behind the head, if any.
func (s *Snake) Neck() (core.Position, bool) {
	if len(s.segments) < 2 {
		return core.Position{}, false
	}
	return s.segments[1], true
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// SetDirection overwrites the heading. It affects the next computed head only.
func (s *Snake) SetDirection(d core.Direction) {
	s.dir = d
}

// CommitMove prepends a new head. It is the only way the snake grows.
func (s *Snake) CommitMove(head core.Position) {
	s.segments = append(s.segments, core.Position{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = head
}

// ShrinkTail drops the oldest segment. A one-segment snake is left as is.
func (s *Snake) ShrinkTail() {
	if len(s.segments) > 1 {
		s.segments = s.segments[:len(s.segments)-1]
	}
}

// Occupies reports whether any segment equals p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the segments, head first.
func (s *Snake) Segments() []core.Position {
	out := make([]core.Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Reset restores the single-segment start state and heading.
func (s *Snake) Reset() {
	s.segments = []core.Position{s.start}
	s.dir = s.startDir
}
