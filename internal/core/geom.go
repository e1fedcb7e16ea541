// Package core provides the grid primitives shared by the snake game and its
// platform backends. It has no UI dependencies so game logic stays pure and
// testable.
package core

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate on the board grid.
// Coordinates outside the board are collision candidates, never stored state.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position translated by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset applied to a position moving in d.
func (d Direction) Delta() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	case DirRight:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("core: unknown direction %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("core: invalid direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPosition is Contains for a Position.
func (r Rect) ContainsPosition(p Position) bool {
	return r.Contains(p.X, p.Y)
}
