package core

// Color is a semantic colour role for a screen cell. Backends decide how each
// role is painted; the game only says what a cell is.
type Color uint8

const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorBorder
)

func (c Color) String() string {
	switch c {
	case ColorSnakeHead:
		return "snake-head"
	case ColorSnakeBody:
		return "snake-body"
	case ColorFood:
		return "food"
	case ColorBorder:
		return "border"
	default:
		return "default"
	}
}
