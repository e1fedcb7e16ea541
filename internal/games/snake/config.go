package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snake/internal/core"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config is the immutable description of a board and its rules.
// It is passed by value into every constructor; nothing reads it globally.
type Config struct {
	Width    int // Board width in pixels
	Height   int // Board height in pixels
	CellSize int // Pixel size of one grid cell

	TickInterval   time.Duration // Fixed game-logic interval
	ScoreIncrement int           // Points per food eaten

	InitialPosition  core.Position
	InitialDirection core.Direction

	// MaxFoodAttempts caps rejection sampling before food placement falls
	// back to scanning the free cells.
	MaxFoodAttempts int

	// TailVacates selects TailVacatingSelfCollision instead of the strict rule.
	TailVacates bool

	// BlockReversal drops direction changes that would reverse into the neck.
	BlockReversal bool

	SnakeColor string // Hex colour, e.g. "#4CAF50"
	FoodColor  string
}

// DefaultConfig returns a 600x400 board of 20px cells: 30 columns by 20 rows.
func DefaultConfig() Config {
	return Config{
		Width:            600,
		Height:           400,
		CellSize:         20,
		TickInterval:     100 * time.Millisecond,
		ScoreIncrement:   10,
		InitialPosition:  core.Pos(2, 2),
		InitialDirection: core.DirRight,
		MaxFoodAttempts:  1024,
		SnakeColor:       "#4CAF50",
		FoodColor:        "#FF5722",
	}
}

// Cols returns the number of grid columns.
func (c Config) Cols() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Width / c.CellSize
}

// Rows returns the number of grid rows.
func (c Config) Rows() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.Height / c.CellSize
}

// Bounds returns the playable area in cell coordinates.
func (c Config) Bounds() core.Rect {
	return core.NewRect(0, 0, c.Cols(), c.Rows())
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.Cols() < 1 || c.Rows() < 1:
		return fmt.Errorf("%w: board %dx%d px holds no %dpx cells", ErrInvalidConfig, c.Width, c.Height, c.CellSize)
	case c.Bounds().Area() < 2:
		return fmt.Errorf("%w: board needs at least 2 cells, got %d", ErrInvalidConfig, c.Bounds().Area())
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	case c.ScoreIncrement < 0:
		return fmt.Errorf("%w: score increment must not be negative, got %d", ErrInvalidConfig, c.ScoreIncrement)
	case !c.Bounds().ContainsPosition(c.InitialPosition):
		return fmt.Errorf("%w: initial position %v outside %dx%d grid", ErrInvalidConfig, c.InitialPosition, c.Cols(), c.Rows())
	case !c.InitialDirection.Valid():
		return fmt.Errorf("%w: unknown initial direction %d", ErrInvalidConfig, int(c.InitialDirection))
	case c.MaxFoodAttempts < 1:
		return fmt.Errorf("%w: max food attempts must be at least 1, got %d", ErrInvalidConfig, c.MaxFoodAttempts)
	}
	return nil
}
