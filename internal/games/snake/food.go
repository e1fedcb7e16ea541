package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/snake/internal/core"
)

// ErrBoardFull is returned when no free cell remains for food.
var ErrBoardFull = errors.New("snake: board full")

// Occupier reports which cells are taken. *Snake satisfies it.
type Occupier interface {
	Occupies(p core.Position) bool
	Len() int
}

// Food is a single pellet on the board.
type Food struct {
	pos         core.Position
	cols, rows  int
	maxAttempts int
	rng         *rand.Rand
}

// NewFood creates a pellet at a random cell of a cols x rows grid.
// Call Regenerate against the snake before relying on disjointness.
func NewFood(cols, rows, maxAttempts int, rng *rand.Rand) *Food {
	f := &Food{
		cols:        cols,
		rows:        rows,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
	f.pos = f.randomCell()
	return f
}

// Position returns the current pellet cell.
func (f *Food) Position() core.Position {
	return f.pos
}

// Regenerate moves the pellet to a uniformly random cell not occupied.
// Draws are rejection sampled up to the attempt cap, then the free cells are
// enumerated. If every cell is occupied the position is left unchanged and
// ErrBoardFull is returned.
func (f *Food) Regenerate(occupied Occupier) error {
	if occupied.Len() >= f.cols*f.rows {
		return ErrBoardFull
	}

	for i := 0; i < f.maxAttempts; i++ {
		candidate := f.randomCell()
		if !occupied.Occupies(candidate) {
			f.pos = candidate
			return nil
		}
	}

	// Sampling gave up on a crowded board: pick among the free cells directly
	free := make([]core.Position, 0, f.cols*f.rows-occupied.Len())
	for y := 0; y < f.rows; y++ {
		for x := 0; x < f.cols; x++ {
			p := core.Pos(x, y)
			if !occupied.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	f.pos = free[f.rng.Intn(len(free))]
	return nil
}

func (f *Food) randomCell() core.Position {
	return core.Pos(f.rng.Intn(f.cols), f.rng.Intn(f.rows))
}
