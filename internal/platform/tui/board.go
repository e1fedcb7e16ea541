package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

// ErrTerminalTooSmall is returned by Initialize when the board cannot fit.
var ErrTerminalTooSmall = errors.New("tui: terminal too small for board")

// cellWidth is the number of terminal columns per grid cell, which keeps
// cells roughly square.
const cellWidth = 2

const boardTitle = " SNAKE "

// statusLines is the room reserved under the board for status and help.
const statusLines = 3

// Board draws the game into a core.Screen and keeps the score panel state.
// It is both the game's renderer and its UI.
type Board struct {
	cols, rows int
	screen     *core.Screen

	score     int
	playing   bool
	gameOver  bool
	lastScore int

	// size reports the terminal size; nil skips the fit check.
	size func() (w, h int, err error)
}

// NewBoard creates a board for a cols x rows grid surrounded by a border.
func NewBoard(cols, rows int) *Board {
	return &Board{
		cols:   cols,
		rows:   rows,
		screen: core.NewScreen(cols*cellWidth+2, rows+2),
		size:   stdoutSize,
	}
}

func stdoutSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("stdout is not a terminal")
	}
	return term.GetSize(fd)
}

// Initialize checks that the board fits the terminal.
func (b *Board) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.size == nil {
		return nil
	}
	w, h, err := b.size()
	if err != nil {
		// Not a terminal (tests, pipes): nothing to measure
		return nil
	}
	needW, needH := b.screen.Width(), b.screen.Height()+statusLines
	if w < needW || h < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, needW, needH, w, h)
	}
	return nil
}

// Clear wipes the board and redraws the border and its title.
func (b *Board) Clear() {
	b.screen.Clear()
	b.screen.DrawBox(core.NewRect(0, 0, b.screen.Width(), b.screen.Height()), core.ColorBorder)
	if b.screen.Width() >= len(boardTitle)+3 {
		b.screen.DrawText(2, 0, boardTitle)
	}
}

// DrawSnake paints the segments, head first.
func (b *Board) DrawSnake(segments []core.Position) {
	for i, p := range segments {
		if i == 0 {
			b.fill(p, '█', '█', core.ColorSnakeHead)
			continue
		}
		b.fill(p, '▓', '▓', core.ColorSnakeBody)
	}
}

// DrawFood paints the food cell.
func (b *Board) DrawFood(p core.Position) {
	b.fill(p, '●', ' ', core.ColorFood)
}

// Destroy releases nothing; the terminal belongs to Bubble Tea.
func (b *Board) Destroy() error {
	return nil
}

func (b *Board) fill(p core.Position, left, right rune, c core.Color) {
	if p.X < 0 || p.X >= b.cols || p.Y < 0 || p.Y >= b.rows {
		return
	}
	x, y := 1+p.X*cellWidth, 1+p.Y
	b.screen.SetCell(x, y, left, c)
	b.screen.SetCell(x+1, y, right, c)
}

// UpdateScore shows the new score.
func (b *Board) UpdateScore(score int) {
	b.score = score
}

// UpdateStartButton switches the start/pause label. Starting a game
// dismisses the game-over banner.
func (b *Board) UpdateStartButton(playing bool) {
	b.playing = playing
	if playing {
		b.gameOver = false
	}
}

// ShowGameOver raises the game-over banner.
func (b *Board) ShowGameOver(score int) {
	b.gameOver = true
	b.lastScore = score
	b.playing = false
}

// Reset zeroes the score display.
func (b *Board) Reset() {
	b.score = 0
}

// Screen returns the board buffer.
func (b *Board) Screen() *core.Screen {
	return b.screen
}

// Status returns the one-line score panel.
func (b *Board) Status() string {
	if b.gameOver {
		return fmt.Sprintf("GAME OVER  Score: %d  [space] new game", b.lastScore)
	}
	label := "Start"
	if b.playing {
		label = "Pause"
	}
	return fmt.Sprintf("Score: %d  [space] %s", b.score, label)
}

// GameOver reports whether the banner is showing.
func (b *Board) GameOver() bool {
	return b.gameOver
}

var (
	_ snake.Renderer = (*Board)(nil)
	_ snake.UI       = (*Board)(nil)
)
