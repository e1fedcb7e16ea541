// Package termbox hosts the snake game on a raw terminal through termbox-go.
package termbox

import (
	"context"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	tb "github.com/nsf/termbox-go"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

// cellWidth is the number of terminal columns per grid cell.
const cellWidth = 2

// terminal is the subset of termbox the screen draws through.
type terminal interface {
	SetCell(x, y int, ch rune, fg, bg tb.Attribute)
	Clear(fg, bg tb.Attribute) error
	Flush() error
	Size() (int, int)
}

// termboxTerminal forwards to the termbox package functions.
type termboxTerminal struct{}

func (termboxTerminal) SetCell(x, y int, ch rune, fg, bg tb.Attribute) { tb.SetCell(x, y, ch, fg, bg) }
func (termboxTerminal) Clear(fg, bg tb.Attribute) error                { return tb.Clear(fg, bg) }
func (termboxTerminal) Flush() error                                   { return tb.Flush() }
func (termboxTerminal) Size() (int, int)                               { return tb.Size() }

// palette holds the attributes for each cell role.
type palette struct {
	snake, food, border tb.Attribute
}

// newPalette converts the configured hex colours to RGB attributes, falling
// back to the basic terminal colours when a value does not parse.
func newPalette(cfg snake.Config) palette {
	return palette{
		snake:  hexAttribute(cfg.SnakeColor, tb.ColorGreen),
		food:   hexAttribute(cfg.FoodColor, tb.ColorRed),
		border: tb.ColorWhite,
	}
}

func hexAttribute(hex string, fallback tb.Attribute) tb.Attribute {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return tb.RGBToAttribute(r, g, b)
}

// Screen draws the board straight into the termbox back buffer. It is the
// game's renderer and its UI; Flush pushes a finished frame to the terminal.
type Screen struct {
	term       terminal
	cols, rows int
	colors     palette

	score    int
	playing  bool
	gameOver bool
	final    int
}

// NewScreen creates a screen for cfg's grid.
func NewScreen(cfg snake.Config) *Screen {
	return newScreen(termboxTerminal{}, cfg)
}

func newScreen(term terminal, cfg snake.Config) *Screen {
	return &Screen{
		term:   term,
		cols:   cfg.Cols(),
		rows:   cfg.Rows(),
		colors: newPalette(cfg),
	}
}

// Initialize checks that the board and the status line fit the terminal.
// termbox must already be initialized.
func (s *Screen) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w, h := s.term.Size()
	needW, needH := s.cols*cellWidth+2, s.rows+3
	if w < needW || h < needH {
		return fmt.Errorf("termbox: terminal %dx%d too small for board, need %dx%d", w, h, needW, needH)
	}
	return nil
}

// Clear wipes the buffer and redraws the border and the status line.
func (s *Screen) Clear() {
	//nolint:errcheck // Clear only fails before Init, which Initialize rules out
	s.term.Clear(tb.ColorDefault, tb.ColorDefault)

	right, bottom := s.cols*cellWidth+1, s.rows+1
	for x := 1; x < right; x++ {
		s.term.SetCell(x, 0, '─', s.colors.border, tb.ColorDefault)
		s.term.SetCell(x, bottom, '─', s.colors.border, tb.ColorDefault)
	}
	for y := 1; y < bottom; y++ {
		s.term.SetCell(0, y, '│', s.colors.border, tb.ColorDefault)
		s.term.SetCell(right, y, '│', s.colors.border, tb.ColorDefault)
	}
	s.term.SetCell(0, 0, '┌', s.colors.border, tb.ColorDefault)
	s.term.SetCell(right, 0, '┐', s.colors.border, tb.ColorDefault)
	s.term.SetCell(0, bottom, '└', s.colors.border, tb.ColorDefault)
	s.term.SetCell(right, bottom, '┘', s.colors.border, tb.ColorDefault)

	s.drawStatus()
}

// DrawSnake paints the segments.
func (s *Screen) DrawSnake(segments []core.Position) {
	for i, p := range segments {
		fg := s.colors.snake
		if i == 0 {
			fg |= tb.AttrBold
		}
		s.fill(p, '█', '█', fg)
	}
}

// DrawFood paints the food.
func (s *Screen) DrawFood(p core.Position) {
	s.fill(p, '◎', ' ', s.colors.food)
}

// Destroy is a no-op; Backend.Run owns termbox.Close.
func (s *Screen) Destroy() error {
	return nil
}

func (s *Screen) fill(p core.Position, left, right rune, fg tb.Attribute) {
	if p.X < 0 || p.X >= s.cols || p.Y < 0 || p.Y >= s.rows {
		return
	}
	x, y := 1+p.X*cellWidth, 1+p.Y
	s.term.SetCell(x, y, left, fg, tb.ColorDefault)
	s.term.SetCell(x+1, y, right, fg, tb.ColorDefault)
}

// UpdateScore shows the new score.
func (s *Screen) UpdateScore(score int) {
	s.score = score
	s.drawStatus()
}

// UpdateStartButton switches the start/pause hint.
func (s *Screen) UpdateStartButton(playing bool) {
	s.playing = playing
	if playing {
		s.gameOver = false
	}
	s.drawStatus()
}

// ShowGameOver shows the final score until the next start.
func (s *Screen) ShowGameOver(score int) {
	s.gameOver = true
	s.final = score
	s.playing = false
	s.drawStatus()
}

// Reset zeroes the score display.
func (s *Screen) Reset() {
	s.score = 0
	s.drawStatus()
}

// Status returns the text of the status line.
func (s *Screen) Status() string {
	if s.gameOver {
		return fmt.Sprintf("GAME OVER  Score: %d  [space] new game  [q] quit", s.final)
	}
	label := "start"
	if s.playing {
		label = "pause"
	}
	return fmt.Sprintf("Score: %d  [space] %s  [r] reset  [q] quit", s.score, label)
}

func (s *Screen) drawStatus() {
	y := s.rows + 2
	width := s.cols*cellWidth + 2
	fg := tb.ColorDefault
	if s.gameOver {
		fg = s.colors.food | tb.AttrBold
	}

	x := 0
	for _, r := range s.Status() {
		s.term.SetCell(x, y, r, fg, tb.ColorDefault)
		x++
	}
	for ; x < width; x++ {
		s.term.SetCell(x, y, ' ', tb.ColorDefault, tb.ColorDefault)
	}
}

// Flush pushes the buffer to the terminal.
func (s *Screen) Flush() error {
	return s.term.Flush()
}

var (
	_ snake.Renderer = (*Screen)(nil)
	_ snake.UI       = (*Screen)(nil)
)
