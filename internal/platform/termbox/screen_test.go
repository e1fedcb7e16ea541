package termbox

import (
	"context"
	"strings"
	"testing"

	tb "github.com/nsf/termbox-go"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
)

type fakeCell struct {
	ch rune
	fg tb.Attribute
}

// fakeTerminal is an in-memory termbox back buffer.
type fakeTerminal struct {
	w, h    int
	cells   map[[2]int]fakeCell
	flushes int
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{w: w, h: h, cells: make(map[[2]int]fakeCell)}
}

func (f *fakeTerminal) SetCell(x, y int, ch rune, fg, _ tb.Attribute) {
	f.cells[[2]int{x, y}] = fakeCell{ch: ch, fg: fg}
}

func (f *fakeTerminal) Clear(tb.Attribute, tb.Attribute) error {
	f.cells = make(map[[2]int]fakeCell)
	return nil
}

func (f *fakeTerminal) Flush() error {
	f.flushes++
	return nil
}

func (f *fakeTerminal) Size() (int, int) {
	return f.w, f.h
}

func (f *fakeTerminal) row(y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		if c, ok := f.cells[[2]int{x, y}]; ok {
			sb.WriteRune(c.ch)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func smallConfig() snake.Config {
	cfg := snake.DefaultConfig()
	cfg.Width, cfg.Height = 80, 60 // 4x3 grid
	return cfg
}

func TestScreenDraw(t *testing.T) {
	term := newFakeTerminal(80, 24)
	s := newScreen(term, smallConfig())

	s.Clear()
	s.DrawSnake([]core.Position{core.Pos(1, 0), core.Pos(0, 0)})
	s.DrawFood(core.Pos(3, 2))

	expected := []string{
		"┌────────┐",
		"│████    │",
		"│        │",
		"│      ◎ │",
		"└────────┘",
	}
	for y, want := range expected {
		if got := term.row(y, 10); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}

	head := term.cells[[2]int{3, 1}]
	if head.fg&tb.AttrBold == 0 {
		t.Error("head should be bold")
	}
	if body := term.cells[[2]int{1, 1}]; body.fg&tb.AttrBold != 0 {
		t.Error("body should not be bold")
	}
	if got := term.row(5, 12); !strings.HasPrefix(got, "Score: 0") {
		t.Errorf("status row = %q", got)
	}
}

func TestScreenStatus(t *testing.T) {
	s := newScreen(newFakeTerminal(80, 24), smallConfig())

	s.UpdateStartButton(true)
	s.UpdateScore(30)
	if !strings.HasPrefix(s.Status(), "Score: 30  [space] pause") {
		t.Errorf("Status() = %q", s.Status())
	}

	s.ShowGameOver(30)
	s.Reset()
	if !strings.HasPrefix(s.Status(), "GAME OVER  Score: 30") {
		t.Errorf("Status() = %q, expected game over", s.Status())
	}

	s.UpdateStartButton(true)
	if !strings.HasPrefix(s.Status(), "Score: 0  [space] pause") {
		t.Errorf("Status() = %q after restart", s.Status())
	}
}

func TestScreenInitialize(t *testing.T) {
	cfg := snake.DefaultConfig() // 30x20 grid needs 62x23

	if err := newScreen(newFakeTerminal(62, 23), cfg).Initialize(context.Background()); err != nil {
		t.Errorf("Initialize() error = %v, expected fit", err)
	}
	if err := newScreen(newFakeTerminal(61, 23), cfg).Initialize(context.Background()); err == nil {
		t.Error("Initialize() should reject a narrow terminal")
	}
	if err := newScreen(newFakeTerminal(62, 22), cfg).Initialize(context.Background()); err == nil {
		t.Error("Initialize() should reject a short terminal")
	}
}

func TestHexAttribute(t *testing.T) {
	if got := hexAttribute("#4CAF50", tb.ColorGreen); got != tb.RGBToAttribute(0x4C, 0xAF, 0x50) {
		t.Errorf("hexAttribute(#4CAF50) = %v", got)
	}
	if got := hexAttribute("green", tb.ColorGreen); got != tb.ColorGreen {
		t.Errorf("hexAttribute(green) = %v, expected fallback", got)
	}
}

func TestScreenDrivesGame(t *testing.T) {
	term := newFakeTerminal(80, 24)
	cfg := smallConfig()
	s := newScreen(term, cfg)
	input := core.NewDispatcher()
	loop := core.NewFrameLoop()

	g, err := snake.New(cfg, s, input, s, loop, snake.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := term.row(3, 10); !strings.Contains(term.row(1, 10)+term.row(2, 10)+got, "◎") {
		t.Error("initial render should draw the food")
	}

	input.Dispatch(core.ActionToggle)
	if !strings.Contains(s.Status(), "pause") {
		t.Errorf("Status() = %q after toggle", s.Status())
	}
}
