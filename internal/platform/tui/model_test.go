package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake/internal/core"
	"github.com/vovakirdan/snake/internal/games/snake"
	"github.com/vovakirdan/snake/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := snake.DefaultConfig()
	board := NewBoard(cfg.Cols(), cfg.Rows())
	board.size = nil

	m, err := newModel(context.Background(), cfg, registry.RunOptions{
		FPS:         30,
		GameOptions: []snake.Option{snake.WithSeed(7)},
	}, board)
	if err != nil {
		t.Fatalf("newModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelDrivesGameFromTicks(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1700000000, 0)

	if m.Init() == nil {
		t.Fatal("Init() should start the tick loop")
	}

	// Idle game ignores ticks
	m, cmd := send(t, m, TickMsg(now))
	if cmd == nil {
		t.Error("TickMsg should schedule the next tick")
	}
	if head := m.Game().Snapshot().Head(); head != core.Pos(2, 2) {
		t.Fatalf("Head() = %v, idle game should not move", head)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Game().Running() {
		t.Fatal("space should start the game")
	}

	m, _ = send(t, m, TickMsg(now.Add(10*time.Millisecond)))
	if head := m.Game().Snapshot().Head(); head != core.Pos(3, 2) {
		t.Fatalf("Head() = %v, expected (3, 2)", head)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, TickMsg(now.Add(50*time.Millisecond)))
	if head := m.Game().Snapshot().Head(); head != core.Pos(3, 2) {
		t.Fatalf("Head() = %v, expected no move before the interval", head)
	}
	m, _ = send(t, m, TickMsg(now.Add(110*time.Millisecond)))
	if head := m.Game().Snapshot().Head(); head != core.Pos(3, 3) {
		t.Errorf("Head() = %v, expected (3, 3)", head)
	}

	if !strings.Contains(m.board.Status(), "Pause") {
		t.Errorf("Status() = %q, expected pause label while running", m.board.Status())
	}
}

func TestModelResetKey(t *testing.T) {
	m := newTestModel(t)
	round := m.Game().Snapshot().Round

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Game().Snapshot().Round != round+1 {
		t.Errorf("Round = %d, expected %d", m.Game().Snapshot().Round, round+1)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("View() missing score panel:\n%s", view)
	}
	if lines := strings.Count(view, "\n"); lines < m.board.Screen().Height() {
		t.Errorf("View() has %d lines, expected at least the board height", lines)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
}

func TestBackendRegistered(t *testing.T) {
	if !registry.Exists(BackendName) {
		t.Fatalf("backend %q not registered", BackendName)
	}
	b, err := registry.Create(BackendName)
	if err != nil {
		t.Fatal(err)
	}
	if b.Name() != "terminal" {
		t.Errorf("Name() = %q, expected terminal", b.Name())
	}
}
