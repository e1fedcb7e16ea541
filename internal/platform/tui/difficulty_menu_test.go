package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake/internal/config"
)

func menuKey(t *testing.T, m DifficultyModel, msg tea.KeyMsg) (DifficultyModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(DifficultyModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected DifficultyModel", next)
	}
	return model, cmd
}

func TestDifficultyMenuStartsOnCurrentPreset(t *testing.T) {
	file := config.Default()
	file.Difficulty = config.DifficultyHard

	m := NewDifficultyModel(file, 80)
	if m.presets[m.cursor] != config.DifficultyHard {
		t.Errorf("cursor on %s, expected hard", m.presets[m.cursor])
	}
}

func TestDifficultyMenuSelect(t *testing.T) {
	m := NewDifficultyModel(config.Default(), 80)

	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp}) // clamps at the top
	if _, ok := m.Selected(); ok {
		t.Fatal("Selected() reported a choice before enter")
	}

	m, cmd := menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit the menu")
	}
	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyEasy {
		t.Errorf("Selected() = (%s, %v), expected (easy, true)", preset, ok)
	}
}

func TestDifficultyMenuQuit(t *testing.T) {
	m := NewDifficultyModel(config.Default(), 80)

	m, _ = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if _, ok := m.Selected(); ok {
		t.Error("quitting should not select a preset")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestDifficultyMenuView(t *testing.T) {
	view := NewDifficultyModel(config.Default(), 80).View()

	for _, want := range []string{"easy", "150ms", "normal", "100ms", "hard", "60ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
