package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, core.ActionDown, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionToggle, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionReset, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := keys.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() has %d bindings, expected 8", total)
	}
}
