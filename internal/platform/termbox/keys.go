package termbox

import (
	tb "github.com/nsf/termbox-go"

	"github.com/vovakirdan/snake/internal/core"
)

var keyActions = map[tb.Key]core.Action{
	tb.KeyArrowUp:    core.ActionUp,
	tb.KeyArrowDown:  core.ActionDown,
	tb.KeyArrowLeft:  core.ActionLeft,
	tb.KeyArrowRight: core.ActionRight,
	tb.KeySpace:      core.ActionToggle,
	tb.KeyCtrlC:      core.ActionQuit,
	tb.KeyEsc:        core.ActionQuit,
}

var runeActions = map[rune]core.Action{
	'w': core.ActionUp,
	's': core.ActionDown,
	'a': core.ActionLeft,
	'd': core.ActionRight,
	' ': core.ActionToggle,
	'r': core.ActionReset,
	'q': core.ActionQuit,
}

// MapKey translates a termbox key event to a game action.
func MapKey(ev tb.Event) core.Action {
	if ev.Ch != 0 {
		return runeActions[ev.Ch]
	}
	return keyActions[ev.Key]
}
