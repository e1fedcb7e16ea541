package core

// Action represents a semantic game action, abstracted from physical key presses.
// Backends translate their raw input events into actions; the game never sees
// the raw events.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow
	ActionDown          // S, Down arrow
	ActionLeft          // A, Left arrow
	ActionRight         // D, Right arrow
	ActionToggle        // Space - start/pause
	ActionReset         // R
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the heading for a movement action.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return 0, false
}

type directionHandler struct {
	id int
	fn func(Direction)
}

type toggleHandler struct {
	id int
	fn func()
}

// Dispatcher fans semantic actions out to registered handlers.
// It implements the game's input source contract: handlers subscribe with
// OnDirectionChange / OnGameToggle and release themselves with the returned
// unsubscribe func. Not safe for concurrent use; backends call Dispatch from
// the same goroutine that drives the game.
type Dispatcher struct {
	nextID    int
	direction []directionHandler
	toggle    []toggleHandler
}

// NewDispatcher creates a dispatcher with no subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnDirectionChange registers fn for direction actions.
func (d *Dispatcher) OnDirectionChange(fn func(Direction)) func() {
	d.nextID++
	id := d.nextID
	d.direction = append(d.direction, directionHandler{id: id, fn: fn})
	return func() {
		for i, h := range d.direction {
			if h.id == id {
				d.direction = append(d.direction[:i], d.direction[i+1:]...)
				return
			}
		}
	}
}

// OnGameToggle registers fn for the start/pause action.
func (d *Dispatcher) OnGameToggle(fn func()) func() {
	d.nextID++
	id := d.nextID
	d.toggle = append(d.toggle, toggleHandler{id: id, fn: fn})
	return func() {
		for i, h := range d.toggle {
			if h.id == id {
				d.toggle = append(d.toggle[:i], d.toggle[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered handlers.
func (d *Dispatcher) Subscribers() int {
	return len(d.direction) + len(d.toggle)
}

// Dispatch delivers an action to the matching handlers.
// Returns false for actions the dispatcher does not route (reset, quit, none);
// the backend handles those itself.
func (d *Dispatcher) Dispatch(a Action) bool {
	if dir, ok := a.Direction(); ok {
		handlers := append([]directionHandler(nil), d.direction...)
		for _, h := range handlers {
			h.fn(dir)
		}
		return true
	}
	if a == ActionToggle {
		handlers := append([]toggleHandler(nil), d.toggle...)
		for _, h := range handlers {
			h.fn()
		}
		return true
	}
	return false
}
