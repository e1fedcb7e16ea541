package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected Direction
		ok       bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionToggle, 0, false},
		{ActionReset, 0, false},
		{ActionNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, ok := tc.action.Direction()
			if ok != tc.ok {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDispatcherRoutesActions(t *testing.T) {
	d := NewDispatcher()

	var dirs []Direction
	toggles := 0
	d.OnDirectionChange(func(dir Direction) { dirs = append(dirs, dir) })
	d.OnGameToggle(func() { toggles++ })

	if !d.Dispatch(ActionLeft) {
		t.Error("Dispatch(Left) should be handled")
	}
	if !d.Dispatch(ActionToggle) {
		t.Error("Dispatch(Toggle) should be handled")
	}
	if d.Dispatch(ActionReset) {
		t.Error("Dispatch(Reset) should be left to the backend")
	}
	if d.Dispatch(ActionQuit) {
		t.Error("Dispatch(Quit) should be left to the backend")
	}

	if len(dirs) != 1 || dirs[0] != DirLeft {
		t.Errorf("direction handler got %v, expected [left]", dirs)
	}
	if toggles != 1 {
		t.Errorf("toggle handler called %d times, expected 1", toggles)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()

	first, second := 0, 0
	unsubFirst := d.OnGameToggle(func() { first++ })
	d.OnGameToggle(func() { second++ })
	unsubDir := d.OnDirectionChange(func(Direction) { t.Error("unsubscribed handler called") })

	if d.Subscribers() != 3 {
		t.Fatalf("Subscribers() = %d, expected 3", d.Subscribers())
	}

	unsubFirst()
	unsubDir()
	unsubDir() // second call is a no-op

	d.Dispatch(ActionToggle)
	d.Dispatch(ActionUp)

	if first != 0 {
		t.Errorf("unsubscribed toggle handler called %d times", first)
	}
	if second != 1 {
		t.Errorf("remaining toggle handler called %d times, expected 1", second)
	}
	if d.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, expected 1", d.Subscribers())
	}
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	var unsub func()
	unsub = d.OnGameToggle(func() {
		calls++
		unsub()
	})
	d.OnGameToggle(func() { calls++ })

	d.Dispatch(ActionToggle)
	if calls != 2 {
		t.Errorf("handlers called %d times, expected 2", calls)
	}

	d.Dispatch(ActionToggle)
	if calls != 3 {
		t.Errorf("handlers called %d times after unsubscribe, expected 3", calls)
	}
}
