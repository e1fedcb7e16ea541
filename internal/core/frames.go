package core

import "time"

// FrameID identifies a requested frame callback.
type FrameID uint64

// FrameFunc is invoked once per display frame with the frame timestamp.
type FrameFunc func(now time.Time)

// FrameLoop schedules one-shot frame callbacks for a display-driven host.
// The host calls Fire once per refresh; each callback runs at most once and
// must re-request itself to keep animating. Callbacks requested while Fire is
// running wait for the next frame. Not safe for concurrent use.
type FrameLoop struct {
	nextID  FrameID
	pending []pendingFrame
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// NewFrameLoop creates an empty frame loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// RequestFrame queues fn for the next Fire.
func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameID {
	l.nextID++
	l.pending = append(l.pending, pendingFrame{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame drops a queued callback. Unknown or already fired IDs are ignored.
func (l *FrameLoop) CancelFrame(id FrameID) {
	for i, p := range l.pending {
		if p.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// Fire runs every callback queued before the call and returns how many ran.
func (l *FrameLoop) Fire(now time.Time) int {
	batch := l.pending
	l.pending = nil
	for _, p := range batch {
		p.fn(now)
	}
	return len(batch)
}

// IntervalGate decides when a fixed-interval update is due.
// Frames arriving faster than the interval are skipped; there is no catch-up,
// a late frame runs one update and re-baselines at its own timestamp.
type IntervalGate struct {
	interval time.Duration
	last     time.Time
}

// NewIntervalGate creates a gate for the given interval.
func NewIntervalGate(interval time.Duration) *IntervalGate {
	return &IntervalGate{interval: interval}
}

// Interval returns the configured interval.
func (g *IntervalGate) Interval() time.Duration {
	return g.interval
}

// Due reports whether at least one interval elapsed since the last committed
// tick. A gate with no baseline is always due.
func (g *IntervalGate) Due(now time.Time) bool {
	return g.last.IsZero() || now.Sub(g.last) >= g.interval
}

// Commit records now as the last tick.
func (g *IntervalGate) Commit(now time.Time) {
	g.last = now
}

// Reset clears the baseline so the next frame is due immediately.
func (g *IntervalGate) Reset() {
	g.last = time.Time{}
}
