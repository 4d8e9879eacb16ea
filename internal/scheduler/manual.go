package scheduler

import (
	"sort"
	"time"
)

type manualTimer struct {
	id  TimerID
	due time.Duration
	seq uint64
	fn  func()
}

// Manual is a deterministic Scheduler for tests and for hosts that pump
// their own tick loop. Nothing fires until the owner calls Frame or
// Advance.
type Manual struct {
	nextID uint64
	now    time.Duration
	frames []frameEntry
	timers []manualTimer
}

// NewManual creates an empty Manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// RequestFrame queues fn for the next Frame call.
func (m *Manual) RequestFrame(fn func()) FrameID {
	m.nextID++
	id := FrameID(m.nextID)
	m.frames = append(m.frames, frameEntry{id: id, fn: fn})
	return id
}

// CancelFrame removes a pending frame callback.
func (m *Manual) CancelFrame(id FrameID) {
	for i, e := range m.frames {
		if e.id == id {
			m.frames = append(m.frames[:i], m.frames[i+1:]...)
			return
		}
	}
}

// SetTimeout queues fn to run once Advance has moved the clock by d.
func (m *Manual) SetTimeout(d time.Duration, fn func()) TimerID {
	m.nextID++
	id := TimerID(m.nextID)
	m.timers = append(m.timers, manualTimer{id: id, due: m.now + d, seq: m.nextID, fn: fn})
	return id
}

// ClearTimeout cancels a pending timeout.
func (m *Manual) ClearTimeout(id TimerID) {
	for i, t := range m.timers {
		if t.id == id {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Frame runs the frame callbacks queued so far, in request order. Frames
// requested while the batch runs land in the next batch.
func (m *Manual) Frame() {
	batch := m.frames
	m.frames = nil
	for _, e := range batch {
		e.fn()
	}
}

// Advance moves the clock forward by d and fires every timeout that comes
// due, in due-then-request order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		var due []manualTimer
		var rest []manualTimer
		for _, t := range m.timers {
			if t.due <= target {
				due = append(due, t)
			} else {
				rest = append(rest, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].due != due[j].due {
				return due[i].due < due[j].due
			}
			return due[i].seq < due[j].seq
		})
		m.timers = rest
		for _, t := range due {
			m.now = t.due
			t.fn()
		}
	}
	m.now = target
}

// PendingFrames reports how many frame callbacks are queued.
func (m *Manual) PendingFrames() int {
	return len(m.frames)
}

// PendingTimers reports how many timeouts are queued.
func (m *Manual) PendingTimers() int {
	return len(m.timers)
}
