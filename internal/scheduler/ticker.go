package scheduler

import (
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60fps paint cycle.
const DefaultFrameInterval = 16 * time.Millisecond

type frameEntry struct {
	id FrameID
	fn func()
}

// Ticker is the wall-clock Scheduler. Frame requests are coalesced: the
// first request arms a timer for the frame interval, and every callback
// queued before it fires runs in that batch, in request order.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	nextID   uint64
	frames   []frameEntry
	frameT   *time.Timer
	timers   map[TimerID]*time.Timer
	stopped  bool
}

// NewTicker creates a Ticker firing frames every interval. A zero or
// negative interval falls back to DefaultFrameInterval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Ticker{
		interval: interval,
		timers:   make(map[TimerID]*time.Timer),
	}
}

// RequestFrame queues fn for the next frame batch.
func (t *Ticker) RequestFrame(fn func()) FrameID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return 0
	}
	t.nextID++
	id := FrameID(t.nextID)
	t.frames = append(t.frames, frameEntry{id: id, fn: fn})
	if t.frameT == nil {
		t.frameT = time.AfterFunc(t.interval, t.flushFrames)
	}
	return id
}

// CancelFrame removes a pending frame callback.
func (t *Ticker) CancelFrame(id FrameID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, e := range t.frames {
		if e.id == id {
			t.frames = append(t.frames[:i], t.frames[i+1:]...)
			return
		}
	}
}

// SetTimeout queues fn to run once after d.
func (t *Ticker) SetTimeout(d time.Duration, fn func()) TimerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return 0
	}
	t.nextID++
	id := TimerID(t.nextID)
	t.timers[id] = time.AfterFunc(d, func() {
		t.mu.Lock()
		_, live := t.timers[id]
		delete(t.timers, id)
		stopped := t.stopped
		t.mu.Unlock()
		if live && !stopped {
			fn()
		}
	})
	return id
}

// ClearTimeout cancels a pending timeout.
func (t *Ticker) ClearTimeout(id TimerID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
}

// Stop cancels every pending frame and timeout. The Ticker accepts no new
// work afterwards.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.frames = nil
	if t.frameT != nil {
		t.frameT.Stop()
		t.frameT = nil
	}
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

func (t *Ticker) flushFrames() {
	t.mu.Lock()
	batch := t.frames
	t.frames = nil
	t.frameT = nil
	stopped := t.stopped
	t.mu.Unlock()
	if stopped {
		return
	}
	for _, e := range batch {
		e.fn()
	}
}
