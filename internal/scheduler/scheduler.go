package scheduler

import "time"

// FrameID identifies a pending frame callback.
type FrameID uint64

// TimerID identifies a pending timeout.
type TimerID uint64

// Scheduler is the cooperative-timing port the surface controller runs
// against. Frame callbacks fire on the host's next paint opportunity, FIFO
// per scheduler instance. Timeouts fire once after their delay. Both are
// individually cancellable; cancelling an already-fired handle is a no-op.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	SetTimeout(d time.Duration, fn func()) TimerID
	ClearTimeout(id TimerID)
}
