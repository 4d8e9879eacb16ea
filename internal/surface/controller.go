package surface

import (
	"sync"
	"time"

	"menusurface/internal/scheduler"
)

// Controller owns the open/close state machine and the autopositioning of
// an anchored floating surface. Every observable effect goes through the
// Adapter; every deferral goes through the Scheduler, so the controller
// itself stays deterministic and host-agnostic.
type Controller struct {
	mu      sync.Mutex
	adapter Adapter
	sched   scheduler.Scheduler

	state        OpenState
	quickOpen    bool
	anchorCorner Corner
	anchorMargin Margin

	destroyed bool
	// generation stamps scheduled work; a superseding transition bumps it
	// so callbacks queued for the old transition become no-ops.
	generation uint64

	frames []scheduler.FrameID
	timers []scheduler.TimerID
}

// New creates a controller in the closed state. Call Init before use.
func New(adapter Adapter, sched scheduler.Scheduler) *Controller {
	return &Controller{
		adapter:      adapter,
		sched:        sched,
		state:        StateClosed,
		anchorCorner: CornerTopStart,
	}
}

// Init verifies the root marker, seeds state from the element's current
// markers and registers the interaction handler. A missing root marker is
// a wiring bug and fails with a PreconditionError.
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.adapter.HasClass(RootClass) {
		return &PreconditionError{Missing: RootClass}
	}
	if c.adapter.HasClass(OpenClass) {
		c.state = StateOpen
		c.adapter.RegisterBodyClickHandler(c.handleBodyClick)
	} else {
		c.state = StateClosed
	}
	c.adapter.RegisterInteractionHandler(c.handleInteraction)
	return nil
}

// SetQuickOpen disables or re-enables the open/close animations. Takes
// effect on the next Open or Close.
func (c *Controller) SetQuickOpen(quick bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quickOpen = quick
}

// SetAnchorCorner picks which anchor corner the surface attaches to.
// Takes effect on the next Open.
func (c *Controller) SetAnchorCorner(corner Corner) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorCorner = corner
}

// SetAnchorMargin spaces the surface away from the anchor. Takes effect
// on the next Open.
func (c *Controller) SetAnchorMargin(margin Margin) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchorMargin = margin
}

// IsOpen reports whether the surface is visible or interactable, not
// whether an animation has finished. It turns true the moment Open is
// called and stays true until the close transition has fully elapsed.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != StateClosed
}

// State returns the current lifecycle state.
func (c *Controller) State() OpenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OpenOption tweaks a single Open call.
type OpenOption func(*openOptions)

type openOptions struct {
	focusIndex int
}

// WithFocusIndex focuses the item at index once the surface opens, instead
// of the surface's default focus target.
func WithFocusIndex(index int) OpenOption {
	return func(o *openOptions) {
		o.focusIndex = index
	}
}

// Open shows the surface: position is computed from freshly measured
// anchor, viewport and surface dimensions, then the open transition plays
// unless quick-open is set. Calling Open during a transition supersedes it.
func (c *Controller) Open(opts ...OpenOption) {
	o := openOptions{focusIndex: -1}
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.cancelPendingLocked()
	gen := c.bumpLocked()
	if c.state == StateClosing {
		// Superseding a close mid-flight: drop its animating marker.
		c.adapter.RemoveClass(AnimatingClosedClass)
	}
	c.adapter.SaveFocus()

	if c.quickOpen {
		c.state = StateOpen
		c.applyPositionLocked()
		c.adapter.AddClass(OpenClass)
		c.focusOnOpenLocked(o.focusIndex)
		c.adapter.RegisterBodyClickHandler(c.handleBodyClick)
		return
	}

	c.state = StateOpening
	c.adapter.AddClass(AnimatingOpenClass)
	// Two-frame deferral: the first frame lets layout settle with the
	// animating marker applied, the second measures and starts the
	// transition.
	c.frameLocked(gen, func() {
		c.frameLocked(gen, func() {
			c.applyPositionLocked()
			c.adapter.AddClass(OpenClass)
			c.focusOnOpenLocked(o.focusIndex)
			c.adapter.RegisterBodyClickHandler(c.handleBodyClick)
			c.timerLocked(gen, TransitionOpenDuration, func() {
				c.adapter.RemoveClass(AnimatingOpenClass)
				c.state = StateOpen
			})
		})
	})
}

// Close hides the surface. evt, when non-nil, is the interaction event
// that triggered the close; a disabled event target suppresses the close
// entirely.
func (c *Controller) Close(evt *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked(evt)
}

func (c *Controller) closeLocked(evt *Event) {
	if c.destroyed || c.state == StateClosed {
		return
	}
	if evt != nil && c.adapter.GetAttributeForEventTarget(evt.Target, DisabledAttr) == "true" {
		return
	}
	c.cancelPendingLocked()
	gen := c.bumpLocked()
	if c.state == StateOpening {
		// Superseding an open mid-flight: drop its animating marker.
		c.adapter.RemoveClass(AnimatingOpenClass)
	}
	c.adapter.DeregisterBodyClickHandler()

	if c.quickOpen {
		c.adapter.RemoveClass(OpenClass)
		c.state = StateClosed
		c.adapter.RestoreFocus()
		c.adapter.NotifyClose()
		return
	}

	c.state = StateClosing
	c.adapter.AddClass(AnimatingClosedClass)
	c.frameLocked(gen, func() {
		c.adapter.RemoveClass(OpenClass)
		c.timerLocked(gen, TransitionCloseDuration, func() {
			c.adapter.RemoveClass(AnimatingClosedClass)
			c.state = StateClosed
			c.adapter.RestoreFocus()
			c.adapter.NotifyClose()
		})
	})
}

// Destroy cancels all pending scheduled work and forces the closed state.
// No adapter mutation and no completion notification happens after this
// call, even from callbacks already queued.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.cancelPendingLocked()
	c.bumpLocked()
	c.destroyed = true
	c.state = StateClosed
	c.adapter.DeregisterInteractionHandler()
	c.adapter.DeregisterBodyClickHandler()
}

func (c *Controller) focusOnOpenLocked(focusIndex int) {
	if focusIndex >= 0 {
		c.adapter.FocusItemAtIndex(focusIndex)
		return
	}
	if !c.adapter.IsFocused() {
		c.adapter.Focus()
	}
}

func (c *Controller) bumpLocked() uint64 {
	c.generation++
	return c.generation
}

func (c *Controller) cancelPendingLocked() {
	for _, id := range c.frames {
		c.sched.CancelFrame(id)
	}
	c.frames = nil
	for _, id := range c.timers {
		c.sched.ClearTimeout(id)
	}
	c.timers = nil
}

// frameLocked schedules fn on the next frame, stamped with gen. The
// callback re-checks liveness under lock before running.
func (c *Controller) frameLocked(gen uint64, fn func()) {
	var id scheduler.FrameID
	id = c.sched.RequestFrame(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.dropFrameLocked(id)
		if c.destroyed || gen != c.generation {
			return
		}
		fn()
	})
	c.frames = append(c.frames, id)
}

// timerLocked schedules fn after d, stamped with gen, with the same
// liveness rules as frameLocked.
func (c *Controller) timerLocked(gen uint64, d time.Duration, fn func()) {
	var id scheduler.TimerID
	id = c.sched.SetTimeout(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.dropTimerLocked(id)
		if c.destroyed || gen != c.generation {
			return
		}
		fn()
	})
	c.timers = append(c.timers, id)
}

func (c *Controller) dropFrameLocked(id scheduler.FrameID) {
	for i, f := range c.frames {
		if f == id {
			c.frames = append(c.frames[:i], c.frames[i+1:]...)
			return
		}
	}
}

func (c *Controller) dropTimerLocked(id scheduler.TimerID) {
	for i, t := range c.timers {
		if t == id {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}
