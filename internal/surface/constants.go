package surface

import "time"

// Class markers the controller toggles on the surface element. The host
// stylesheet keys its transitions off these.
const (
	RootClass            = "menu-surface"
	OpenClass            = "menu-surface--open"
	AnimatingOpenClass   = "menu-surface--animating-open"
	AnimatingClosedClass = "menu-surface--animating-closed"
)

// DisabledAttr is the attribute consulted on a close-triggering event
// target; "true" suppresses the close.
const DisabledAttr = "aria-disabled"

const (
	// TransitionOpenDuration is how long the open animation runs before
	// the controller settles into StateOpen.
	TransitionOpenDuration = 120 * time.Millisecond

	// TransitionCloseDuration is how long the close animation runs before
	// the controller settles into StateClosed and notifies.
	TransitionCloseDuration = 75 * time.Millisecond

	// FocusAdjustDelay lets native tab order settle before the keyboard
	// handler moves focus to a wrapped index.
	FocusAdjustDelay = 20 * time.Millisecond
)

const (
	// marginToEdge keeps a too-tall overlapping surface off the far
	// viewport boundary.
	marginToEdge = 32.0

	// anchorToSurfaceWidthRatio marks the anchor as "wide": past it the
	// horizontal transform origin centers instead of tracking an edge.
	anchorToSurfaceWidthRatio = 0.62

	// offsetToHeightRatio is the margin-induced origin displacement, as a
	// fraction of surface height, beyond which the vertical transform
	// origin switches to a percentage.
	offsetToHeightRatio = 0.1
)
