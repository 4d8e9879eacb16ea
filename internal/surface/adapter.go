package surface

import "menusurface/internal/geometry"

// EventKind discriminates interaction events routed through the adapter.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventClick
)

// Event is the interaction event abstraction delivered by the host. Key
// holds the logical key name ("Escape", "Tab", "ArrowDown", "Space", ...).
// Target opaquely identifies the originating element; the controller only
// hands it back to the adapter for attribute and containment queries.
type Event struct {
	Kind   EventKind
	Key    string
	Shift  bool
	Ctrl   bool
	Alt    bool
	Meta   bool
	Target any
}

// InteractionHandler consumes an interaction event. A true return means
// the event was handled and the host should suppress its default behavior.
type InteractionHandler func(Event) bool

// BodyClickHandler consumes a document-level click outside the surface's
// own event flow.
type BodyClickHandler func(target any)

// Adapter is the capability set the controller drives for every observable
// effect. All methods are synchronous. Rendering targets of any kind (DOM,
// terminal, headless test double) can satisfy it.
type Adapter interface {
	AddClass(class string)
	RemoveClass(class string)
	HasClass(class string) bool

	HasAnchor() bool
	IsRTL() bool

	RegisterInteractionHandler(h InteractionHandler)
	DeregisterInteractionHandler()
	RegisterBodyClickHandler(h BodyClickHandler)
	DeregisterBodyClickHandler()

	// GetAttributeForEventTarget reads an attribute off an event target,
	// returning "" when absent.
	GetAttributeForEventTarget(target any, attr string) string
	// IsElementInContainer reports whether el lives inside the surface's
	// container.
	IsElementInContainer(el any) bool
	NotifyClose()

	Focus()
	IsFocused() bool
	SaveFocus()
	RestoreFocus()
	NumFocusableElements() int
	// GetFocusedItemIndex returns the focused item's index, or -1 when no
	// item holds focus.
	GetFocusedItemIndex() int
	FocusItemAtIndex(index int)

	GetInnerDimensions() geometry.Size
	GetAnchorDimensions() geometry.Rect
	GetWindowDimensions() geometry.Rect

	SetTransformOrigin(origin string)
	SetPosition(pos Position)
	// SetMaxHeight applies a px string clamp, or clears it when given "".
	SetMaxHeight(height string)
}
