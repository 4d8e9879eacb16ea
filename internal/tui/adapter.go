package tui

import (
	"strconv"
	"strings"

	"menusurface/internal/eventbus"
	"menusurface/internal/geometry"
	"menusurface/internal/surface"
)

// Terminal cells are mapped to a nominal font cell so the controller works
// in pixel space while the demo renders in rows and columns.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// cellPos identifies a terminal cell as an event target
type cellPos struct {
	X int
	Y int
}

// termAdapter satisfies surface.Adapter on top of the demo's terminal state.
// The bubbletea model mutates the anchor and window geometry; the controller
// drives everything else through the interface.
type termAdapter struct {
	bus eventbus.EventBus

	classes map[string]bool
	attrs   map[any]map[string]string
	rtl     bool

	anchorCells geometry.Rect
	windowCells geometry.Rect
	innerCells  geometry.Size

	interaction surface.InteractionHandler
	bodyClick   surface.BodyClickHandler

	focused      string
	savedFocus   string
	focusedIndex int
	numFocusable int

	origin    string
	pos       surface.Position
	maxHeight string

	onClose func()
}

func newTermAdapter(bus eventbus.EventBus) *termAdapter {
	return &termAdapter{
		bus:          bus,
		classes:      map[string]bool{surface.RootClass: true},
		attrs:        make(map[any]map[string]string),
		focusedIndex: -1,
	}
}

func (a *termAdapter) AddClass(class string)      { a.classes[class] = true }
func (a *termAdapter) RemoveClass(class string)   { delete(a.classes, class) }
func (a *termAdapter) HasClass(class string) bool { return a.classes[class] }

func (a *termAdapter) HasAnchor() bool {
	return a.anchorCells.Width > 0 && a.anchorCells.Height > 0
}
func (a *termAdapter) IsRTL() bool     { return a.rtl }

func (a *termAdapter) RegisterInteractionHandler(h surface.InteractionHandler) {
	a.interaction = h
}
func (a *termAdapter) DeregisterInteractionHandler() { a.interaction = nil }
func (a *termAdapter) RegisterBodyClickHandler(h surface.BodyClickHandler) {
	a.bodyClick = h
}
func (a *termAdapter) DeregisterBodyClickHandler() { a.bodyClick = nil }

func (a *termAdapter) GetAttributeForEventTarget(target any, attr string) string {
	return a.attrs[target][attr]
}

func (a *termAdapter) IsElementInContainer(el any) bool {
	pos, ok := el.(cellPos)
	if !ok {
		return false
	}
	r := a.SurfaceCells()
	return float64(pos.X) >= r.Left && float64(pos.X) < r.Right &&
		float64(pos.Y) >= r.Top && float64(pos.Y) < r.Bottom
}

func (a *termAdapter) NotifyClose() {
	a.bus.Publish(eventbus.SurfaceClosedEvent{})
	if a.onClose != nil {
		a.onClose()
	}
}

func (a *termAdapter) Focus()          { a.focused = "surface" }
func (a *termAdapter) IsFocused() bool { return a.focused == "surface" }
func (a *termAdapter) SaveFocus()      { a.savedFocus = a.focused }
func (a *termAdapter) RestoreFocus() {
	a.focused = a.savedFocus
	a.savedFocus = ""
}

func (a *termAdapter) NumFocusableElements() int { return a.numFocusable }
func (a *termAdapter) GetFocusedItemIndex() int  { return a.focusedIndex }
func (a *termAdapter) FocusItemAtIndex(index int) {
	a.focusedIndex = index
	a.focused = "surface"
}

func (a *termAdapter) GetInnerDimensions() geometry.Size {
	return geometry.Size{
		Width:  a.innerCells.Width * cellWidth,
		Height: a.innerCells.Height * cellHeight,
	}
}

func (a *termAdapter) GetAnchorDimensions() geometry.Rect {
	return cellsToPx(a.anchorCells)
}

func (a *termAdapter) GetWindowDimensions() geometry.Rect {
	return cellsToPx(a.windowCells)
}

func (a *termAdapter) SetTransformOrigin(origin string) { a.origin = origin }

func (a *termAdapter) SetPosition(pos surface.Position) { a.pos = pos }

// SetMaxHeight is the last mutation of a positioning pass, so the
// completed placement is published from here.
func (a *termAdapter) SetMaxHeight(height string) {
	a.maxHeight = height
	a.bus.Publish(eventbus.PositionAppliedEvent{
		Origin:    a.origin,
		Top:       a.pos.Top,
		Bottom:    a.pos.Bottom,
		Left:      a.pos.Left,
		Right:     a.pos.Right,
		MaxHeight: a.maxHeight,
	})
}

// dispatchKey routes a key event through the registered interaction
// handler and reports whether the controller consumed it.
func (a *termAdapter) dispatchKey(evt surface.Event) bool {
	if a.interaction == nil {
		return false
	}
	return a.interaction(evt)
}

// clickAt simulates a document-level click on a terminal cell
func (a *termAdapter) clickAt(x, y int) {
	if a.bodyClick != nil {
		a.bodyClick(cellPos{X: x, Y: y})
	}
}

// SurfaceCells resolves the applied position back into a cell rect for
// rendering. Offsets are anchored to the anchor box the way CSS insets
// are anchored to a containing block.
func (a *termAdapter) SurfaceCells() geometry.Rect {
	w := a.innerCells.Width
	h := a.innerCells.Height

	if mh := parsePx(a.maxHeight); mh > 0 {
		if clamped := mh / cellHeight; clamped < h {
			h = clamped
		}
	}

	var left, top float64
	if a.pos.Left != "" {
		left = a.anchorCells.Left + parsePx(a.pos.Left)/cellWidth
	} else if a.pos.Right != "" {
		left = a.anchorCells.Right - parsePx(a.pos.Right)/cellWidth - w
	}
	if a.pos.Top != "" {
		top = a.anchorCells.Top + parsePx(a.pos.Top)/cellHeight
	} else if a.pos.Bottom != "" {
		top = a.anchorCells.Bottom - parsePx(a.pos.Bottom)/cellHeight - h
	}

	return geometry.XYWH(left, top, w, h)
}

func parsePx(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0
	}
	return v
}

func cellsToPx(r geometry.Rect) geometry.Rect {
	return geometry.XYWH(
		r.Left*cellWidth,
		r.Top*cellHeight,
		r.Width*cellWidth,
		r.Height*cellHeight,
	)
}
