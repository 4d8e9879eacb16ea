package surface

import (
	"menusurface/internal/geometry"
)

// fakeAdapter records every adapter call so tests can assert on the exact
// mutation sequence the controller emits.
type fakeAdapter struct {
	classes   map[string]bool
	hasAnchor bool
	anchor    geometry.Rect
	viewport  geometry.Rect
	inner     geometry.Size
	rtl       bool

	origin       string
	originCalls  int
	pos          Position
	posCalls     int
	maxHeight    string
	maxHeightSet int

	focused       bool
	focusedIndex  int
	numFocusable  int
	surfaceFocus  int
	itemFocus     []int
	savedFocus    int
	restoredFocus int

	interaction     InteractionHandler
	bodyClick       BodyClickHandler
	attrs           map[any]map[string]string
	contained       map[any]bool
	notifyClosed   int
	mutations       int
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		classes:      map[string]bool{RootClass: true},
		hasAnchor:    true,
		anchor:       geometry.XYWH(0, 0, 40, 20),
		viewport:     geometry.Sized(1000, 1000),
		inner:        geometry.Size{Width: 100, Height: 200},
		focusedIndex: -1,
		numFocusable: 5,
		attrs:        make(map[any]map[string]string),
		contained:    make(map[any]bool),
	}
}

func (a *fakeAdapter) AddClass(class string) {
	a.mutations++
	a.classes[class] = true
}

func (a *fakeAdapter) RemoveClass(class string) {
	a.mutations++
	delete(a.classes, class)
}

func (a *fakeAdapter) HasClass(class string) bool { return a.classes[class] }

func (a *fakeAdapter) HasAnchor() bool { return a.hasAnchor }
func (a *fakeAdapter) IsRTL() bool     { return a.rtl }

func (a *fakeAdapter) RegisterInteractionHandler(h InteractionHandler) { a.interaction = h }
func (a *fakeAdapter) DeregisterInteractionHandler()                   { a.interaction = nil }
func (a *fakeAdapter) RegisterBodyClickHandler(h BodyClickHandler)     { a.bodyClick = h }
func (a *fakeAdapter) DeregisterBodyClickHandler()                     { a.bodyClick = nil }

func (a *fakeAdapter) GetAttributeForEventTarget(target any, attr string) string {
	return a.attrs[target][attr]
}

func (a *fakeAdapter) IsElementInContainer(el any) bool { return a.contained[el] }

func (a *fakeAdapter) NotifyClose() {
	a.mutations++
	a.notifyClosed++
}

func (a *fakeAdapter) Focus() {
	a.mutations++
	a.surfaceFocus++
	a.focused = true
}

func (a *fakeAdapter) IsFocused() bool { return a.focused }

func (a *fakeAdapter) SaveFocus()    { a.savedFocus++ }
func (a *fakeAdapter) RestoreFocus() { a.restoredFocus++ }

func (a *fakeAdapter) NumFocusableElements() int { return a.numFocusable }
func (a *fakeAdapter) GetFocusedItemIndex() int  { return a.focusedIndex }

func (a *fakeAdapter) FocusItemAtIndex(index int) {
	a.mutations++
	a.itemFocus = append(a.itemFocus, index)
	a.focusedIndex = index
}

func (a *fakeAdapter) GetInnerDimensions() geometry.Size  { return a.inner }
func (a *fakeAdapter) GetAnchorDimensions() geometry.Rect { return a.anchor }
func (a *fakeAdapter) GetWindowDimensions() geometry.Rect { return a.viewport }

func (a *fakeAdapter) SetTransformOrigin(origin string) {
	a.mutations++
	a.origin = origin
	a.originCalls++
}

func (a *fakeAdapter) SetPosition(pos Position) {
	a.mutations++
	a.pos = pos
	a.posCalls++
}

func (a *fakeAdapter) SetMaxHeight(height string) {
	a.mutations++
	a.maxHeight = height
	a.maxHeightSet++
}
