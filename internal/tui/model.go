package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"menusurface/internal/config"
	"menusurface/internal/eventbus"
	"menusurface/internal/geometry"
	"menusurface/internal/scheduler"
	"menusurface/internal/surface"
	"menusurface/internal/tui/views"
)

// frameInterval paces the demo's animation clock
const frameInterval = 16 * time.Millisecond

// tickMsg drives the frame scheduler
type tickMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// anchorButton is one of the demo's anchor targets scattered around the
// window so every flip quadrant can be exercised.
type anchorButton struct {
	label string
	rect  geometry.Rect
}

// menu entries shown on the surface
var defaultItems = []string{
	"New File",
	"Open Recent",
	"Save As",
	"Rename",
	"Duplicate",
	"Move To",
	"Share",
	"Properties",
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	styles *views.Styles

	adapter *termAdapter
	sched   *scheduler.Manual
	ctrl    *surface.Controller
	overlay *views.OverlayRenderer

	width  int
	height int

	anchors []anchorButton
	active  int

	items     []string
	filter    textinput.Model
	filtering bool

	quickOpen bool
	corner    surface.Corner
	margin    surface.Margin

	statusMessage string

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	corner, err := cfg.Surface.Corner()
	if err != nil {
		return nil, fmt.Errorf("invalid surface config: %w", err)
	}

	styles := views.NewStyles()
	adapter := newTermAdapter(bus)
	adapter.rtl = cfg.Surface.RTL

	sched := scheduler.NewManual()
	ctrl := surface.New(adapter, sched)
	if err := ctrl.Init(); err != nil {
		return nil, fmt.Errorf("surface init: %w", err)
	}

	ctrl.SetQuickOpen(cfg.Surface.QuickOpen)
	ctrl.SetAnchorCorner(corner)
	ctrl.SetAnchorMargin(cfg.Surface.Margin())

	filter := textinput.New()
	filter.Placeholder = "filter items"
	filter.Prompt = "/ "
	filter.CharLimit = 32

	m := &Model{
		bus:       bus,
		config:    cfg,
		styles:    styles,
		adapter:   adapter,
		sched:     sched,
		ctrl:      ctrl,
		overlay:   views.NewOverlayRenderer(styles),
		items:     defaultItems,
		filter:    filter,
		quickOpen: cfg.Surface.QuickOpen,
		corner:    corner,
		margin:    cfg.Surface.Margin(),
	}
	adapter.onClose = func() {
		m.statusMessage = "menu closed"
		m.filtering = false
		m.filter.Reset()
	}
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// One animation frame per tick, then the wall clock catches up.
		m.sched.Frame()
		m.sched.Advance(frameInterval)
		m.syncMenuGeometry()
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutAnchors()
		m.adapter.windowCells = geometry.XYWH(0, 0, float64(msg.Width), float64(msg.Height))
		m.adapter.anchorCells = m.anchors[m.active].rect
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.handleClick(msg.X, msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("help pager: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// handleClick routes a mouse press either to an anchor or to the body
// click path that dismisses an open surface.
func (m *Model) handleClick(x, y int) tea.Cmd {
	for i, a := range m.anchors {
		if float64(x) >= a.rect.Left && float64(x) < a.rect.Right &&
			float64(y) >= a.rect.Top && float64(y) < a.rect.Bottom {
			m.active = i
			if m.ctrl.IsOpen() {
				m.ctrl.Close(nil)
			} else {
				m.openMenu()
			}
			return nil
		}
	}
	m.adapter.clickAt(x, y)
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	// While the surface is open the controller gets first refusal.
	if m.ctrl.IsOpen() {
		if evt, ok := keyToEvent(msg); ok {
			if m.adapter.dispatchKey(evt) {
				return m, nil
			}
			if evt.Key == "Escape" {
				// Escape closes inside the controller; nothing more to do.
				return m, nil
			}
		}
		switch msg.String() {
		case "enter":
			m.selectFocused()
		case "/":
			m.filtering = true
			m.filter.Focus()
		case "q", "ctrl+c":
			m.ctrl.Close(nil)
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.Destroy()
		return m, tea.Quit
	case "enter", "o":
		m.openMenu()
	case "tab":
		m.cycleAnchor(1)
	case "shift+tab":
		m.cycleAnchor(-1)
	case "c":
		m.cycleCorner()
	case "Q":
		m.quickOpen = !m.quickOpen
		m.ctrl.SetQuickOpen(m.quickOpen)
		m.statusMessage = fmt.Sprintf("quick open: %v", m.quickOpen)
	case "r":
		m.adapter.rtl = !m.adapter.rtl
		m.statusMessage = fmt.Sprintf("rtl: %v", m.adapter.rtl)
	case "m":
		m.cycleMargin()
	case "?":
		return m, m.fetchHelpPager()
	}
	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.syncMenuGeometry()
	return m, cmd
}

// keyToEvent translates terminal keys into the interaction events the
// controller understands. Escape arrives as a key-up, everything else as
// key-down.
func keyToEvent(msg tea.KeyMsg) (surface.Event, bool) {
	switch msg.String() {
	case "esc":
		return surface.Event{Kind: surface.EventKeyUp, Key: "Escape"}, true
	case "tab":
		return surface.Event{Kind: surface.EventKeyDown, Key: "Tab"}, true
	case "shift+tab":
		return surface.Event{Kind: surface.EventKeyDown, Key: "Tab", Shift: true}, true
	case "up":
		return surface.Event{Kind: surface.EventKeyDown, Key: "ArrowUp"}, true
	case "down":
		return surface.Event{Kind: surface.EventKeyDown, Key: "ArrowDown"}, true
	case "left":
		return surface.Event{Kind: surface.EventKeyDown, Key: "ArrowLeft"}, true
	case "right":
		return surface.Event{Kind: surface.EventKeyDown, Key: "ArrowRight"}, true
	case " ":
		return surface.Event{Kind: surface.EventKeyDown, Key: "Space"}, true
	}
	return surface.Event{}, false
}

func (m *Model) openMenu() {
	if len(m.anchors) == 0 {
		return
	}
	m.adapter.anchorCells = m.anchors[m.active].rect
	m.syncMenuGeometry()
	m.statusMessage = fmt.Sprintf("opening at %s", m.anchors[m.active].label)
	m.bus.Publish(eventbus.SurfaceOpenedEvent{QuickOpen: m.quickOpen})
	m.ctrl.Open(surface.WithFocusIndex(0))
}

func (m *Model) selectFocused() {
	items := m.visibleItems()
	idx := m.adapter.GetFocusedItemIndex()
	if idx >= 0 && idx < len(items) {
		m.statusMessage = fmt.Sprintf("selected %q", items[idx])
	}
	m.ctrl.Close(nil)
}

func (m *Model) cycleAnchor(delta int) {
	if len(m.anchors) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.anchors)) % len(m.anchors)
	m.adapter.anchorCells = m.anchors[m.active].rect
}

var cornerCycle = []surface.Corner{
	surface.CornerTopStart,
	surface.CornerTopEnd,
	surface.CornerBottomStart,
	surface.CornerBottomEnd,
}

func (m *Model) cycleCorner() {
	for i, c := range cornerCycle {
		if c == m.corner {
			m.corner = cornerCycle[(i+1)%len(cornerCycle)]
			break
		}
	}
	m.ctrl.SetAnchorCorner(m.corner)
	m.statusMessage = fmt.Sprintf("anchor corner: %s", m.corner)
}

var marginCycle = []surface.Margin{
	{},
	{Top: 8, Bottom: 8},
	{Left: 16, Right: 16},
	{Top: 16, Right: 16, Bottom: 16, Left: 16},
}

func (m *Model) cycleMargin() {
	for i := range marginCycle {
		if m.margin == marginCycle[i] {
			m.margin = marginCycle[(i+1)%len(marginCycle)]
			m.ctrl.SetAnchorMargin(m.margin)
			m.statusMessage = fmt.Sprintf("margin: %+v", m.margin)
			return
		}
	}
	m.margin = marginCycle[0]
	m.ctrl.SetAnchorMargin(m.margin)
}

// visibleItems applies the filter query to the menu entries
func (m *Model) visibleItems() []string {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.items
	}
	var out []string
	for _, it := range m.items {
		if strings.Contains(strings.ToLower(it), query) {
			out = append(out, it)
		}
	}
	return out
}

// syncMenuGeometry keeps the adapter's measured dimensions in step with
// what the menu would render as.
func (m *Model) syncMenuGeometry() {
	items := m.visibleItems()
	w := 0
	for _, it := range items {
		if len(it) > w {
			w = len(it)
		}
	}
	// border and padding on both sides
	w += 6
	h := len(items) + 2
	if m.filtering || m.filter.Value() != "" {
		h++
	}
	m.adapter.innerCells = geometry.Size{Width: float64(w), Height: float64(h)}
	m.adapter.numFocusable = len(items)
}

// layoutAnchors spreads the anchor buttons over the window so the flip
// logic can be exercised from every quadrant.
func (m *Model) layoutAnchors() {
	w, h := float64(m.width), float64(m.height)
	buttons := []struct {
		label string
		x, y  float64
	}{
		{"top-left", 2, 2},
		{"top-right", w - 14, 2},
		{"center", w/2 - 5, h / 2},
		{"bottom-left", 2, h - 3},
		{"bottom-right", w - 16, h - 3},
	}

	m.anchors = m.anchors[:0]
	for _, b := range buttons {
		label := "[ " + b.label + " ]"
		m.anchors = append(m.anchors, anchorButton{
			label: label,
			rect:  geometry.XYWH(b.x, b.y, float64(len(label)), 1),
		})
	}
	if m.active >= len(m.anchors) {
		m.active = 0
	}
	log.Printf("laid out %d anchors for %dx%d window", len(m.anchors), m.width, m.height)
}
