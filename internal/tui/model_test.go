package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menusurface/internal/config"
	"menusurface/internal/eventbus"
	"menusurface/internal/surface"
)

func newDemoModel(t *testing.T, mutate func(*config.Config)) *Model {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	m, err := NewModel(bus, cfg)
	require.NoError(t, err)

	m = apply(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func apply(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(*Model)
	require.True(t, ok)
	return out
}

// tick advances the demo's animation clock by n frames
func tick(t *testing.T, m *Model, n int) *Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = apply(t, m, tickMsg(time.Now()))
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAnimatedOpenReachesOpenState(t *testing.T) {
	m := newDemoModel(t, nil)

	m = apply(t, m, key("enter"))
	assert.Equal(t, surface.StateOpening, m.ctrl.State())
	assert.False(t, m.adapter.HasClass(surface.OpenClass))

	// Two frames settle the position and reveal the surface.
	m = tick(t, m, 2)
	assert.True(t, m.adapter.HasClass(surface.OpenClass))
	assert.Equal(t, surface.StateOpening, m.ctrl.State())

	// The open transition finishes once its duration has elapsed.
	m = tick(t, m, 10)
	assert.Equal(t, surface.StateOpen, m.ctrl.State())
}

func TestQuickOpenIsImmediate(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	assert.Equal(t, surface.StateOpen, m.ctrl.State())
	assert.True(t, m.adapter.HasClass(surface.OpenClass))
}

func TestEscapeClosesOpenMenu(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	require.True(t, m.ctrl.IsOpen())

	m = apply(t, m, key("esc"))
	assert.Equal(t, surface.StateClosed, m.ctrl.State())
	assert.False(t, m.adapter.HasClass(surface.OpenClass))
}

func TestArrowKeysMoveItemFocus(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	// Opening requests focus on the first item after a short delay.
	m = tick(t, m, 3)
	require.Equal(t, 0, m.adapter.GetFocusedItemIndex())

	m = apply(t, m, key("down"))
	m = tick(t, m, 3)
	assert.Equal(t, 1, m.adapter.GetFocusedItemIndex())

	m = apply(t, m, key("up"))
	m = tick(t, m, 3)
	assert.Equal(t, 0, m.adapter.GetFocusedItemIndex())
}

func TestClickOutsideDismisses(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	require.True(t, m.ctrl.IsOpen())

	m = apply(t, m, tea.MouseMsg{
		X:      70,
		Y:      20,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, surface.StateClosed, m.ctrl.State())
}

func TestClickOnAnchorTogglesMenu(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})
	require.NotEmpty(t, m.anchors)

	press := tea.MouseMsg{
		X:      int(m.anchors[0].rect.Left),
		Y:      int(m.anchors[0].rect.Top),
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}

	m = apply(t, m, press)
	assert.True(t, m.ctrl.IsOpen())

	m = apply(t, m, press)
	assert.Equal(t, surface.StateClosed, m.ctrl.State())
}

func TestFilterNarrowsItems(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	m = apply(t, m, key("/"))
	require.True(t, m.filtering)

	for _, r := range "na" {
		m = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	items := m.visibleItems()
	assert.Equal(t, []string{"Rename"}, items)
	assert.Equal(t, 1, m.adapter.NumFocusableElements())

	m = apply(t, m, key("esc"))
	assert.False(t, m.filtering)
}

func TestCornerCycling(t *testing.T) {
	m := newDemoModel(t, nil)
	require.Equal(t, surface.CornerTopStart, m.corner)

	m = apply(t, m, key("c"))
	assert.Equal(t, surface.CornerTopEnd, m.corner)

	m = apply(t, m, key("c"))
	assert.Equal(t, surface.CornerBottomStart, m.corner)
}

func TestQuitIsIgnoredWhileMenuOpen(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	m = apply(t, m, key("enter"))
	require.True(t, m.ctrl.IsOpen())

	// "q" with the menu open closes the menu instead of quitting.
	next, cmd := m.Update(key("q"))
	m = next.(*Model)
	assert.Nil(t, cmd)
	assert.Equal(t, surface.StateClosed, m.ctrl.State())
}

func TestViewOverlaysMenuWhenOpen(t *testing.T) {
	m := newDemoModel(t, func(cfg *config.Config) {
		cfg.Surface.QuickOpen = true
	})

	closedView := m.View()
	assert.NotContains(t, closedView, "New File")

	m = apply(t, m, key("enter"))
	openView := m.View()
	assert.Contains(t, openView, "New File")
}
