package tui

import (
	"fmt"
	"sort"
	"strings"

	"menusurface/internal/surface"
)

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	base := m.renderBase()
	if !m.adapter.HasClass(surface.OpenClass) {
		return base
	}

	menu := m.renderMenu()
	r := m.adapter.SurfaceCells()
	return m.overlay.RenderOverlay(base, menu, int(r.Left), int(r.Top), m.width, m.height)
}

func (m *Model) renderBase() string {
	lines := make([]string, m.height)

	for y := range lines {
		lines[y] = m.renderAnchorRow(y)
	}

	title := m.styles.Title.Render("menusurface demo")
	hint := m.styles.Dim.Render("  tab: anchor  enter: open  c: corner  m: margin  r: rtl  Q: quick  ?: help  q: quit")
	lines[0] = title + hint

	if m.height > 2 {
		lines[m.height-1] = m.renderStatusLine()
	}

	return strings.Join(lines, "\n")
}

// renderAnchorRow draws every anchor button that lives on row y
func (m *Model) renderAnchorRow(y int) string {
	type placed struct {
		x     int
		label string
		index int
	}
	var row []placed
	for i, a := range m.anchors {
		if int(a.rect.Top) == y {
			row = append(row, placed{x: int(a.rect.Left), label: a.label, index: i})
		}
	}
	if len(row) == 0 {
		return ""
	}
	sort.Slice(row, func(i, j int) bool { return row[i].x < row[j].x })

	var b strings.Builder
	col := 0
	for _, p := range row {
		if pad := p.x - col; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		}
		style := m.styles.Anchor
		if p.index == m.active {
			style = m.styles.AnchorActive
			if m.ctrl.IsOpen() {
				style = m.styles.AnchorOpen
			}
		}
		// padding in the style widens the cell by two
		b.WriteString(style.Render(p.label))
		col += len(p.label) + 2
	}
	return b.String()
}

func (m *Model) renderStatusLine() string {
	parts := []string{
		fmt.Sprintf("state: %s", m.ctrl.State()),
		fmt.Sprintf("corner: %s", m.corner),
	}
	if m.adapter.rtl {
		parts = append(parts, "rtl")
	}
	if m.quickOpen {
		parts = append(parts, "quick")
	}
	if o := m.adapter.origin; o != "" {
		parts = append(parts, fmt.Sprintf("origin: %s", o))
	}
	if mh := m.adapter.maxHeight; mh != "" {
		parts = append(parts, fmt.Sprintf("max-height: %s", mh))
	}
	if m.statusMessage != "" {
		parts = append(parts, m.statusMessage)
	}
	return m.styles.Status.Render(strings.Join(parts, "  |  "))
}

// renderMenu builds the floating surface content. When a max-height
// clamp is in force the item window scrolls to keep focus visible.
func (m *Model) renderMenu() string {
	items := m.visibleItems()
	itemWidth := 0
	for _, it := range items {
		if len(it) > itemWidth {
			itemWidth = len(it)
		}
	}
	itemWidth += 2

	var inner []string
	if m.filtering || m.filter.Value() != "" {
		inner = append(inner, m.styles.Filter.Render(m.filter.View()))
	}

	focused := m.adapter.GetFocusedItemIndex()
	visible := len(items)
	if r := m.adapter.SurfaceCells(); int(r.Height)-2-len(inner) < visible {
		visible = int(r.Height) - 2 - len(inner)
	}
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if focused >= visible {
		offset = focused - visible + 1
	}

	for i := offset; i < len(items) && i < offset+visible; i++ {
		marker := "  "
		style := m.styles.MenuItem
		if i == focused {
			marker = "> "
			style = m.styles.MenuFocused
		}
		label := items[i]
		if pad := itemWidth - 2 - len(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		inner = append(inner, style.Render(marker+label))
	}
	if len(items) == 0 {
		inner = append(inner, m.styles.Dim.Render("no matches"))
	}

	return m.styles.Menu.Render(strings.Join(inner, "\n"))
}
