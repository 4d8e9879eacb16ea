package surface

import (
	"math"

	"menusurface/internal/geometry"
)

// measurements snapshots every rectangle the placement algorithm needs.
// Taken fresh on each open so stale layout never leaks into a position.
type measurements struct {
	anchor   geometry.Rect
	viewport geometry.Rect
	surface  geometry.Size
	distance geometry.Edges
}

func (c *Controller) measureLocked() measurements {
	anchor := c.adapter.GetAnchorDimensions()
	viewport := c.adapter.GetWindowDimensions()
	return measurements{
		anchor:   anchor,
		viewport: viewport,
		surface:  c.adapter.GetInnerDimensions(),
		distance: geometry.Distance(anchor, viewport),
	}
}

// applyPositionLocked runs the autopositioning pass: resolve the logical
// corner against text direction, flip each axis that would overflow when
// the opposite side has room, then emit position, transform origin and the
// max-height clamp through the adapter.
func (c *Controller) applyPositionLocked() {
	if !c.adapter.HasAnchor() {
		// No anchor: leave the stylesheet-driven default placement alone.
		return
	}
	m := c.measureLocked()
	rtl := c.adapter.IsRTL()
	avoidV := c.anchorCorner.avoidsVerticalOverlap()
	avoidH := c.anchorCorner.avoidsHorizontalOverlap()
	mg := c.anchorMargin

	// Horizontal: the surface grows toward the inline end by preference.
	growRight := !rtl
	if !fitsH(m, avoidH, mg, growRight) && fitsH(m, avoidH, mg, !growRight) {
		growRight = !growRight
	}
	hOff := horizontalOffset(m.anchor.Width, avoidH, mg, growRight)

	// Vertical: the surface grows downward by preference.
	growDown := true
	if !fitsV(m, avoidV, mg, true) && fitsV(m, avoidV, mg, false) {
		growDown = false
	}
	vOff, vShifted := verticalOffset(m, avoidV, mg, growDown)

	var pos Position
	hAlign := "right"
	if growRight {
		hAlign = "left"
		pos.Left = geometry.Px(hOff)
	} else {
		pos.Right = geometry.Px(hOff)
	}
	vAlign := "bottom"
	if growDown {
		vAlign = "top"
		pos.Top = geometry.Px(vOff)
	} else {
		pos.Bottom = geometry.Px(vOff)
	}

	// Wide anchors pivot the animation from their middle.
	if m.surface.Width > 0 && m.anchor.Width/m.surface.Width > anchorToSurfaceWidthRatio {
		hAlign = "center"
	}
	if origin, ok := fractionalOrigin(m, mg, vOff, vShifted, growDown); ok {
		vAlign = origin
	}

	c.adapter.SetTransformOrigin(hAlign + " " + vAlign)
	c.adapter.SetPosition(pos)

	if clamp, ok := maxHeight(m, avoidV, mg, growDown); ok {
		c.adapter.SetMaxHeight(geometry.Px(clamp))
	} else {
		c.adapter.SetMaxHeight("")
	}
}

// availableV is the vertical run open to the surface for a growth
// direction: from the pinned anchor edge to the viewport boundary the
// surface grows toward, minus the margin on that edge.
func availableV(m measurements, avoid bool, mg Margin, growDown bool) float64 {
	if growDown {
		if avoid {
			return m.distance.Bottom - mg.Bottom
		}
		return m.anchor.Height + m.distance.Bottom - mg.Top
	}
	if avoid {
		return m.distance.Top - mg.Top
	}
	return m.anchor.Height + m.distance.Top - mg.Bottom
}

func availableH(m measurements, avoid bool, mg Margin, growRight bool) float64 {
	if growRight {
		if avoid {
			return m.distance.Right - mg.Right
		}
		return m.anchor.Width + m.distance.Right - mg.Left
	}
	if avoid {
		return m.distance.Left - mg.Left
	}
	return m.anchor.Width + m.distance.Left - mg.Right
}

func fitsV(m measurements, avoid bool, mg Margin, growDown bool) bool {
	return m.surface.Height <= availableV(m, avoid, mg, growDown)
}

func fitsH(m measurements, avoid bool, mg Margin, growRight bool) bool {
	return m.surface.Width <= availableH(m, avoid, mg, growRight)
}

// horizontalOffset yields the value for the pinned inline property: left
// when growing rightward, right otherwise.
func horizontalOffset(anchorWidth float64, avoid bool, mg Margin, growRight bool) float64 {
	if growRight {
		if avoid {
			return anchorWidth + mg.Right
		}
		return mg.Left
	}
	if avoid {
		return anchorWidth + mg.Left
	}
	return mg.Right
}

// verticalOffset yields the value for the pinned block property (top when
// growing down, bottom otherwise). In overlap mode a surface too tall for
// the chosen side slides past the anchor edge instead of flipping, which
// produces a negative offset; shifted reports that adjustment.
func verticalOffset(m measurements, avoid bool, mg Margin, growDown bool) (off float64, shifted bool) {
	if growDown {
		if avoid {
			return m.anchor.Height + mg.Bottom, false
		}
		room := m.anchor.Height + m.distance.Bottom
		if m.surface.Height > room {
			return -(effectiveHeight(m) - room), true
		}
		return mg.Top, false
	}
	if avoid {
		return m.anchor.Height + mg.Top, false
	}
	room := m.anchor.Height + m.distance.Top
	if m.surface.Height > room {
		return -(effectiveHeight(m) - room), true
	}
	return mg.Bottom, false
}

// effectiveHeight caps the surface height used by the overlap adjustment
// so the far edge keeps clear of the viewport boundary.
func effectiveHeight(m measurements) float64 {
	return math.Min(m.surface.Height, m.viewport.Height-marginToEdge)
}

// fractionalOrigin computes the percentage vertical transform origin used
// when the surface's pivot no longer coincides with a fixed edge: either
// the overlap too-tall adjustment moved the surface past the anchor, or a
// vertical margin displaced the origin by more than a tenth of the surface
// height.
func fractionalOrigin(m measurements, mg Margin, vOff float64, shifted, growDown bool) (string, bool) {
	height := m.surface.Height
	if shifted {
		height = effectiveHeight(m)
	} else if (mg.Top == 0 && mg.Bottom == 0) || height == 0 ||
		math.Abs(vOff)/height <= offsetToHeightRatio {
		return "", false
	}
	if height == 0 {
		return "", false
	}
	percent := math.Abs(vOff) / height * 100
	if !growDown {
		percent = 100 - percent
	}
	return geometry.Percent(percent), true
}

// maxHeight clamps the surface to the space left on the chosen side when
// its natural height would overflow the viewport.
func maxHeight(m measurements, avoid bool, mg Margin, growDown bool) (float64, bool) {
	available := availableV(m, avoid, mg, growDown)
	if available > 0 && m.surface.Height > available {
		return available, true
	}
	return 0, false
}
