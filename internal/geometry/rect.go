package geometry

// Rect is an axis-aligned box in viewport pixel coordinates.
// Bottom is always Top+Height and Right is always Left+Width.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	Width  float64
	Height float64
}

// Size holds a width/height pair without a position.
type Size struct {
	Width  float64
	Height float64
}

// Edges holds a per-edge distance measurement.
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// XYWH builds a Rect from a top-left point and dimensions.
func XYWH(x, y, w, h float64) Rect {
	return Rect{
		Top:    y,
		Bottom: y + h,
		Left:   x,
		Right:  x + w,
		Width:  w,
		Height: h,
	}
}

// Sized builds a Rect of the given dimensions at the origin.
func Sized(w, h float64) Rect {
	return XYWH(0, 0, w, h)
}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Valid reports whether the rect satisfies its edge/dimension invariants.
func (r Rect) Valid() bool {
	return r.Bottom == r.Top+r.Height && r.Right == r.Left+r.Width &&
		r.Width >= 0 && r.Height >= 0
}

// Distance measures the gap between each edge of inner and the matching
// edge of outer. Values are positive while inner sits inside outer.
func Distance(inner, outer Rect) Edges {
	return Edges{
		Top:    inner.Top - outer.Top,
		Right:  outer.Right - inner.Right,
		Bottom: outer.Bottom - inner.Bottom,
		Left:   inner.Left - outer.Left,
	}
}
