package surface

import "fmt"

// Corner names the anchor corner the surface attaches to. The vertical
// half picks the attachment mode: TOP corners let the surface overlap the
// anchor, BOTTOM corners keep it clear of the anchor's vertical span.
// START and END work the same way on the horizontal axis and follow text
// direction: START is the left edge in LTR and the right edge in RTL.
type Corner int

const (
	CornerTopStart Corner = iota
	CornerTopEnd
	CornerBottomStart
	CornerBottomEnd
)

func (c Corner) String() string {
	switch c {
	case CornerTopStart:
		return "top_start"
	case CornerTopEnd:
		return "top_end"
	case CornerBottomStart:
		return "bottom_start"
	case CornerBottomEnd:
		return "bottom_end"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// ParseCorner converts a config string into a Corner.
func ParseCorner(s string) (Corner, error) {
	switch s {
	case "top_start":
		return CornerTopStart, nil
	case "top_end":
		return CornerTopEnd, nil
	case "bottom_start":
		return CornerBottomStart, nil
	case "bottom_end":
		return CornerBottomEnd, nil
	default:
		return 0, fmt.Errorf("unknown anchor corner %q", s)
	}
}

// avoidsVerticalOverlap reports whether the corner keeps the surface clear
// of the anchor's vertical span (BOTTOM corners).
func (c Corner) avoidsVerticalOverlap() bool {
	return c == CornerBottomStart || c == CornerBottomEnd
}

// avoidsHorizontalOverlap reports whether the corner keeps the surface
// clear of the anchor's horizontal span (END corners).
func (c Corner) avoidsHorizontalOverlap() bool {
	return c == CornerTopEnd || c == CornerBottomEnd
}
