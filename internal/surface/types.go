package surface

// Margin spaces the surface away from the anchor. Each field names an
// anchor edge and is added to the computed offset when that edge ends up
// hosting the surface, after any flip has been resolved.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Position carries the inline offsets to apply. Exactly one of Top/Bottom
// and one of Left/Right is set (the pinned edges); the rest stay empty.
// Values are px strings, with a bare "0" for zero offsets.
type Position struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

// OpenState tracks the controller's lifecycle.
type OpenState int

const (
	StateClosed OpenState = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s OpenState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}
