package surface

import "fmt"

// PreconditionError reports a caller wiring bug: the controller was
// attached to an element that is not a menu surface. It is fatal and not
// meant to be recovered from.
type PreconditionError struct {
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("surface: element is missing required %s marker", e.Missing)
}
