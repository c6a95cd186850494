package tilt

import "fmt"

// InvalidSurfaceError is returned by New when the surface argument is nil or
// no longer usable (for example a disposed Node).
type InvalidSurfaceError struct {
	Surface Surface
}

func (e *InvalidSurfaceError) Error() string {
	if isNilSurface(e.Surface) {
		return "tilt: surface is nil"
	}
	if n, ok := e.Surface.(*Node); ok {
		return fmt.Sprintf("tilt: node %q is not a valid surface", n.Name)
	}
	return fmt.Sprintf("tilt: %T is not a valid surface", e.Surface)
}
