package tilt

import (
	"fmt"
	"os"
)

// tickStats counts scheduling work done in one Step. Only logged when
// Scene.debug is true.
type tickStats struct {
	timers        int
	frames        int
	pointerEvents int
}

// debugLog prints the tick's scheduling stats to stderr. Idle ticks are
// not logged.
func (s *Scene) debugLog() {
	st := s.stats
	if st.timers == 0 && st.frames == 0 && st.pointerEvents == 0 {
		return
	}
	hovered := "<none>"
	if n := s.HoveredNode(); n != nil {
		hovered = n.Name
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilt] t=%.0fms | pointer events: %d | frames: %d (queued %d) | timers: %d (pending %d) | hover: %s\n",
		s.clock, st.pointerEvents, st.frames, len(s.frames), st.timers, len(s.timers), hovered)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("tilt debug: %s on disposed node %q", op, n.Name))
	}
}
