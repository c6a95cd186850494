package tilt

// syntheticPointerEvent represents a single injected pointer sample in
// world coordinates. outside marks the pointer leaving the window.
type syntheticPointerEvent struct {
	x, y    float64
	outside bool
}

// InjectMove queues a pointer sample at (x, y). Each queued sample is
// consumed by one Step, replacing the real cursor for that tick.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the window: every hovered node
// receives a leave event.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: s.pointer.lastX, y: s.pointer.lastY, outside: true,
	})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames samples, both endpoints included.
// Minimum frames is 2.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjections returns the number of queued synthetic samples.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real
// cursor input is skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, !evt.outside)
	return true
}
