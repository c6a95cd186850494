package tilt

// frameRequest is a queued animation-frame callback. fn is nil once the
// request has run or been cancelled.
type frameRequest struct {
	id FrameHandle
	fn func()
}

// timerEntry is a pending one-shot timer.
type timerEntry struct {
	id  TimerHandle
	due float64 // scene clock, ms
	fn  func()
}

// RequestFrame queues fn to run once during the next frame phase of Step,
// before Draw.
func (s *Scene) RequestFrame(fn func()) FrameHandle {
	s.nextFrameID++
	if s.nextFrameID == 0 {
		s.nextFrameID++
	}
	s.frames = append(s.frames, frameRequest{id: s.nextFrameID, fn: fn})
	return s.nextFrameID
}

// CancelFrame drops a queued frame callback. Unknown or already-run
// handles are ignored.
func (s *Scene) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range s.frames {
		if s.frames[i].id == h {
			copy(s.frames[i:], s.frames[i+1:])
			s.frames[len(s.frames)-1] = frameRequest{}
			s.frames = s.frames[:len(s.frames)-1]
			return
		}
	}
	for i := range s.running {
		if s.running[i].id == h {
			s.running[i].fn = nil
			return
		}
	}
}

// PendingFrames returns the number of queued frame callbacks.
func (s *Scene) PendingFrames() int {
	return len(s.frames)
}

// runFrames runs the callbacks queued before this call. Requests made by
// those callbacks land in s.frames and wait for the next tick.
func (s *Scene) runFrames() {
	if len(s.frames) == 0 {
		return
	}
	s.running, s.frames = s.frames, s.running[:0]
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		s.stats.frames++
		fn()
	}
	clear(s.running)
	s.running = s.running[:0]
}

// After schedules fn to run once the scene clock has advanced by ms.
// A non-positive delay fires on the next tick.
func (s *Scene) After(ms float64, fn func()) TimerHandle {
	s.nextTimerID++
	if s.nextTimerID == 0 {
		s.nextTimerID++
	}
	s.timers = append(s.timers, timerEntry{id: s.nextTimerID, due: s.clock + ms, fn: fn})
	return s.nextTimerID
}

// CancelTimer drops a pending timer. Unknown or fired handles are ignored.
func (s *Scene) CancelTimer(h TimerHandle) {
	if h == 0 {
		return
	}
	for i := range s.timers {
		if s.timers[i].id == h {
			s.removeTimerAt(i)
			return
		}
	}
}

// PendingTimers returns the number of timers that have not fired.
func (s *Scene) PendingTimers() int {
	return len(s.timers)
}

func (s *Scene) removeTimerAt(i int) {
	copy(s.timers[i:], s.timers[i+1:])
	s.timers[len(s.timers)-1] = timerEntry{}
	s.timers = s.timers[:len(s.timers)-1]
}

// fireTimers runs every timer whose due time has passed, earliest first.
// Timers scheduled by a callback wait for the next tick.
func (s *Scene) fireTimers() {
	limit := s.nextTimerID
	for {
		idx := -1
		for i := range s.timers {
			if s.timers[i].due > s.clock || s.timers[i].id > limit {
				continue
			}
			if idx < 0 || s.timers[i].due < s.timers[idx].due {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		fn := s.timers[idx].fn
		s.removeTimerAt(idx)
		s.stats.timers++
		fn()
	}
}
