package tilt

// Surface is the rendering element a Controller decorates. The controller
// borrows it: it queries geometry and mutates style, but never owns its
// lifetime. *Node implements Surface.
type Surface interface {
	// Valid reports whether the surface can still be decorated.
	Valid() bool
	// Bounds returns the surface's bounding box in world coordinates.
	Bounds() Rect
	SetTransform(t Transform)
	SetTransition(tr Transition)
	ClearTransition()
	// SetWillChange hints that a transform change is imminent.
	SetWillChange(on bool)
	// DispatchTiltChange notifies the surface's tiltChange listeners.
	DispatchTiltChange(v Values)
}

// FrameHandle identifies a pending animation-frame request.
// The zero value is never issued.
type FrameHandle uint32

// TimerHandle identifies a pending timer. The zero value is never issued.
type TimerHandle uint32

// FrameScheduler runs a callback once, before the next paint.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// TimerService runs a callback once after a delay in milliseconds.
type TimerService interface {
	After(ms float64, fn func()) TimerHandle
	CancelTimer(h TimerHandle)
}

// Subscription is a registered event listener.
type Subscription interface {
	Remove()
}

// EventSource delivers pointer events targeted at a surface.
type EventSource interface {
	Subscribe(target Surface, event EventType, fn func(PointerEvent)) Subscription
}

// Host bundles the collaborators a Controller needs from its environment.
// *Scene implements Host.
type Host interface {
	FrameScheduler
	TimerService
	EventSource
}
