package tilt

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/tanema/gween/ease"
)

// eventTiltChange keys tiltChange listeners in a handlerRegistry.
const eventTiltChange EventType = 255

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	pointerEnter []handler[PointerContext]
	pointerMove  []handler[PointerContext]
	pointerLeave []handler[PointerContext]
	tiltChange   []handler[Values]
	nextID       uint32
}

// CallbackHandle allows removing a registered callback. It implements
// Subscription.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id)
	case eventTiltChange:
		h.reg.tiltChange = removeHandler(h.reg.tiltChange, h.id)
	}
}

func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[T]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addPointer(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := handler[PointerContext]{id: r.nextID, fn: fn}
	switch event {
	case EventPointerEnter:
		r.pointerEnter = append(r.pointerEnter, h)
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	case EventPointerLeave:
		r.pointerLeave = append(r.pointerLeave, h)
	default:
		return CallbackHandle{}
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

func (r *handlerRegistry) pointer(event EventType) []handler[PointerContext] {
	switch event {
	case EventPointerEnter:
		return r.pointerEnter
	case EventPointerMove:
		return r.pointerMove
	case EventPointerLeave:
		return r.pointerLeave
	}
	return nil
}

// firePointer calls every handler registered for event. Handlers may
// remove themselves (or others) while the dispatch runs.
func (r *handlerRegistry) firePointer(event EventType, ctx PointerContext) {
	hs := r.pointer(event)
	if len(hs) == 0 {
		return
	}
	for _, h := range slices.Clone(hs) {
		h.fn(ctx)
	}
}

// --- Surface implementation ---

// Valid reports whether the node can be decorated (it is not disposed).
func (n *Node) Valid() bool {
	return !n.disposed
}

// Bounds returns the world-space bounding box of the node's untilted
// Width×Height rectangle.
func (n *Node) Bounds() Rect {
	wt := n.computeWorld()
	w, h := n.Width, n.Height
	x0, y0 := transformPoint(wt, 0, 0)
	x1, y1 := transformPoint(wt, w, 0)
	x2, y2 := transformPoint(wt, w, h)
	x3, y3 := transformPoint(wt, 0, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// computeWorld composes local placements from the root down, independent
// of the cached worldTransform, so Bounds is exact even between ticks.
func (n *Node) computeWorld() [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// SetTransform assigns the node's 3D transform. With a transition active
// the displayed transform tweens to t; otherwise it changes immediately.
func (n *Node) SetTransform(t Transform) {
	n.target = t
	if n.transform.Perspective == 0 {
		// No perspective yet: adopt the target's so only rotation and
		// scale animate.
		n.transform.Perspective = t.Perspective
	}
	if n.transitionOn && n.transition.Duration > 0 {
		n.tween = TweenTransform(n, t, float32(n.transition.Duration/1000), n.transition.fn)
		return
	}
	n.tween = nil
	n.transform = t
}

// SetTransition enables eased transform changes until ClearTransition.
// An unparsable easing falls back to linear.
func (n *Node) SetTransition(tr Transition) {
	if tr.fn == nil {
		fn, err := ParseEasing(tr.Easing)
		if err != nil {
			if globalDebug {
				_, _ = fmt.Fprintf(os.Stderr, "[tilt] node %q: %v; using linear\n", n.Name, err)
			}
			fn = ease.Linear
		}
		tr.fn = fn
	}
	n.transition = tr
	n.transitionOn = true
}

// ClearTransition removes the transition. A tween already in flight runs
// to completion; later SetTransform calls snap.
func (n *Node) ClearTransition() {
	n.transition = Transition{}
	n.transitionOn = false
}

// SetWillChange sets the will-change hint.
func (n *Node) SetWillChange(on bool) {
	n.willChange = on
}

// DispatchTiltChange delivers v to the node's tiltChange listeners.
func (n *Node) DispatchTiltChange(v Values) {
	if len(n.listeners.tiltChange) == 0 {
		return
	}
	for _, h := range slices.Clone(n.listeners.tiltChange) {
		h.fn(v)
	}
}

// OnTiltChange registers a tiltChange listener.
func (n *Node) OnTiltChange(fn func(Values)) CallbackHandle {
	r := &n.listeners
	r.nextID++
	r.tiltChange = append(r.tiltChange, handler[Values]{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: eventTiltChange}
}

// Transform returns the transform currently displayed, which lags the last
// assigned one while a transition runs.
func (n *Node) Transform() Transform {
	return n.transform
}

// TargetTransform returns the transform most recently assigned.
func (n *Node) TargetTransform() Transform {
	return n.target
}

// Transition returns the active transition, if any.
func (n *Node) Transition() (Transition, bool) {
	return n.transition, n.transitionOn
}

// WillChange reports the will-change hint.
func (n *Node) WillChange() bool {
	return n.willChange
}

// Animating reports whether a transition tween is in flight.
func (n *Node) Animating() bool {
	return n.tween != nil
}

// advanceTween steps the node's transition tween by dt seconds and snaps to
// the exact target once it finishes.
func (n *Node) advanceTween(dt float64) {
	if n.tween == nil {
		return
	}
	n.tween.Update(float32(dt))
	if n.tween.Done {
		n.tween = nil
		n.transform = n.target
	}
}

// updateTweens advances transition tweens across the subtree.
func updateTweens(n *Node, dt float64) {
	n.advanceTween(dt)
	for _, child := range n.children {
		updateTweens(child, dt)
	}
}
