package tilt

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/tanema/gween/ease"
)

// Values is the payload of a tiltChange notification. TiltX and TiltY are
// rounded to two decimals; the percentages are the unrounded normalized
// pointer position times 100.
type Values struct {
	TiltX       float64
	TiltY       float64
	PercentageX float64
	PercentageY float64
}

// Geometry is the surface bounding box captured on pointer enter. It is
// not refreshed while the pointer stays over the surface.
type Geometry struct {
	Width, Height float64
	Left, Top     float64
}

// Controller tilts one surface towards the pointer. Pointer moves are
// coalesced into one computation per animation frame; enter and leave get
// an eased transition that is removed again after Config.Speed ms so that
// continuous tracking is not damped.
//
// A Controller is single-threaded: all methods must be called from the
// host's update loop.
type Controller struct {
	surface Surface
	host    Host
	cfg     Config
	easing  ease.TweenFunc
	reverse float64

	geometry Geometry
	event    PointerEvent
	values   Values

	subs [3]Subscription

	// Zero means no request is outstanding.
	pendingFrame    FrameHandle
	resetFrame      FrameHandle
	transitionTimer TimerHandle

	disposed bool
}

// New binds a controller to surface. It fails with *InvalidSurfaceError if
// surface is nil or not valid, in which case nothing is registered.
func New(surface Surface, host Host, opts ...Option) (*Controller, error) {
	if isNilSurface(surface) || !surface.Valid() {
		return nil, &InvalidSurfaceError{Surface: surface}
	}
	if host == nil {
		return nil, errors.New("tilt: host is nil")
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	fn, err := ParseEasing(cfg.Easing)
	if err != nil {
		return nil, fmt.Errorf("tilt: new controller: %w", err)
	}

	c := &Controller{
		surface: surface,
		host:    host,
		cfg:     cfg,
		easing:  fn,
		reverse: 1,
	}
	if cfg.Reverse {
		c.reverse = -1
	}

	c.subs[0] = host.Subscribe(surface, EventPointerEnter, c.OnPointerEnter)
	c.subs[1] = host.Subscribe(surface, EventPointerMove, c.OnPointerMove)
	c.subs[2] = host.Subscribe(surface, EventPointerLeave, c.OnPointerLeave)
	return c, nil
}

// Attach is a convenience for New with a Node and the Scene hosting it.
func Attach(scene *Scene, node *Node, opts ...Option) (*Controller, error) {
	var host Host
	if scene != nil {
		host = scene
	}
	return New(node, host, opts...)
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// Geometry returns the geometry captured on the last pointer enter.
func (c *Controller) Geometry() Geometry { return c.geometry }

// Values returns the most recently computed tilt values.
func (c *Controller) Values() Values { return c.values }

// Pending reports whether a frame computation is scheduled.
func (c *Controller) Pending() bool { return c.pendingFrame != 0 }

// OnPointerEnter snapshots the surface geometry, hints that a transform is
// imminent, and starts the enter transition.
func (c *Controller) OnPointerEnter(PointerEvent) {
	if c.disposed {
		return
	}
	c.updateGeometry()
	c.surface.SetWillChange(true)
	c.refreshTransition()
}

// OnPointerMove records ev and schedules a frame computation, replacing any
// computation that has not run yet.
func (c *Controller) OnPointerMove(ev PointerEvent) {
	if c.disposed {
		return
	}
	if c.pendingFrame != 0 {
		c.host.CancelFrame(c.pendingFrame)
		c.pendingFrame = 0
	}
	c.event = ev
	c.pendingFrame = c.host.RequestFrame(c.computeFrame)
}

// OnPointerLeave starts the leave transition and schedules the return to
// rest. With Config.Reset false the surface keeps its last tilt.
func (c *Controller) OnPointerLeave(PointerEvent) {
	if c.disposed {
		return
	}
	c.refreshTransition()
	if !c.cfg.Reset {
		c.surface.SetWillChange(false)
		return
	}
	if c.resetFrame != 0 {
		c.host.CancelFrame(c.resetFrame)
	}
	c.resetFrame = c.host.RequestFrame(c.fireReset)
}

// Dispose removes the three pointer subscriptions and cancels any pending
// frame or timer. It is safe to call more than once.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for i, sub := range c.subs {
		if sub != nil {
			sub.Remove()
			c.subs[i] = nil
		}
	}
	if c.pendingFrame != 0 {
		c.host.CancelFrame(c.pendingFrame)
		c.pendingFrame = 0
	}
	if c.resetFrame != 0 {
		c.host.CancelFrame(c.resetFrame)
		c.resetFrame = 0
	}
	if c.transitionTimer != 0 {
		c.host.CancelTimer(c.transitionTimer)
		c.transitionTimer = 0
	}
}

func (c *Controller) updateGeometry() {
	b := c.surface.Bounds()
	c.geometry = Geometry{Width: b.Width, Height: b.Height, Left: b.X, Top: b.Y}
}

// valuesAt maps a pointer position to tilt values using the cached geometry.
func (c *Controller) valuesAt(ev PointerEvent) Values {
	x := normalize(ev.X, c.geometry.Left, c.geometry.Width)
	y := normalize(ev.Y, c.geometry.Top, c.geometry.Height)
	m := c.cfg.Max
	return Values{
		TiltX:       round2(c.reverse * (m/2 - x*m)),
		TiltY:       round2(c.reverse * (y*m - m/2)),
		PercentageX: x * 100,
		PercentageY: y * 100,
	}
}

// computeFrame runs on the animation frame requested by OnPointerMove.
func (c *Controller) computeFrame() {
	c.pendingFrame = 0
	if c.disposed {
		return
	}
	v := c.valuesAt(c.event)
	c.values = v

	t := Transform{
		Perspective: c.cfg.Perspective,
		RotateX:     v.TiltY,
		RotateY:     v.TiltX,
		Scale:       c.cfg.Scale,
	}
	switch c.cfg.Axis {
	case AxisX:
		t.RotateX = 0
	case AxisY:
		t.RotateY = 0
	}
	c.surface.SetTransform(t)
	c.surface.DispatchTiltChange(v)
}

func (c *Controller) fireReset() {
	c.resetFrame = 0
	if c.disposed {
		return
	}
	c.resetToNeutral()
}

// resetToNeutral parks the virtual pointer at the surface centre and
// restores the rest pose.
func (c *Controller) resetToNeutral() {
	c.event = PointerEvent{
		X: c.geometry.Left + c.geometry.Width/2,
		Y: c.geometry.Top + c.geometry.Height/2,
	}
	c.values = Values{PercentageX: 50, PercentageY: 50}
	c.surface.SetTransform(NeutralTransform(c.cfg.Perspective))
	c.surface.SetWillChange(false)
}

// refreshTransition (re)applies the transition style and schedules its
// removal after Config.Speed ms.
func (c *Controller) refreshTransition() {
	if c.transitionTimer != 0 {
		c.host.CancelTimer(c.transitionTimer)
		c.transitionTimer = 0
	}
	if c.cfg.Transition {
		c.surface.SetTransition(Transition{
			Duration: c.cfg.Speed,
			Easing:   c.cfg.Easing,
			fn:       c.easing,
		})
	}
	c.transitionTimer = c.host.After(c.cfg.Speed, c.clearTransition)
}

func (c *Controller) clearTransition() {
	c.transitionTimer = 0
	if c.disposed {
		return
	}
	c.surface.ClearTransition()
}

// normalize maps v into [0, 1] relative to [origin, origin+size]. A
// degenerate size maps to the centre.
func normalize(v, origin, size float64) float64 {
	if size <= 0 {
		return 0.5
	}
	return clamp01((v - origin) / size)
}

// round2 rounds to two decimals and folds negative zero into zero.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func isNilSurface(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
