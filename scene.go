package tilt

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, pointer state,
// the animation-frame queue and the timer list. It implements Host, so
// controllers attached to its nodes are driven by Update.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen at the start of Draw when its alpha is
	// non-zero.
	ClearColor Color

	// ScreenshotDir receives the PNGs queued with Screenshot.
	ScreenshotDir   string
	screenshotQueue []string

	// Clock, in milliseconds of accumulated tick time.
	clock float64

	// Scheduling
	frames      []frameRequest
	running     []frameRequest
	nextFrameID FrameHandle
	timers      []timerEntry
	nextTimerID TimerHandle

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	chainBuf    []*Node
	cursor      func() (int, int)
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	updateFunc func() error
	stats      tickStats
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:          NewContainer("root"),
		cursor:        ebiten.CursorPosition,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Now returns the scene clock in milliseconds.
func (s *Scene) Now() float64 {
	return s.clock
}

// Update advances the scene by one ebiten tick.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the scene by dt seconds. Order within a tick: clock,
// due timers, input, transition tweens, then the animation frames queued so
// far. Frames requested from inside a frame callback run on the next Step.
func (s *Scene) Step(dt float64) {
	s.stats = tickStats{}
	s.clock += dt * 1000

	// Refresh world transforms first so hit testing sees this tick's layout.
	updateWorldTransform(s.root, identityTransform, false)

	s.fireTimers()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	updateTweens(s.root, dt)
	s.runFrames()

	if s.debug {
		s.debugLog()
	}
}

// SetUpdateFunc registers a callback invoked by Run after each Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetCursorFunc replaces the cursor source (ebiten.CursorPosition by
// default). Useful for embedding the scene in a larger layout.
func (s *Scene) SetCursorFunc(fn func() (int, int)) {
	s.cursor = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and per-tick scheduling stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// --- EventSource ---

// Subscribe registers fn for event on target. Only *Node targets receive
// events; any other surface gets an inert Subscription.
func (s *Scene) Subscribe(target Surface, event EventType, fn func(PointerEvent)) Subscription {
	n, ok := target.(*Node)
	if !ok || n == nil {
		if s.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[tilt] subscribe %s: %T is not a scene node\n", event, target)
		}
		return CallbackHandle{}
	}
	return n.listeners.addPointer(event, func(ctx PointerContext) {
		fn(PointerEvent{X: ctx.GlobalX, Y: ctx.GlobalY})
	})
}

// OnPointerEnter registers a scene-level callback fired for every node the
// pointer enters.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerEnter, fn)
}

// OnPointerMove registers a scene-level callback fired for every node the
// pointer moves over.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerMove, fn)
}

// OnPointerLeave registers a scene-level callback fired for every node the
// pointer leaves.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerLeave, fn)
}
