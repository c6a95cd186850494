package tilt

import (
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	s := newTestScene()
	back := NewSurface("back", 100, 100)
	front := NewSurface("front", 100, 100)
	front.SetPosition(50, 0)
	s.Root().AddChild(back)
	s.Root().AddChild(front)
	updateWorldTransform(s.root, identityTransform, false)

	if got := s.hitTest(75, 50); got != front {
		t.Errorf("overlap hit %v, want front", nodeName(got))
	}
	if got := s.hitTest(25, 50); got != back {
		t.Errorf("left hit %v, want back", nodeName(got))
	}

	back.SetZIndex(1)
	if got := s.hitTest(75, 50); got != back {
		t.Errorf("after ZIndex hit %v, want back", nodeName(got))
	}
}

func TestHitTestSkipsHiddenAndInert(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)
	updateWorldTransform(s.root, identityTransform, false)

	card.Visible = false
	if got := s.hitTest(50, 50); got != nil {
		t.Errorf("hidden node hit: %v", nodeName(got))
	}
	card.Visible = true
	card.Interactable = false
	if got := s.hitTest(50, 50); got != nil {
		t.Errorf("non-interactable node hit: %v", nodeName(got))
	}
}

func TestHitTestCustomShape(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	card.HitShape = HitCircle{CenterX: 50, CenterY: 50, Radius: 50}
	s.Root().AddChild(card)
	updateWorldTransform(s.root, identityTransform, false)

	if got := s.hitTest(2, 2); got != nil {
		t.Errorf("corner outside circle hit %v", nodeName(got))
	}
	if got := s.hitTest(50, 50); got != card {
		t.Errorf("centre hit %v, want card", nodeName(got))
	}
}

func TestHitTestIgnoresTilt(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)
	card.SetTransform(Transform{Perspective: 1000, RotateY: 30, Scale: 0.5})
	updateWorldTransform(s.root, identityTransform, false)

	// The drawn quad no longer covers the corner, the hit area still does.
	if got := s.hitTest(1, 1); got != card {
		t.Errorf("hit %v, want card", nodeName(got))
	}
}

// --- Hover state machine ---

type eventLog struct {
	entries []string
}

func (l *eventLog) attach(n *Node) {
	n.OnPointerEnter = func(PointerContext) { l.entries = append(l.entries, "enter "+n.Name) }
	n.OnPointerMove = func(PointerContext) { l.entries = append(l.entries, "move "+n.Name) }
	n.OnPointerLeave = func(PointerContext) { l.entries = append(l.entries, "leave "+n.Name) }
}

func (l *eventLog) take() []string {
	out := l.entries
	l.entries = nil
	return out
}

func assertEvents(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: events = %v, want %v", label, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: events = %v, want %v", label, got, want)
		}
	}
}

func TestHoverEnterMoveLeave(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	card.SetPosition(100, 100)
	s.Root().AddChild(card)

	var log eventLog
	log.attach(card)

	s.InjectMove(10, 10)
	s.Step(0.25)
	assertEvents(t, "outside", log.take(), nil)

	s.InjectMove(150, 150)
	s.Step(0.25)
	assertEvents(t, "enter", log.take(), []string{"enter card", "move card"})
	if s.HoveredNode() != card {
		t.Errorf("HoveredNode() = %v, want card", nodeName(s.HoveredNode()))
	}

	s.InjectMove(160, 150)
	s.Step(0.25)
	assertEvents(t, "move", log.take(), []string{"move card"})

	// Same position: no move event.
	s.InjectMove(160, 150)
	s.Step(0.25)
	assertEvents(t, "still", log.take(), nil)

	s.InjectMove(10, 10)
	s.Step(0.25)
	assertEvents(t, "leave", log.take(), []string{"leave card"})
	if s.HoveredNode() != nil {
		t.Errorf("HoveredNode() = %v, want nil", nodeName(s.HoveredNode()))
	}
}

func TestHoverChildKeepsParentHovered(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 200, 200)
	label := NewSurface("label", 50, 50)
	label.SetPosition(10, 10)
	card.AddChild(label)
	s.Root().AddChild(card)

	var log eventLog
	log.attach(card)
	log.attach(label)

	s.InjectMove(100, 100)
	s.Step(0.25)
	assertEvents(t, "enter card", log.take(), []string{"enter card", "move card"})

	s.InjectMove(20, 20)
	s.Step(0.25)
	assertEvents(t, "enter label", log.take(), []string{"enter label", "move label", "move card"})

	s.InjectMove(100, 100)
	s.Step(0.25)
	assertEvents(t, "back to card", log.take(), []string{"leave label", "move card"})

	s.InjectMove(20, 20)
	s.Step(0.25)
	log.take()

	s.InjectMove(500, 500)
	s.Step(0.25)
	assertEvents(t, "leave both", log.take(), []string{"leave label", "leave card"})
}

func TestHoverInjectLeave(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)

	var log eventLog
	log.attach(card)

	s.InjectMove(50, 50)
	s.Step(0.25)
	log.take()

	s.InjectLeave()
	s.Step(0.25)
	assertEvents(t, "leave", log.take(), []string{"leave card"})
}

func TestHoverDisposedNodeGetsNoEvents(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)

	var log eventLog
	log.attach(card)
	s.InjectMove(50, 50)
	s.Step(0.25)
	log.take()

	card.Dispose()
	s.InjectMove(10, 10)
	s.Step(0.25)
	assertEvents(t, "after dispose", log.take(), nil)
}

func TestPointerContextCoordinates(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	card.SetPosition(40, 30)
	s.Root().AddChild(card)

	var got PointerContext
	card.OnPointerMove = func(ctx PointerContext) { got = ctx }
	card.UserData = "payload"

	s.InjectMove(50, 50)
	s.Step(0.25)
	if got.Node != card || got.UserData != "payload" {
		t.Errorf("context = %+v", got)
	}
	assertNear(t, "GlobalX", got.GlobalX, 50)
	assertNear(t, "GlobalY", got.GlobalY, 50)
	assertNear(t, "LocalX", got.LocalX, 10)
	assertNear(t, "LocalY", got.LocalY, 20)
}

// --- Scene-level handlers ---

func TestSceneHandlersFireFirst(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)

	var order []string
	h := s.OnPointerEnter(func(ctx PointerContext) {
		if ctx.Node == card {
			order = append(order, "scene")
		}
	})
	card.OnPointerEnter = func(PointerContext) { order = append(order, "field") }
	s.Subscribe(card, EventPointerEnter, func(PointerEvent) { order = append(order, "listener") })

	s.InjectMove(50, 50)
	s.Step(0.25)
	assertEvents(t, "order", order, []string{"scene", "field", "listener"})

	h.Remove()
	order = nil
	s.InjectMove(500, 500)
	s.InjectMove(50, 50)
	s.Step(0.25)
	s.Step(0.25)
	assertEvents(t, "after remove", order, []string{"field", "listener"})
}

func TestHandlerRemovingItselfDuringDispatch(t *testing.T) {
	s := newTestScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)

	calls := 0
	var sub Subscription
	sub = s.Subscribe(card, EventPointerMove, func(PointerEvent) {
		calls++
		sub.Remove()
	})
	other := 0
	s.Subscribe(card, EventPointerMove, func(PointerEvent) { other++ })

	s.InjectMove(10, 10)
	s.InjectMove(20, 20)
	s.Step(0.25)
	s.Step(0.25)
	if calls != 1 {
		t.Errorf("self-removing handler calls = %d, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other handler calls = %d, want 2", other)
	}
}

func TestCursorFunc(t *testing.T) {
	s := NewScene()
	card := NewSurface("card", 100, 100)
	s.Root().AddChild(card)

	x, y := 50, 50
	s.SetCursorFunc(func() (int, int) { return x, y })

	entered := 0
	card.OnPointerEnter = func(PointerContext) { entered++ }
	s.Step(0.25)
	if entered != 1 {
		t.Errorf("entered = %d, want 1", entered)
	}

	// Injected samples take priority over the cursor.
	left := 0
	card.OnPointerLeave = func(PointerContext) { left++ }
	s.InjectMove(500, 500)
	s.Step(0.25)
	if left != 1 {
		t.Errorf("left = %d, want 1", left)
	}
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}
