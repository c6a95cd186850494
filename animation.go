package tilt

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition is a temporary easing hint on a surface. While a node has a
// transition, SetTransform animates the displayed transform to the new
// target over Duration milliseconds instead of snapping.
type Transition struct {
	Duration float64 // milliseconds
	Easing   string

	fn ease.TweenFunc // parsed Easing; resolved lazily when nil
}

// NewTransition parses easing and returns a ready transition.
func NewTransition(ms float64, easing string) (Transition, error) {
	fn, err := ParseEasing(easing)
	if err != nil {
		return Transition{}, err
	}
	return Transition{Duration: ms, Easing: easing, fn: fn}, nil
}

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition,
// TweenTransform) and call Update(dt) each frame. If the target node is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the node dirty. If the target node has been disposed,
// Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over duration seconds.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenTransform creates a TweenGroup that animates the node's displayed
// 3D transform from its current value to `to` over duration seconds.
func TweenTransform(node *Node, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.transform
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(from.Perspective), float32(to.Perspective), duration, fn)
	g.tweens[1] = gween.New(float32(from.RotateX), float32(to.RotateX), duration, fn)
	g.tweens[2] = gween.New(float32(from.RotateY), float32(to.RotateY), duration, fn)
	g.tweens[3] = gween.New(float32(from.Scale), float32(to.Scale), duration, fn)
	g.fields[0] = &node.transform.Perspective
	g.fields[1] = &node.transform.RotateX
	g.fields[2] = &node.transform.RotateY
	g.fields[3] = &node.transform.Scale
	return g
}
