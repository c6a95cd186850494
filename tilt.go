package tilt

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * c.A * 255),
		G: uint8(clamp01(c.G) * c.A * 255),
		B: uint8(clamp01(c.B) * c.A * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions and projected corners.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Axis selects a rotational axis that is held at zero.
type Axis uint8

const (
	AxisNone Axis = iota // both axes follow the pointer
	AxisX                // rotateX is locked at 0
	AxisY                // rotateY is locked at 0
)

// String returns "x", "y" or "" for AxisNone.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return ""
	}
}

// EventType identifies a kind of pointer event a controller subscribes to.
type EventType uint8

const (
	EventPointerEnter EventType = iota // pointer entered the surface bounds
	EventPointerMove                   // pointer moved while over the surface
	EventPointerLeave                  // pointer left the surface bounds
)

// String returns the DOM-style event name.
func (e EventType) String() string {
	switch e {
	case EventPointerEnter:
		return "pointerenter"
	case EventPointerMove:
		return "pointermove"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return "unknown"
	}
}

// PointerEvent carries the pointer position in world (client) coordinates.
type PointerEvent struct {
	X, Y float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
