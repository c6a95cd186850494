package tilt

import (
	"math"
	"strconv"
	"strings"
)

// Transform is the 3D "style" a controller writes to a surface: a
// perspective distance, rotations about the X and Y axes, and a uniform
// scale. Rotations are in degrees; the origin is the surface centre.
type Transform struct {
	Perspective float64
	RotateX     float64
	RotateY     float64
	Scale       float64
}

// NeutralTransform returns the rest pose: no rotation, unit scale.
func NeutralTransform(perspective float64) Transform {
	return Transform{Perspective: perspective, Scale: 1}
}

// IsNeutral reports whether t has no rotation and unit scale.
func (t Transform) IsNeutral() bool {
	return t.RotateX == 0 && t.RotateY == 0 && t.Scale == 1
}

// String renders t in CSS transform syntax, e.g.
//
//	perspective(1000px) rotateX(-3deg) rotateY(3deg) scale3d(0.96, 0.96, 0.96)
func (t Transform) String() string {
	var b strings.Builder
	b.WriteString("perspective(")
	b.WriteString(formatNumber(t.Perspective))
	b.WriteString("px) rotateX(")
	b.WriteString(formatNumber(t.RotateX))
	b.WriteString("deg) rotateY(")
	b.WriteString(formatNumber(t.RotateY))
	b.WriteString("deg) scale3d(")
	s := formatNumber(t.Scale)
	b.WriteString(s)
	b.WriteString(", ")
	b.WriteString(s)
	b.WriteString(", ")
	b.WriteString(s)
	b.WriteString(")")
	return b.String()
}

func formatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// minPerspectiveW keeps the perspective divide finite when a point swings
// behind the viewer.
const minPerspectiveW = 1e-3

// Project maps the local point (x, y) through t, rotating about (cx, cy).
// The composition follows CSS order: scale, rotateY, rotateX, then the
// perspective divide. A non-positive Perspective disables the divide.
func (t Transform) Project(x, y, cx, cy float64) (float64, float64) {
	px := (x - cx) * t.Scale
	py := (y - cy) * t.Scale
	pz := 0.0

	// rotateY
	sinY, cosY := math.Sincos(t.RotateY * math.Pi / 180)
	px, pz = px*cosY+pz*sinY, -px*sinY+pz*cosY

	// rotateX
	sinX, cosX := math.Sincos(t.RotateX * math.Pi / 180)
	py, pz = py*cosX-pz*sinX, py*sinX+pz*cosX

	if t.Perspective > 0 {
		w := 1 - pz/t.Perspective
		if w < minPerspectiveW {
			w = minPerspectiveW
		}
		px /= w
		py /= w
	}
	return cx + px, cy + py
}

// --- 2D node placement ---

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// placement properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Placement setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's 2D rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's placement as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}
