package tilt

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// quadDivisions is the number of grid cells per side used to draw a node.
// A projected quad drawn as two triangles shows an affine seam; a small
// grid keeps the perspective texture mapping visually straight.
const quadDivisions = 4

// quadIndices is shared by every node quad.
var quadIndices = buildGridIndices(quadDivisions)

func buildGridIndices(div int) []uint16 {
	stride := div + 1
	inds := make([]uint16, 0, div*div*6)
	for row := 0; row < div; row++ {
		for col := 0; col < div; col++ {
			i0 := uint16(row*stride + col)
			i1 := i0 + 1
			i2 := i0 + uint16(stride)
			i3 := i2 + 1
			inds = append(inds, i0, i1, i2, i1, i3, i2)
		}
	}
	return inds
}

// --- White pixel singleton (no sync.Once; the scene is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// for solid-color nodes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// projectLocal maps a point in n's local space to world space, applying the
// 3D transform of n and of every ancestor on the way up, so children tilt
// with their parent.
func (n *Node) projectLocal(x, y float64) (float64, float64) {
	for k := n; k != nil; k = k.Parent {
		if !k.transform.IsNeutral() {
			x, y = k.transform.Project(x, y, k.Width/2, k.Height/2)
		}
		x, y = transformPoint(computeLocalTransform(k), x, y)
	}
	return x, y
}

// ProjectedCorners returns the node's four corners in world space after
// tilt, clockwise from top-left.
func (n *Node) ProjectedCorners() [4]Vec2 {
	var out [4]Vec2
	pts := [4][2]float64{{0, 0}, {n.Width, 0}, {n.Width, n.Height}, {0, n.Height}}
	for i, p := range pts {
		out[i].X, out[i].Y = n.projectLocal(p[0], p[1])
	}
	return out
}

// buildVertices fills the node's grid vertex buffer for the srcW×srcH
// source region at (srcX, srcY) and returns it.
func (n *Node) buildVertices(srcX, srcY, srcW, srcH float64) []ebiten.Vertex {
	stride := quadDivisions + 1
	need := stride * stride
	if cap(n.verts) < need {
		n.verts = make([]ebiten.Vertex, need)
	}
	n.verts = n.verts[:need]

	c := n.Color
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)

	for row := 0; row < stride; row++ {
		fy := float64(row) / quadDivisions
		for col := 0; col < stride; col++ {
			fx := float64(col) / quadDivisions
			wx, wy := n.projectLocal(fx*n.Width, fy*n.Height)
			n.verts[row*stride+col] = ebiten.Vertex{
				DstX:   float32(wx),
				DstY:   float32(wy),
				SrcX:   float32(srcX + fx*srcW),
				SrcY:   float32(srcY + fy*srcH),
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			}
		}
	}
	return n.verts
}

// Draw renders the scene tree onto screen, then writes any queued
// screenshots of the result.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.drawNode(screen, s.root)
	s.flushScreenshots(screen)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 {
		img := n.Image
		var srcX, srcY float64
		srcW, srcH := 1.0, 1.0
		if img == nil {
			img = ensureWhitePixel()
		} else {
			b := img.Bounds()
			srcX, srcY = float64(b.Min.X), float64(b.Min.Y)
			srcW, srcH = float64(b.Dx()), float64(b.Dy())
		}
		verts := n.buildVertices(srcX, srcY, srcW, srcH)
		op := &ebiten.DrawTrianglesOptions{}
		op.Filter = ebiten.FilterLinear
		dst.DrawTriangles(verts, quadIndices, img, op)
	}
	for _, child := range n.sortedChildList() {
		s.drawNode(dst, child)
	}
}
