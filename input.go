package tilt

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

// pointerState tracks the mouse pointer between ticks. hoverChain holds the
// hovered node followed by its ancestors, innermost first.
type pointerState struct {
	seen       bool
	lastX      float64
	lastY      float64
	hoverChain []*Node
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the local Width×Height rectangle.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	for _, child := range n.sortedChildList() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Hit testing uses the untilted rectangle so the tilt itself cannot make
// the pointer flicker in and out at the edges.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Step. Injected events take priority
// over the real cursor.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.cursor == nil {
		return
	}
	mx, my := s.cursor()
	s.processPointer(float64(mx), float64(my), true)
}

// processPointer runs the hover state machine for one pointer sample.
// inside is false when the pointer left the window.
func (s *Scene) processPointer(wx, wy float64, inside bool) {
	ps := &s.pointer
	moved := !ps.seen || wx != ps.lastX || wy != ps.lastY

	var target *Node
	if inside {
		target = s.hitTest(wx, wy)
	}

	// Build the new chain: target and its ancestors.
	chain := s.chainBuf[:0]
	for n := target; n != nil; n = n.Parent {
		chain = append(chain, n)
	}

	// Leave: nodes in the old chain that are not in the new one, innermost first.
	for _, n := range ps.hoverChain {
		if !containsNode(chain, n) {
			s.firePointer(EventPointerLeave, n, wx, wy)
		}
	}
	// Enter: nodes in the new chain that were not hovered, outermost first.
	for i := len(chain) - 1; i >= 0; i-- {
		if !containsNode(ps.hoverChain, chain[i]) {
			s.firePointer(EventPointerEnter, chain[i], wx, wy)
		}
	}

	// Reuse the old chain's backing array for the next tick's scratch buffer.
	s.chainBuf = ps.hoverChain[:0]
	ps.hoverChain = chain

	if moved && inside {
		// Move bubbles from the target to its ancestors.
		for _, n := range chain {
			s.firePointer(EventPointerMove, n, wx, wy)
		}
	}

	ps.seen = true
	ps.lastX = wx
	ps.lastY = wy
}

func containsNode(list []*Node, n *Node) bool {
	for _, m := range list {
		if m == n {
			return true
		}
	}
	return false
}

// HoveredNode returns the innermost node under the pointer, or nil.
func (s *Scene) HoveredNode() *Node {
	if len(s.pointer.hoverChain) == 0 {
		return nil
	}
	return s.pointer.hoverChain[0]
}

// --- Event dispatch ---

// firePointer delivers one pointer event to scene handlers, the node's
// callback field, and the node's subscribers, in that order.
func (s *Scene) firePointer(event EventType, node *Node, wx, wy float64) {
	if node.disposed {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	ctx := PointerContext{
		Node: node, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
	}
	s.stats.pointerEvents++

	s.handlers.firePointer(event, ctx)

	var cb func(PointerContext)
	switch event {
	case EventPointerEnter:
		cb = node.OnPointerEnter
	case EventPointerMove:
		cb = node.OnPointerMove
	case EventPointerLeave:
		cb = node.OnPointerLeave
	}
	if cb != nil {
		cb(ctx)
	}

	node.listeners.firePointer(event, ctx)
}
