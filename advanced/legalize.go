package advanced

import "go.uber.org/zap"

// Drain the legalization stack after inserting p, flipping every edge that is
// no longer locally Delaunay. Returns the number of flips.
func (tr *Triangulation) flipFlop(p PointID) int {
	flips := 0
	for {
		e, ok := tr.stack.Pop()
		if !ok {
			return flips
		}
		if tr.legalize(e, p) {
			flips++
		}
	}
}

// Flip edge e if that is needed to make it locally Delaunay with respect to the
// new point p. When it flips, the two edges of the quadrilateral that do not
// touch p are pushed for another look.
//
// Before the flip, with the left triangle above the diagonal p0->p2:
//
//	      r
//	     / \
//	    /   \
//	  p0 --- p2
//	    \   /
//	     \ /
//	      l
//
// After the flip the diagonal runs r->l, with (r, p0, l) in the left slot and
// (l, p2, r) in the right slot.
func (tr *Triangulation) legalize(e EdgeID, p PointID) bool {
	edge := tr.edges[e]
	left, ok := edge.T0.Get()
	if !ok {
		return false
	}
	right, ok := edge.T1.Get()
	if !ok {
		return false
	}
	p0, p2 := edge.P0, edge.P1

	// The left triangle runs p0 -> p2 -> r
	lt := tr.triangles[left]
	i := lt.EdgeIndex(e)
	if i < 0 || lt.V[i] != p0 {
		fatalf("edge %d (%s) is not p0->p2 in its left triangle %d %s", e, edge, left, lt)
	}
	r := lt.Opposite(i)
	p2r := lt.E[CircularIndex(i+1, 3)]
	rp0 := lt.E[CircularIndex(i+2, 3)]

	// The right triangle runs p2 -> p0 -> l
	rt := tr.triangles[right]
	j := rt.EdgeIndex(e)
	if j < 0 || rt.V[j] != p2 {
		fatalf("edge %d (%s) is not p2->p0 in its right triangle %d %s", e, edge, right, rt)
	}
	l := rt.Opposite(j)
	p0l := rt.E[CircularIndex(j+1, 3)]
	lp2 := rt.E[CircularIndex(j+2, 3)]

	P0, P2, R, L := tr.points[p0], tr.points[p2], tr.points[r], tr.points[l]
	if !Flippable(P0, L, P2, R) {
		return false
	}

	// Test the new point against the circle of the triangle across from it
	var inside bool
	if p == r {
		inside = InCircumcircle(P2, P0, L, R)
	} else {
		inside = InCircumcircle(P0, P2, R, L)
	}
	if !inside {
		return false
	}

	tr.edges[e] = Edge{P0: r, P1: l}
	tr.setTriangle(left, [3]PointID{r, p0, l}, [3]EdgeID{rp0, p0l, e})
	tr.setTriangle(right, [3]PointID{l, p2, r}, [3]EdgeID{lp2, p2r, e})

	tr.logger.Debug("flipped edge",
		zap.Int("edge", int(e)),
		zap.Int("from0", int(p0)),
		zap.Int("from1", int(p2)),
		zap.Int("to0", int(r)),
		zap.Int("to1", int(l)),
	)

	switch p {
	case r:
		tr.stack.Push(p0l)
		tr.stack.Push(lp2)
	case l:
		tr.stack.Push(rp0)
		tr.stack.Push(p2r)
	default:
		tr.stack.Push(p0l)
		tr.stack.Push(lp2)
		tr.stack.Push(rp0)
		tr.stack.Push(p2r)
	}
	return true
}
