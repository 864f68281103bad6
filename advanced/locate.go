package advanced

import "go.uber.org/zap"

// FindTriangle returns the triangle containing (x, y), or false if the
// coordinate is outside the enclosing region. Points on a triangle's boundary
// count as inside it.
//
// The search walks from the most recently written triangle towards the query:
// at each step it crosses the first edge (other than the one it came through)
// that has the query strictly on its outer side. Walking off a boundary edge
// means the query is outside the region, which is convex.
func (tr *Triangulation) FindTriangle(x, y float64) (TriangleID, bool) {
	n := len(tr.triangles)
	if n == 0 {
		return 0, false
	}

	current := TriangleID(n - 1)
	var entry EdgeID
	hasEntry := false

	// A walk over a Delaunay triangulation cannot revisit a triangle, so it never
	// takes more steps than there are triangles. If tolerance effects ever make
	// it do so, fall back to checking every triangle.
walk:
	for steps := 0; steps <= n; steps++ {
		tri := tr.triangles[current]
		for i, e := range tri.E {
			if hasEntry && e == entry {
				continue
			}
			a := tr.points[tri.V[i]]
			b := tr.points[tri.V[CircularIndex(i+1, 3)]]
			if SideOfQuery(a, b, x, y) >= 0 {
				continue
			}
			next, ok := tr.edges[e].Other(current).Get()
			if !ok {
				return 0, false
			}
			current, entry, hasEntry = next, e, true
			continue walk
		}
		return current, true
	}

	tr.logger.Warn("triangle walk did not converge, scanning",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Int("triangles", n),
	)
	return tr.scanForTriangle(x, y)
}

func (tr *Triangulation) scanForTriangle(x, y float64) (TriangleID, bool) {
	for id := range tr.triangles {
		if tr.contains(TriangleID(id), x, y) {
			return TriangleID(id), true
		}
	}
	return 0, false
}

// Whether (x, y) is inside or on the boundary of triangle t
func (tr *Triangulation) contains(t TriangleID, x, y float64) bool {
	tri := tr.triangles[t]
	for i := range tri.V {
		a := tr.points[tri.V[i]]
		b := tr.points[tri.V[CircularIndex(i+1, 3)]]
		if SideOfQuery(a, b, x, y) < 0 {
			return false
		}
	}
	return true
}
