package advanced

// Split triangle t = (a, b, c) around point p, which lies inside it (or on its
// boundary). Slot t is reused for (a, b, p), and (b, c, p) and (c, a, p) are
// appended. The three spokes from p are Delaunay by construction, but the
// original edges ab, bc and ca may no longer be, so they go on the
// legalization stack.
//
//	        c
//	       /|\
//	      / | \
//	     /  p  \
//	    / /   \ \
//	   a ------- b
func (tr *Triangulation) divideTriangle(p PointID, t TriangleID) {
	if int(t) >= len(tr.triangles) {
		fatalf("cannot divide triangle %d of %d", t, len(tr.triangles))
	}
	tri := tr.triangles[t]
	a, b, c := tri.V[0], tri.V[1], tri.V[2]
	ab, bc, ca := tri.E[0], tri.E[1], tri.E[2]

	pa := tr.addEdge(a, p)
	pb := tr.addEdge(b, p)
	pc := tr.addEdge(c, p)

	t1 := tr.nextTriangleID()
	t2 := t1 + 1

	// Order matters: t1 has to exist before t2 can be appended
	tr.setTriangle(t, [3]PointID{a, b, p}, [3]EdgeID{ab, pb, pa})
	tr.setTriangle(t1, [3]PointID{b, c, p}, [3]EdgeID{bc, pc, pb})
	tr.setTriangle(t2, [3]PointID{c, a, p}, [3]EdgeID{ca, pa, pc})

	tr.stack.Push(ab)
	tr.stack.Push(bc)
	tr.stack.Push(ca)
}
