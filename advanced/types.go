package advanced

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Points are plain r2 coordinates. Once a point is stored in a triangulation it
// is never modified, and it is referred to by its PointID from then on.
type Point = r2.Point

type PointID int

type EdgeID int

type TriangleID int

// Neighbor is a reference to the triangle on one side of an edge. The zero
// value is NoTriangle, which stands for the outside of the enclosing region.
// Only edges on the boundary of the region have a NoTriangle side.
type Neighbor struct {
	id    TriangleID
	valid bool
}

var NoTriangle = Neighbor{}

func Adjacent(id TriangleID) Neighbor {
	return Neighbor{id: id, valid: true}
}

func (n Neighbor) Get() (TriangleID, bool) {
	return n.id, n.valid
}

func (n Neighbor) IsOutside() bool {
	return !n.valid
}

func (n Neighbor) Is(id TriangleID) bool {
	return n.valid && n.id == id
}

func (n Neighbor) String() string {
	if !n.valid {
		return "Ø"
	}
	return fmt.Sprintf("t%d", n.id)
}

// An Edge joins P0 and P1. T0 is the triangle on the left of the directed
// segment P0->P1, and T1 is the triangle on the right.
//
// Edges are never removed. A flip rewrites the endpoints and both sides in
// place, so an EdgeID stays valid for the life of the triangulation.
type Edge struct {
	P0, P1 PointID
	T0, T1 Neighbor
}

// Other returns the triangle on the opposite side of the edge from t.
func (e Edge) Other(t TriangleID) Neighbor {
	if e.T0.Is(t) {
		return e.T1
	}
	return e.T0
}

func (e Edge) IsBoundary() bool {
	return e.T0.IsOutside() || e.T1.IsOutside()
}

func (e Edge) Has(p PointID) bool {
	return e.P0 == p || e.P1 == p
}

// A Triangle lists its vertices in counterclockwise order. E[i] is the edge
// joining V[i] and V[i+1] (mod 3), so the vertex opposite E[i] is V[i+2].
//
// Splits and flips overwrite triangle slots in place. A TriangleID is stable,
// but the triangle it names may change.
type Triangle struct {
	V [3]PointID
	E [3]EdgeID
}

// Index of edge e within the triangle, or -1.
func (t Triangle) EdgeIndex(e EdgeID) int {
	for i, edge := range t.E {
		if edge == e {
			return i
		}
	}
	return -1
}

func (t Triangle) VertexIndex(p PointID) int {
	for i, v := range t.V {
		if v == p {
			return i
		}
	}
	return -1
}

func (t Triangle) HasVertex(p PointID) bool {
	return t.VertexIndex(p) >= 0
}

// Vertex opposite edge slot i
func (t Triangle) Opposite(i int) PointID {
	return t.V[CircularIndex(i+2, 3)]
}

func (t Triangle) String() string {
	return fmt.Sprintf("(p%d p%d p%d | e%d e%d e%d)", t.V[0], t.V[1], t.V[2], t.E[0], t.E[1], t.E[2])
}

func (e Edge) String() string {
	return fmt.Sprintf("p%d->p%d [L: %s, R: %s]", e.P0, e.P1, e.T0, e.T1)
}
