package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate checks the structural and geometric invariants of the mesh and
// returns every violation it finds, combined into one error:
//
//  1. Every triangle is counterclockwise (zero area is tolerated).
//  2. Edge E[i] of a triangle joins V[i] and V[i+1], and names the triangle on
//     the matching side.
//  3. Every triangle an edge names lists that edge.
//  4. Only boundary edges have an outside side.
//  5. Every interior edge is locally Delaunay.
//  6. Counts match what Setup plus n insertions produce.
func (tr *Triangulation) Validate() error {
	var err error
	for id, tri := range tr.triangles {
		err = multierr.Append(err, tr.validateTriangle(TriangleID(id), tri))
	}
	for id, edge := range tr.edges {
		err = multierr.Append(err, tr.validateEdge(EdgeID(id), edge))
	}
	if tr.ready {
		inserted := len(tr.points) - 4
		if want := 2 + 2*inserted; len(tr.triangles) != want {
			err = multierr.Append(err, errors.Errorf("%d triangles after %d insertions, want %d", len(tr.triangles), inserted, want))
		}
		if want := 5 + 3*inserted; len(tr.edges) != want {
			err = multierr.Append(err, errors.Errorf("%d edges after %d insertions, want %d", len(tr.edges), inserted, want))
		}
	}
	return err
}

func (tr *Triangulation) validateTriangle(id TriangleID, tri Triangle) error {
	var err error
	for _, v := range tri.V {
		if int(v) < 0 || int(v) >= len(tr.points) {
			return errors.Errorf("triangle %d %s: vertex %d out of range", id, tri, v)
		}
	}
	a, b, c := tr.points[tri.V[0]], tr.points[tri.V[1]], tr.points[tri.V[2]]
	if Orientation(a, b, c) < 0 {
		err = multierr.Append(err, errors.Errorf("triangle %d %s is clockwise", id, tri))
	}
	for i, e := range tri.E {
		if int(e) < 0 || int(e) >= len(tr.edges) {
			err = multierr.Append(err, errors.Errorf("triangle %d %s: edge %d out of range", id, tri, e))
			continue
		}
		edge := tr.edges[e]
		from, to := tri.V[i], tri.V[CircularIndex(i+1, 3)]
		switch {
		case edge.P0 == from && edge.P1 == to:
			if !edge.T0.Is(id) {
				err = multierr.Append(err, errors.Errorf("triangle %d: edge %d (%s) has %s on the left", id, e, edge, edge.T0))
			}
		case edge.P0 == to && edge.P1 == from:
			if !edge.T1.Is(id) {
				err = multierr.Append(err, errors.Errorf("triangle %d: edge %d (%s) has %s on the right", id, e, edge, edge.T1))
			}
		default:
			err = multierr.Append(err, errors.Errorf("triangle %d: edge slot %d holds edge %d (%s), which does not join p%d and p%d", id, i, e, edge, from, to))
		}
	}
	return err
}

func (tr *Triangulation) validateEdge(id EdgeID, edge Edge) error {
	var err error
	for _, side := range []Neighbor{edge.T0, edge.T1} {
		t, ok := side.Get()
		if !ok {
			continue
		}
		if int(t) >= len(tr.triangles) {
			err = multierr.Append(err, errors.Errorf("edge %d (%s): triangle %d out of range", id, edge, t))
			continue
		}
		if tr.triangles[t].EdgeIndex(id) < 0 {
			err = multierr.Append(err, errors.Errorf("edge %d (%s): triangle %d %s does not list it", id, edge, t, tr.triangles[t]))
		}
	}
	if err != nil {
		return err
	}

	left, okL := edge.T0.Get()
	right, okR := edge.T1.Get()
	if !okL || !okR {
		if tr.onRegionBoundary(edge) {
			return nil
		}
		return errors.Errorf("edge %d (%s) is inside the region but has an outside side", id, edge)
	}

	lt, rt := tr.triangles[left], tr.triangles[right]
	r := lt.Opposite(lt.EdgeIndex(id))
	l := rt.Opposite(rt.EdgeIndex(id))
	if tr.isDegenerate(lt) || tr.isDegenerate(rt) {
		// A zero area triangle has no meaningful circumcircle
		return nil
	}
	P, R, L := tr.points, tr.points[r], tr.points[l]
	if InCircumcircle(P[lt.V[0]], P[lt.V[1]], P[lt.V[2]], L) || InCircumcircle(P[rt.V[0]], P[rt.V[1]], P[rt.V[2]], R) {
		return errors.Errorf("edge %d (%s) is not locally Delaunay", id, edge)
	}
	return nil
}

func (tr *Triangulation) isDegenerate(tri Triangle) bool {
	return Orientation(tr.points[tri.V[0]], tr.points[tri.V[1]], tr.points[tri.V[2]]) == 0
}

// Whether both endpoints sit on the same side of the enclosing square
func (tr *Triangulation) onRegionBoundary(edge Edge) bool {
	a, b := tr.points[edge.P0], tr.points[edge.P1]
	x, y := tr.region.X, tr.region.Y
	return (Equal(a.X, x.Lo) && Equal(b.X, x.Lo)) ||
		(Equal(a.X, x.Hi) && Equal(b.X, x.Hi)) ||
		(Equal(a.Y, y.Lo) && Equal(b.Y, y.Lo)) ||
		(Equal(a.Y, y.Hi) && Equal(b.Y, y.Hi))
}
