package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate_Empty(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)
	assert.NoError(t, tr.Validate())
}

func TestValidate_DetectsCorruption(t *testing.T) {
	build := func(t *testing.T) *Triangulation {
		tr := newSetUp(t, 10, 0, 0, 4)
		_, err := tr.InsertAll(Point{X: 0.5, Y: 0.25}, Point{X: -0.75, Y: 1})
		require.NoError(t, err)
		require.NoError(t, tr.Validate())
		return tr
	}

	t.Run("clockwise triangle", func(t *testing.T) {
		tr := build(t)
		tri := &tr.triangles[1]
		tri.V[0], tri.V[1] = tri.V[1], tri.V[0]
		err := tr.Validate()
		assert.ErrorContains(t, err, "is clockwise")
	})

	t.Run("stale back reference", func(t *testing.T) {
		tr := build(t)
		for e, edge := range tr.edges {
			if !edge.IsBoundary() {
				tr.edges[e].T0, tr.edges[e].T1 = edge.T1, edge.T0
				break
			}
		}
		err := tr.Validate()
		assert.ErrorContains(t, err, "on the left")
		assert.ErrorContains(t, err, "on the right")
	})

	t.Run("edge missing from triangle", func(t *testing.T) {
		tr := build(t)
		for id, tri := range tr.triangles {
			if tri.EdgeIndex(0) < 0 {
				tr.edges[0].T0 = Adjacent(TriangleID(id))
				break
			}
		}
		assert.ErrorContains(t, tr.Validate(), "does not list it")
	})

	t.Run("interior edge with an outside side", func(t *testing.T) {
		tr := build(t)
		for e, edge := range tr.edges {
			if !edge.IsBoundary() {
				tr.edges[e].T1 = NoTriangle
				break
			}
		}
		assert.ErrorContains(t, tr.Validate(), "has an outside side")
	})

	t.Run("not Delaunay", func(t *testing.T) {
		tr := build(t)
		// Flip the first flippable interior edge by hand. It was Delaunay, so the
		// other diagonal is not.
		for e, edge := range tr.edges {
			left, okL := edge.T0.Get()
			right, okR := edge.T1.Get()
			if !okL || !okR {
				continue
			}
			lt, rt := tr.triangles[left], tr.triangles[right]
			r := lt.Opposite(lt.EdgeIndex(EdgeID(e)))
			l := rt.Opposite(rt.EdgeIndex(EdgeID(e)))
			if !Flippable(tr.points[edge.P0], tr.points[l], tr.points[edge.P1], tr.points[r]) {
				continue
			}
			i, j := lt.EdgeIndex(EdgeID(e)), rt.EdgeIndex(EdgeID(e))
			tr.edges[e] = Edge{P0: r, P1: l}
			tr.setTriangle(left, [3]PointID{r, edge.P0, l}, [3]EdgeID{lt.E[CircularIndex(i+2, 3)], rt.E[CircularIndex(j+1, 3)], EdgeID(e)})
			tr.setTriangle(right, [3]PointID{l, edge.P1, r}, [3]EdgeID{rt.E[CircularIndex(j+2, 3)], lt.E[CircularIndex(i+1, 3)], EdgeID(e)})
			break
		}
		err := tr.Validate()
		assert.ErrorContains(t, err, "not locally Delaunay")
		// Only the geometry is wrong, the structure is intact
		for _, e := range multierr.Errors(err) {
			assert.Contains(t, e.Error(), "not locally Delaunay")
		}
	})

	t.Run("wrong counts", func(t *testing.T) {
		tr := build(t)
		tr.points = append(tr.points, Point{X: 1.5, Y: 1.5})
		err := tr.Validate()
		assert.ErrorContains(t, err, "triangles after 3 insertions")
		assert.ErrorContains(t, err, "edges after 3 insertions")
	})
}
