package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivideTriangle(t *testing.T) {
	tr := newSetUp(t, 10, 0, 0, 4)
	before := tr.Triangle(0)

	p := tr.addPoint(Point{X: 1, Y: -1})
	tr.divideTriangle(p, 0)

	assert.Equal(t, counts{5, 8, 4}, countsOf(tr))
	// The original edges are queued, the spokes are not
	assert.ElementsMatch(t, before.E[:], []EdgeID(tr.stack))

	// Slot 0 is reused for the first sub-triangle and the others are appended
	assert.Equal(t, [3]PointID{before.V[0], before.V[1], p}, tr.Triangle(0).V)
	assert.Equal(t, [3]PointID{before.V[1], before.V[2], p}, tr.Triangle(2).V)
	assert.Equal(t, [3]PointID{before.V[2], before.V[0], p}, tr.Triangle(3).V)

	for _, e := range before.E {
		edge := tr.Edge(e)
		for _, side := range []Neighbor{edge.T0, edge.T1} {
			if id, ok := side.Get(); ok {
				assert.GreaterOrEqual(t, tr.Triangle(id).EdgeIndex(e), 0)
			}
		}
	}

	// Without legalization the mesh is consistent but may not be Delaunay
	tr.stack.Reset()
	for id, tri := range tr.Triangles() {
		assert.NoError(t, tr.validateTriangle(TriangleID(id), tri))
	}
}

func TestLegalize_Flip(t *testing.T) {
	tr := newSetUp(t, 10, 0, 0, 4)
	// Close to the diagonal, well inside the circumcircle of the other triangle
	p := tr.addPoint(Point{X: 0.5, Y: 0})
	tr.divideTriangle(p, 0)

	diagonal := EdgeID(4)
	require.True(t, tr.legalize(diagonal, p))

	edge := tr.Edge(diagonal)
	assert.True(t, edge.Has(p), "flipped diagonal %s should end at the new point", edge)
	assert.True(t, edge.Has(3), "flipped diagonal %s should end at the far corner", edge)

	// The far edges are queued for another look
	assert.ElementsMatch(t, []EdgeID{2, 3}, []EdgeID(tr.stack)[3:])

	// Flipping again is a no-op: the new diagonal is Delaunay
	tr.stack.Reset()
	assert.False(t, tr.legalize(diagonal, p))
	assert.Equal(t, 0, tr.flipFlop(p))
}

func TestLegalize_Skips(t *testing.T) {
	tr := newSetUp(t, 10, 0, 0, 4)

	t.Run("boundary edge", func(t *testing.T) {
		for e, edge := range tr.Edges() {
			if edge.IsBoundary() {
				assert.False(t, tr.legalize(EdgeID(e), 0))
			}
		}
	})

	t.Run("already Delaunay", func(t *testing.T) {
		// Every point inside the square is inside its circumcircle, so the first
		// insertion always flips the diagonal. After that, rechecking every edge
		// of the finished mesh must find nothing to do.
		rng := rand.New(rand.NewSource(5))
		ids, err := tr.InsertAll(RandomPoints(rng, 5, 4)...)
		require.NoError(t, err)
		for e := range tr.Edges() {
			tr.stack.Push(EdgeID(e))
		}
		assert.Equal(t, 0, tr.flipFlop(ids[len(ids)-1]))
		assert.True(t, tr.stack.Empty())
		assert.NoError(t, tr.Validate())
	})
}

func TestLegalize_CorruptMesh(t *testing.T) {
	tr := newSetUp(t, 10, 0, 0, 4)
	// Point the diagonal's left side at a triangle that doesn't have it
	p := tr.addPoint(Point{X: 1, Y: -1})
	tr.divideTriangle(p, 0)
	tr.edges[4].T0 = Adjacent(2)

	assert.Panics(t, func() {
		tr.legalize(4, p)
	})
}
