package advanced

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 1, Y: 0}

	assert.Equal(t, 1, Orientation(a, b, Point{X: 0.5, Y: 1}))
	assert.Equal(t, -1, Orientation(a, b, Point{X: 0.5, Y: -1}))
	assert.Equal(t, 0, Orientation(a, b, Point{X: 3, Y: 0}))

	// Rotating the triple keeps the sign, swapping two points flips it
	c := Point{X: 0.2, Y: 0.7}
	assert.Equal(t, Orientation(a, b, c), Orientation(b, c, a))
	assert.Equal(t, Orientation(a, b, c), Orientation(c, a, b))
	assert.Equal(t, -Orientation(a, b, c), Orientation(b, a, c))

	t.Run("within epsilon is collinear", func(t *testing.T) {
		assert.Equal(t, 0, Orientation(a, b, Point{X: 0.5, Y: Epsilon / 4}))
		assert.Equal(t, 0, Orientation(a, b, Point{X: 0.5, Y: -Epsilon / 4}))
		assert.Equal(t, 1, Orientation(a, b, Point{X: 0.5, Y: 1e-9}))
	})
}

func TestOrientation_Rotated(t *testing.T) {
	// The sign must survive rotation and translation of a CCW triangle
	for i := 0; i < 14; i++ {
		i := i
		t.Run(fmt.Sprintf("rotation %d", i), func(t *testing.T) {
			angle := float64(i) * math.Pi / 7
			rotate := func(p Point) Point {
				cos, sin := math.Cos(angle), math.Sin(angle)
				return Point{X: p.X*cos - p.Y*sin + 5, Y: p.X*sin + p.Y*cos + 3}
			}
			a := rotate(Point{X: 0, Y: -1})
			b := rotate(Point{X: 1, Y: 0})
			c := rotate(Point{X: 0, Y: 1})
			assert.Equal(t, 1, Orientation(a, b, c))
			assert.Equal(t, -1, Orientation(a, c, b))
		})
	}
}

func TestSideOfQuery(t *testing.T) {
	a := Point{X: -1, Y: -1}
	b := Point{X: 1, Y: 1}
	assert.Equal(t, 1, SideOfQuery(a, b, -1, 1))
	assert.Equal(t, -1, SideOfQuery(a, b, 1, -1))
	assert.Equal(t, 0, SideOfQuery(a, b, 0, 0))
	assert.Equal(t, Orientation(a, b, Point{X: 0.3, Y: 0.9}), SideOfQuery(a, b, 0.3, 0.9))
}

func TestFlippable(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p2 := Point{X: 2, Y: 0}

	t.Run("convex", func(t *testing.T) {
		// Quad p0, p1, p2, p3 in counterclockwise order around the diagonal p0-p2
		p1 := Point{X: 1, Y: -1}
		p3 := Point{X: 1, Y: 1}
		assert.True(t, Flippable(p0, p1, p2, p3))
	})

	t.Run("reflex at p2", func(t *testing.T) {
		// Both opposite points are far to the right, so p2 is a reflex vertex and
		// p1-p3 passes outside the quad
		p1 := Point{X: 5, Y: -1}
		p3 := Point{X: 5, Y: 1}
		assert.False(t, Flippable(p0, p1, p2, p3))
	})

	t.Run("p2 on the new diagonal", func(t *testing.T) {
		p1 := Point{X: 2, Y: -1}
		p3 := Point{X: 2, Y: 1}
		assert.False(t, Flippable(p0, p1, p2, p3))
	})

	t.Run("point on the old diagonal", func(t *testing.T) {
		p1 := Point{X: 1, Y: -1}
		p3 := Point{X: 1, Y: 0}
		assert.True(t, Flippable(p0, p1, p2, p3))
	})
}

func TestInCircumcircle(t *testing.T) {
	// Unit circle through three CCW points
	a := Point{X: 1, Y: 0}
	b := Point{X: 0, Y: 1}
	c := Point{X: -1, Y: 0}

	assert.True(t, InCircumcircle(a, b, c, Point{X: 0, Y: 0}))
	assert.True(t, InCircumcircle(a, b, c, Point{X: 0, Y: -0.99}))
	assert.False(t, InCircumcircle(a, b, c, Point{X: 0, Y: -1.01}))
	assert.False(t, InCircumcircle(a, b, c, Point{X: 3, Y: 3}))

	t.Run("cocircular is not inside", func(t *testing.T) {
		assert.False(t, InCircumcircle(a, b, c, Point{X: 0, Y: -1}))
		// Integer points on a circle of radius 5 are exact
		assert.False(t, InCircumcircle(Point{X: 5, Y: 0}, Point{X: 3, Y: 4}, Point{X: -4, Y: 3}, Point{X: -3, Y: -4}))
	})

	t.Run("orientation of the triangle does not matter", func(t *testing.T) {
		assert.True(t, InCircumcircle(c, b, a, Point{X: 0, Y: 0}))
		assert.False(t, InCircumcircle(c, b, a, Point{X: 3, Y: 3}))
	})

	t.Run("symmetric across a convex quad", func(t *testing.T) {
		p0 := Point{X: 0, Y: 0}
		p1 := Point{X: 2, Y: -0.5}
		p2 := Point{X: 4, Y: 0}
		p3 := Point{X: 2, Y: 0.5}
		assert.Equal(t, InCircumcircle(p0, p1, p2, p3), InCircumcircle(p2, p3, p0, p1))
		assert.True(t, InCircumcircle(p0, p1, p2, p3))
	})

	t.Run("point on a chord is inside", func(t *testing.T) {
		assert.True(t, InCircumcircle(a, b, c, Point{X: 0.5, Y: 0.5}))
	})
}
