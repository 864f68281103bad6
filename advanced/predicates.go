package advanced

// Geometric predicates. All of them work on plain coordinates and compare
// against a fixed Epsilon rather than zero, so that rounding noise in nearly
// collinear or nearly cocircular configurations reads as a tie. Ties always
// resolve towards "do not flip", which is what guarantees that legalization
// terminates.

// Machine epsilon for float64 (2^-52)
const machineEpsilon = 0x1p-52

// Epsilon is the absolute tolerance used by every predicate.
const Epsilon = 4096 * machineEpsilon

// Twice the signed area of triangle a, b, c. Positive when counterclockwise.
func signedArea2(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func sign(v float64) int {
	if v > Epsilon {
		return 1
	}
	if v < -Epsilon {
		return -1
	}
	return 0
}

// Orientation returns +1 if a->b->c turns counterclockwise, -1 if it turns
// clockwise, and 0 if the three points are collinear within Epsilon.
func Orientation(a, b, c Point) int {
	return sign(signedArea2(a, b, c))
}

// SideOfQuery is Orientation(a, b, (x, y)) for a coordinate that has not been
// stored as a point yet. Positive means the query is on the left of a->b.
func SideOfQuery(a, b Point, x, y float64) int {
	return Orientation(a, b, Point{X: x, Y: y})
}

// Flippable reports whether the quadrilateral p0, p1, p2, p3 (counterclockwise,
// current diagonal p0-p2) is strictly convex, so that replacing the diagonal
// with p1-p3 yields two properly oriented triangles. That holds when p0 and p2
// lie strictly on opposite sides of the line through p1 and p3.
//
// When p1 (or p3) sits exactly on the diagonal p0-p2 the quadrilateral is really
// a triangle with a point on one side, and the flip is allowed: it is how a
// point inserted on an existing edge ends up with four proper triangles.
func Flippable(p0, p1, p2, p3 Point) bool {
	side0 := Orientation(p1, p3, p0)
	side2 := Orientation(p1, p3, p2)
	return side0 != 0 && side0 == -side2
}

// InCircumcircle reports whether p3 lies strictly inside the circumcircle of
// triangle p0, p1, p2. The triangle is expected counterclockwise; a clockwise
// triple is accepted and handled by sign. Points on the circle (within
// Epsilon) are not inside.
func InCircumcircle(p0, p1, p2, p3 Point) bool {
	adx, ady := p0.X-p3.X, p0.Y-p3.Y
	bdx, bdy := p1.X-p3.X, p1.Y-p3.Y
	cdx, cdy := p2.X-p3.X, p2.Y-p3.Y

	det := (adx*adx+ady*ady)*(bdx*cdy-cdx*bdy) +
		(bdx*bdx+bdy*bdy)*(cdx*ady-adx*cdy) +
		(cdx*cdx+cdy*cdy)*(adx*bdy-bdx*ady)

	if Orientation(p0, p1, p2) < 0 {
		det = -det
	}
	return det > Epsilon
}
