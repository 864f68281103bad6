// An incremental Delaunay triangulation package for Go.
//
// Points are inserted one at a time into a fixed square region, and the
// triangulation satisfies the empty circumcircle property after every
// insertion. Storage is allocated once, up front, and ids for points, edges
// and triangles are stable, so the output arrays can be consumed directly by a
// mesh builder.
//
// The advanced package exposes the same types along with the predicates and
// point location.
package delaunay

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type PointID = advanced.PointID
type EdgeID = advanced.EdgeID
type TriangleID = advanced.TriangleID
type Edge = advanced.Edge
type Triangle = advanced.Triangle
type Triangulation = advanced.Triangulation
type Option = advanced.Option

var (
	ErrInvalidCapacity  = advanced.ErrInvalidCapacity
	ErrInvalidRegion    = advanced.ErrInvalidRegion
	ErrNotSetUp         = advanced.ErrNotSetUp
	ErrOutOfRegion      = advanced.ErrOutOfRegion
	ErrCapacityExceeded = advanced.ErrCapacityExceeded
	ErrDuplicatePoint   = advanced.ErrDuplicatePoint
)

var WithLogger = advanced.WithLogger

// New creates an empty triangulation for up to maxPoints points, counting the
// four region corners. Call Setup on it before inserting.
func New(maxPoints int, opts ...Option) (*Triangulation, error) {
	return advanced.New(maxPoints, opts...)
}

// Triangulate builds the triangulation of points inside the smallest square
// centered on region that covers it. Points must lie inside the square and be
// distinct.
func Triangulate(region r2.Rect, points []Point, opts ...Option) (*Triangulation, error) {
	if region.IsEmpty() {
		return nil, errors.Wrap(ErrInvalidRegion, "empty region")
	}
	tr, err := New(len(points)+4, opts...)
	if err != nil {
		return nil, err
	}
	center := region.Center()
	size := math.Max(region.X.Length(), region.Y.Length())
	if err := tr.Setup(center.X, center.Y, size); err != nil {
		return nil, err
	}
	if _, err := tr.InsertAll(points...); err != nil {
		return nil, err
	}
	return tr, nil
}
