package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Triangulation is an incremental Delaunay triangulation over a fixed
// enclosing square. Points are added one at a time with Insert, and the
// triangulation satisfies the empty circumcircle property after every call.
//
// A Triangulation is not safe for concurrent use. Insert, Setup and Clear must
// be serialized against each other and against reads of the views returned by
// Points, Edges and Triangles.
type Triangulation struct {
	storage
	maxPoints int
	stack     EdgeStack
	region    r2.Rect
	ready     bool
	logger    *zap.Logger
}

type Option func(*Triangulation)

// WithLogger sets the logger used for per-insertion debug events. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(tr *Triangulation) {
		if logger != nil {
			tr.logger = logger
		}
	}
}

// New allocates a triangulation for at most maxPoints points, including the four
// corners created by Setup. Storage is never grown after this.
func New(maxPoints int, opts ...Option) (*Triangulation, error) {
	if maxPoints < 4 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "max points %d", maxPoints)
	}
	tr := &Triangulation{
		storage:   newStorage(maxPoints),
		maxPoints: maxPoints,
		stack:     make(EdgeStack, 0, 3*maxPoints),
		region:    r2.EmptyRect(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr, nil
}

// Setup creates the enclosing region: an axis aligned square with side length
// size centered on (x, y), as four corner points and two triangles. It must be
// called once before Insert, and again only after Clear.
func (tr *Triangulation) Setup(x, y, size float64) error {
	if tr.ready {
		return ErrAlreadySetUp
	}
	if !(size > 0) || math.IsInf(size, 0) || !finite(x, y) {
		return errors.Wrapf(ErrInvalidRegion, "center (%g, %g) size %g", x, y, size)
	}
	if !tr.hasRoom(4, 5, 2) {
		return errors.Wrap(ErrCapacityExceeded, "setting up region")
	}

	region := r2.RectFromCenterSize(Point{X: x, Y: y}, Point{X: size, Y: size})
	// Counterclockwise from the lower left corner
	corners := region.Vertices()
	var p [4]PointID
	for i, corner := range corners {
		p[i] = tr.addPoint(corner)
	}

	bottom := tr.addEdge(p[0], p[1])
	right := tr.addEdge(p[1], p[2])
	top := tr.addEdge(p[2], p[3])
	left := tr.addEdge(p[3], p[0])
	diagonal := tr.addEdge(p[0], p[2])

	tr.setTriangle(tr.nextTriangleID(), [3]PointID{p[0], p[1], p[2]}, [3]EdgeID{bottom, right, diagonal})
	tr.setTriangle(tr.nextTriangleID(), [3]PointID{p[0], p[2], p[3]}, [3]EdgeID{diagonal, top, left})

	tr.region = region
	tr.ready = true
	tr.logger.Debug("region set up",
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Float64("size", size),
	)
	return nil
}

// Insert adds the point (x, y) and restores the Delaunay property around it.
// It returns the id of the new point. Validation errors are returned before
// anything is written, so the triangulation is left as it was. A
// TriangulationError means the mesh was found corrupt and should be cleared.
func (tr *Triangulation) Insert(x, y float64) (id PointID, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			id = 0
			err = recoveredErr
		}
	}()

	if !tr.ready {
		return 0, ErrNotSetUp
	}
	if !finite(x, y) {
		return 0, errors.Wrapf(ErrOutOfRegion, "(%g, %g)", x, y)
	}
	// Every insertion adds one point, three edges and a net two triangles
	if !tr.hasRoom(1, 3, 2) {
		return 0, errors.Wrapf(ErrCapacityExceeded, "inserting (%g, %g) with %d of %d points used", x, y, len(tr.points), tr.maxPoints)
	}

	t, ok := tr.FindTriangle(x, y)
	if !ok {
		tr.logger.Debug("point out of region", zap.Float64("x", x), zap.Float64("y", y))
		return 0, errors.Wrapf(ErrOutOfRegion, "(%g, %g)", x, y)
	}
	query := Point{X: x, Y: y}
	for _, v := range tr.triangles[t].V {
		if SamePoint(tr.points[v], query) {
			return 0, errors.Wrapf(ErrDuplicatePoint, "(%g, %g) is point %d", x, y, v)
		}
	}

	id = tr.addPoint(query)
	tr.divideTriangle(id, t)
	flips := tr.flipFlop(id)

	tr.logger.Debug("inserted point",
		zap.Int("point", int(id)),
		zap.Int("triangle", int(t)),
		zap.Int("flips", flips),
	)
	return id, nil
}

// InsertAll inserts points in order and stops at the first failure. The ids of
// the points inserted so far are returned either way.
func (tr *Triangulation) InsertAll(points ...Point) ([]PointID, error) {
	ids := make([]PointID, 0, len(points))
	for i, p := range points {
		id, err := tr.Insert(p.X, p.Y)
		if err != nil {
			return ids, errors.WithMessagef(err, "point %d", i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Clear drops every point, edge and triangle but keeps the allocated storage.
// Setup has to be called again before the next Insert.
func (tr *Triangulation) Clear() {
	tr.reset()
	tr.stack.Reset()
	tr.region = r2.EmptyRect()
	tr.ready = false
}

// Read views. The returned slices alias internal storage: they must not be
// modified, and they are only valid until the next Insert, Setup or Clear.

func (tr *Triangulation) Points() []Point {
	return tr.points
}

func (tr *Triangulation) Edges() []Edge {
	return tr.edges
}

func (tr *Triangulation) Triangles() []Triangle {
	return tr.triangles
}

func (tr *Triangulation) NumPoints() int {
	return len(tr.points)
}

func (tr *Triangulation) NumEdges() int {
	return len(tr.edges)
}

func (tr *Triangulation) NumTriangles() int {
	return len(tr.triangles)
}

func (tr *Triangulation) Point(id PointID) Point {
	return tr.points[id]
}

func (tr *Triangulation) Edge(id EdgeID) Edge {
	return tr.edges[id]
}

func (tr *Triangulation) Triangle(id TriangleID) Triangle {
	return tr.triangles[id]
}

// Capacity returns the maximum number of points, including the region corners.
func (tr *Triangulation) Capacity() int {
	return tr.maxPoints
}

// Region returns the enclosing square, or an empty rect before Setup.
func (tr *Triangulation) Region() r2.Rect {
	return tr.region
}

func (tr *Triangulation) IsSetUp() bool {
	return tr.ready
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
