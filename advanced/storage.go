package advanced

// Mesh storage. Points, edges and triangles live in slices whose capacity is
// fixed when the triangulation is created; the slice length is the live count.
// Nothing is ever removed. Triangle slots are overwritten in place by splits and
// flips, and setTriangle is the only way a triangle is written so that the
// edges' back references can never drift from the triangle records.

type storage struct {
	points    []Point
	edges     []Edge
	triangles []Triangle
}

func newStorage(maxPoints int) storage {
	return storage{
		points:    make([]Point, 0, maxPoints),
		edges:     make([]Edge, 0, 3*maxPoints),
		triangles: make([]Triangle, 0, 2*maxPoints),
	}
}

func (s *storage) reset() {
	s.points = s.points[:0]
	s.edges = s.edges[:0]
	s.triangles = s.triangles[:0]
}

// Whether the arenas can take the given number of additional records.
func (s *storage) hasRoom(points, edges, triangles int) bool {
	return len(s.points)+points <= cap(s.points) &&
		len(s.edges)+edges <= cap(s.edges) &&
		len(s.triangles)+triangles <= cap(s.triangles)
}

func (s *storage) addPoint(p Point) PointID {
	if len(s.points) == cap(s.points) {
		fatalf("point storage is full (%d)", cap(s.points))
	}
	s.points = append(s.points, p)
	return PointID(len(s.points) - 1)
}

func (s *storage) addEdge(p0, p1 PointID) EdgeID {
	if len(s.edges) == cap(s.edges) {
		fatalf("edge storage is full (%d)", cap(s.edges))
	}
	s.edges = append(s.edges, Edge{P0: p0, P1: p1})
	return EdgeID(len(s.edges) - 1)
}

// The id the next appended triangle will get
func (s *storage) nextTriangleID() TriangleID {
	return TriangleID(len(s.triangles))
}

// Write triangle slot id, appending when id is the next free slot, and point
// each of its edges back at it. The vertices must be counterclockwise and e[i]
// must join v[i] and v[i+1].
func (s *storage) setTriangle(id TriangleID, v [3]PointID, e [3]EdgeID) {
	switch {
	case int(id) < len(s.triangles):
		s.triangles[id] = Triangle{V: v, E: e}
	case int(id) == len(s.triangles):
		if len(s.triangles) == cap(s.triangles) {
			fatalf("triangle storage is full (%d)", cap(s.triangles))
		}
		s.triangles = append(s.triangles, Triangle{V: v, E: e})
	default:
		fatalf("triangle slot %d is past the end of storage (%d)", id, len(s.triangles))
	}

	for i := range e {
		s.attach(e[i], id, v[i], v[CircularIndex(i+1, 3)])
	}
}

// Record that triangle t lies on the left of from->to, which must be edge e in
// one direction or the other.
func (s *storage) attach(e EdgeID, t TriangleID, from, to PointID) {
	edge := &s.edges[e]
	switch {
	case edge.P0 == from && edge.P1 == to:
		edge.T0 = Adjacent(t)
	case edge.P0 == to && edge.P1 == from:
		edge.T1 = Adjacent(t)
	default:
		fatalf("edge %d (%s) does not join p%d and p%d of triangle %d", e, *edge, from, to, t)
	}
}
