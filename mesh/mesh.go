// Package mesh turns a triangulation into a renderable height mesh: one vertex
// per point, lifted by a height function, and a flat index buffer with three
// indices per triangle.
package mesh

import (
	"github.com/golang/geo/r3"
	"github.com/osuushi/delaunay/advanced"
)

// The first four points of every triangulation are the corners of the
// enclosing square.
const regionCorners = 4

type HeightFunc func(x, y float64) float64

// Flat is the zero height function.
func Flat(x, y float64) float64 {
	return 0
}

type Mesh struct {
	Vertices []r3.Vector
	// Per vertex normals, averaged from the faces that use the vertex. Vertices
	// used by no face get a zero normal.
	Normals []r3.Vector
	// Three vertex indices per triangle, counterclockwise seen from +Z
	Indices []int
}

func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

type options struct {
	skipCorners    bool
	skipDegenerate bool
}

type BuildOption func(*options)

// SkipCorners drops every triangle that uses one of the region corners, leaving
// only the triangulation of the inserted points.
func SkipCorners() BuildOption {
	return func(o *options) {
		o.skipCorners = true
	}
}

// KeepDegenerate keeps zero area triangles, which are dropped by default.
func KeepDegenerate() BuildOption {
	return func(o *options) {
		o.skipDegenerate = false
	}
}

// Build reads the triangulation's views and produces a mesh. Vertex i of the
// mesh is point i of the triangulation.
func Build(tr *advanced.Triangulation, height HeightFunc, opts ...BuildOption) *Mesh {
	o := options{skipDegenerate: true}
	for _, opt := range opts {
		opt(&o)
	}
	if height == nil {
		height = Flat
	}

	points := tr.Points()
	m := &Mesh{
		Vertices: make([]r3.Vector, len(points)),
		Normals:  make([]r3.Vector, len(points)),
		Indices:  make([]int, 0, 3*tr.NumTriangles()),
	}
	for i, p := range points {
		m.Vertices[i] = r3.Vector{X: p.X, Y: p.Y, Z: height(p.X, p.Y)}
	}

	for _, tri := range tr.Triangles() {
		if o.skipCorners && usesCorner(tri) {
			continue
		}
		a, b, c := points[tri.V[0]], points[tri.V[1]], points[tri.V[2]]
		if o.skipDegenerate && advanced.Orientation(a, b, c) == 0 {
			continue
		}
		i, j, k := int(tri.V[0]), int(tri.V[1]), int(tri.V[2])
		m.Indices = append(m.Indices, i, j, k)

		// Area weighted: the cross product's length is twice the face area
		face := m.Vertices[j].Sub(m.Vertices[i]).Cross(m.Vertices[k].Sub(m.Vertices[i]))
		m.Normals[i] = m.Normals[i].Add(face)
		m.Normals[j] = m.Normals[j].Add(face)
		m.Normals[k] = m.Normals[k].Add(face)
	}

	for i, n := range m.Normals {
		if n.Norm() > 0 {
			m.Normals[i] = n.Normalize()
		}
	}
	return m
}

func usesCorner(tri advanced.Triangle) bool {
	for _, v := range tri.V {
		if v < regionCorners {
			return true
		}
	}
	return false
}
