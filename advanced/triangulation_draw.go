package advanced

import (
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/dbg"
)

// Padding around the region so the boundary edges are visible
const dbgDrawPadding = 20

// Draw renders the triangulation at the given scale (pixels per unit), with
// the origin at the bottom left. Degenerate triangles are filled red.
func (tr *Triangulation) Draw(scale float64) *gg.Context {
	region := tr.region
	if region.IsEmpty() {
		return gg.NewContext(2*dbgDrawPadding, 2*dbgDrawPadding)
	}

	width := int(scale*region.X.Length()) + dbgDrawPadding*2
	height := int(scale*region.Y.Length()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-region.X.Lo, -region.Y.Lo)

	for _, tri := range tr.triangles {
		a, b, p := tr.points[tri.V[0]], tr.points[tri.V[1]], tr.points[tri.V[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(p.X, p.Y)
		c.ClosePath()
		if tr.isDegenerate(tri) {
			c.SetRGB(0.8, 0, 0)
		} else {
			c.SetRGB(0, 0.3, 0)
		}
		c.Fill()
	}

	// Line widths are in user space after scaling, so undo the scale
	c.SetLineWidth(1 / scale)
	c.SetRGB(0, 1, 1)
	for _, edge := range tr.edges {
		a, b := tr.points[edge.P0], tr.points[edge.P1]
		c.DrawLine(a.X, a.Y, b.X, b.Y)
	}
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, p := range tr.points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.Fill()
	return c
}

// This is for debugging purposes only: draw to a temp file and print it in the
// terminal (iTerm only).
func (tr *Triangulation) dbgDraw(scale float64) {
	c := tr.Draw(scale)
	path := os.TempDir() + "/triangulation.png"
	if err := c.SavePNG(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

// DbgName returns a readable name for triangle t, colored by its shape:
// green for proper triangles, red for zero area ones.
func (tr *Triangulation) DbgName(t TriangleID) string {
	name := dbg.Name(t)
	if tr.isDegenerate(tr.triangles[t]) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (tr *Triangulation) dbgNeighborName(n Neighbor) string {
	t, ok := n.Get()
	if !ok {
		return aurora.Cyan("outside").String()
	}
	return tr.DbgName(t)
}

// String dumps every triangle with its neighbors, for debugging.
func (tr *Triangulation) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Triangulation <%d points, %d edges, %d triangles>", len(tr.points), len(tr.edges), len(tr.triangles)))
	for id, tri := range tr.triangles {
		var neighbors []string
		for _, e := range tri.E {
			neighbors = append(neighbors, tr.dbgNeighborName(tr.edges[e].Other(TriangleID(id))))
		}
		lines = append(lines, fmt.Sprintf("  %s %s { %s }", tr.DbgName(TriangleID(id)), tri, strings.Join(neighbors, ", ")))
	}
	return strings.Join(lines, "\n")
}
