package advanced

import (
	"embed"
	"log"
	"math/rand"

	"github.com/osuushi/delaunay/internal/pointfile"
)

// Point set fixtures, drawn as SVG circles so they can be eyeballed in a
// browser. All of them fit inside the square from (0, 0) to (100, 100).
//
//   - grid: a regular 9x9 grid. Every cell is cocircular, and half the points
//     lie on the diagonal of the initial region.
//   - circle: integer points on a circle of radius 25, plus its center.
//   - clusters: three gaussian clusters.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"grid", "circle", "clusters"}

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := pointfile.ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// Uniform random points strictly inside the square of the given size centered
// on the origin.
func RandomPoints(rng *rand.Rand, n int, size float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: (rng.Float64() - 0.5) * size * 0.98,
			Y: (rng.Float64() - 0.5) * size * 0.98,
		}
	}
	return points
}
