// Package pointfile reads point sets for triangulation. Two formats are
// understood: SVG, where every <circle> element contributes its center, and
// plain text, with one "x y" pair per line. Blank lines and lines starting
// with # are ignored in text files.
package pointfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Read loads a point file, choosing the format from the extension.
func Read(path string) ([]r2.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening point file")
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return ParseSVG(f)
	}
	return ParseText(f)
}

// ParseSVG returns the centers of every circle in the document, in document
// order. This is not a full SVG parser: transforms are ignored.
func ParseSVG(r io.Reader) ([]r2.Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := rootEl.FindAll("circle")
	points := make([]r2.Point, 0, len(circles))
	for _, circle := range circles {
		x, err := parseFloat(circle.Attributes["cx"], "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(circle.Attributes["cy"], "cy")
		if err != nil {
			return nil, err
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	return points, nil
}

// ParseText reads newline separated points in the form "x y".
func ParseText(r io.Reader) ([]r2.Point, error) {
	var points []r2.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: want \"x y\", got %q", lineNumber, line)
		}
		x, err := parseFloat(parts[0], "x")
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNumber)
		}
		y, err := parseFloat(parts[1], "y")
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNumber)
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Bounds returns the smallest rect containing every point, or an empty rect
// when there are none.
func Bounds(points []r2.Point) r2.Rect {
	if len(points) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(points...)
}

func parseFloat(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s value %q", name, s)
	}
	return v, nil
}
