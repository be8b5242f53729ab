package polyio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/mirrorgeom/geometry"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y", with each polygon separated
// by an extra newline.
func ReadText(r io.Reader) ([][]geometry.Point, error) {
	var rings [][]geometry.Point
	var points []geometry.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings, nil
}

// Write rings in the format read by ReadText.
func WriteText(w io.Writer, rings [][]geometry.Point) error {
	for i, ring := range rings {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "writing points")
			}
		}
		for _, p := range ring {
			if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
				return errors.Wrap(err, "writing points")
			}
		}
	}
	return nil
}

// Texture coordinates that map the ring's bounding box onto the unit square. A
// box with no width or height maps that axis to zero.
func BoxTexture(ring []geometry.Point) []geometry.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range ring {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	scale := func(v, min, max float64) float64 {
		if max == min {
			return 0
		}
		return (v - min) / (max - min)
	}
	texture := make([]geometry.Point, len(ring))
	for i, p := range ring {
		texture[i] = geometry.Point{X: scale(p.X, minX, maxX), Y: scale(p.Y, minY, maxY)}
	}
	return texture
}

// Build polygons from rings, with box textures. Rings with fewer than three
// points are skipped.
func Polygons(rings [][]geometry.Point) geometry.PolygonList {
	var list geometry.PolygonList
	for _, ring := range rings {
		if len(ring) < 3 {
			continue
		}
		list = append(list, geometry.NewPolygon(ring, BoxTexture(ring)))
	}
	return list
}
