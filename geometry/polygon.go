package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Create a polygon from a ring of vertices and the matching ring of texture
// coordinates. A clockwise ring is reversed, along with its texture
// coordinates, so the result is always counterclockwise. The input slices are
// copied.
func NewPolygon(vertices, textureCoords []Point) Polygon {
	if len(vertices) < 3 {
		fatalf("cannot create polygon with %d vertices", len(vertices))
	}
	return newPolygon(append([]Point(nil), vertices...), append([]Point(nil), textureCoords...))
}

// Like NewPolygon, but takes ownership of the slices and accepts short rings.
// Transforms build their output with this and then sanitize it.
func newPolygon(vertices, textureCoords []Point) Polygon {
	if len(vertices) != len(textureCoords) {
		fatalf("polygon has %d vertices but %d texture coordinates", len(vertices), len(textureCoords))
	}
	if SignedArea(vertices) < 0 {
		vertices = reversed(vertices)
		textureCoords = reversed(textureCoords)
	}
	return Polygon{vertices, textureCoords}
}

func (poly Polygon) Vertices() []Point {
	return append([]Point(nil), poly.vertices...)
}

func (poly Polygon) TextureCoords() []Point {
	return append([]Point(nil), poly.textureCoords...)
}

func (poly Polygon) NumVertices() int {
	return len(poly.vertices)
}

func (poly Polygon) Vertex(i int) Point {
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

func (poly Polygon) TextureCoord(i int) Point {
	return poly.textureCoords[CircularIndex(i, len(poly.textureCoords))]
}

// Signed area. Never negative for a polygon built by this package.
func (poly Polygon) Area() float64 {
	return SignedArea(poly.vertices)
}

// The edges of the polygon in order, the last one closing the ring.
func (poly Polygon) Border() []LineSegment {
	n := len(poly.vertices)
	border := make([]LineSegment, n)
	for i := range border {
		border[i] = LineSegment{poly.vertices[i], poly.vertices[CircularIndex(i+1, n)]}
	}
	return border
}

// Reverse both rings. The result is clockwise, so this is only useful to
// callers that need the raw ring order, and for reflections, which restore the
// winding.
func (poly Polygon) Reverse() Polygon {
	return Polygon{reversed(poly.vertices), reversed(poly.textureCoords)}
}

// Area-weighted center. A polygon with no area falls back to the average of its
// vertices.
func (poly Polygon) Centroid() Point {
	area := poly.Area()
	if area == 0 {
		var sum Point
		for _, v := range poly.vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / float64(len(poly.vertices)))
	}
	var c Point
	for i, p := range poly.vertices {
		q := poly.Vertex(i + 1)
		c = c.Add(p.Add(q).Scale(p.Cross(q)))
	}
	return c.Scale(1 / (6 * area))
}

// Even-odd point-in-polygon test.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of edges crossed by a ray cast from p in the +X direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.vertices {
		nextVertex := poly.Vertex(i + 1)
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Merge consecutive vertices closer than minDist, including the last and first,
// then reject the polygon if fewer than three vertices remain or its area is
// not above minArea. This keeps slivers produced by cropping and inversion out
// of the caller's scene.
func (poly Polygon) Sanitize(minDist, minArea float64) (Polygon, bool) {
	if len(poly.vertices) < 3 {
		Logger().Debug("polygon rejected", "reason", "too few vertices", "vertices", len(poly.vertices))
		return Polygon{}, false
	}
	vertices := []Point{poly.vertices[0]}
	textureCoords := []Point{poly.textureCoords[0]}
	for i := 1; i < len(poly.vertices); i++ {
		vertex := poly.vertices[i]
		if vertex.DistanceTo(vertices[len(vertices)-1]) >= minDist {
			vertices = append(vertices, vertex)
			textureCoords = append(textureCoords, poly.textureCoords[i])
		}
	}
	if len(vertices) > 1 && vertices[len(vertices)-1].DistanceTo(vertices[0]) < minDist {
		vertices = vertices[:len(vertices)-1]
		textureCoords = textureCoords[:len(textureCoords)-1]
	}

	if len(vertices) < 3 {
		Logger().Debug("polygon rejected", "reason", "collapsed", "vertices", len(vertices))
		return Polygon{}, false
	}
	if area := math.Abs(SignedArea(vertices)); area <= minArea {
		Logger().Debug("polygon rejected", "reason", "sliver", "area", area)
		return Polygon{}, false
	}
	return newPolygon(vertices, textureCoords), true
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.vertices))
	for i, v := range poly.vertices {
		parts[i] = fmt.Sprintf("(%g, %g)", v.X, v.Y)
	}
	return "Polygon[" + strings.Join(parts, " ") + "]"
}

func (list PolygonList) Area() float64 {
	var area float64
	for _, poly := range list {
		area += poly.Area()
	}
	return area
}

// Even-odd rule over every polygon in the list.
func (list PolygonList) ContainsPointByEvenOdd(p Point) bool {
	count := 0
	for _, poly := range list {
		count += poly.CrossingCount(p)
	}
	return count%2 == 1
}
