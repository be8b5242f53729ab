// Package geometry is a small 2D kernel for points, implicit lines, segments,
// circles and simple polygons, with three transforms over them: half-plane
// cropping, reflection and circle inversion.
//
// Every value is immutable. Transforms return new values, and a transform that
// has no meaningful result (an empty crop, an inversion at the pole, a polygon
// too thin to keep) reports it with a false second return instead of an error.
package geometry

type Point struct {
	X float64
	Y float64
}

// A line in implicit form. A point p is on the line iff p·normal + offset == 0.
// The normal always has unit length, so Side gives a signed distance.
type Line struct {
	normal Point
	offset float64
}

type LineSegment struct {
	Start Point
	End   Point
}

type Circle struct {
	center Point
	radius float64
}

// Polygons keep a parallel ring of texture coordinates, so that cropping and
// inversion can carry the texture mapping onto new vertices. The vertex ring is
// always counterclockwise.
type Polygon struct {
	vertices      []Point
	textureCoords []Point
}

type PolygonList []Polygon
