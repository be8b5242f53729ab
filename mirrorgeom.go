// A 2D geometry kernel for a game built around mirrors.
//
// Polygons, line segments and points can be cropped to half-planes, reflected
// over points and lines, and inverted over circles. Polygons carry a texture
// coordinate per vertex, which follows the vertex through every transform.
//
// This package is a thin facade over the geometry package. Constructors here
// validate their input and return errors rather than panicking. See the
// geometry package for the full set of operations and tolerances.
package mirrorgeom

import "github.com/osuushi/mirrorgeom/geometry"

type Point = geometry.Point
type Line = geometry.Line
type LineSegment = geometry.LineSegment
type Circle = geometry.Circle
type Polygon = geometry.Polygon
type PolygonList = geometry.PolygonList
type Config = geometry.Config

func recoverInto(err *error) {
	if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

// Create a counterclockwise polygon. The rings must have the same length, and
// at least three vertices.
func NewPolygon(vertices, textureCoords []Point) (result Polygon, err error) {
	defer recoverInto(&err)
	return geometry.NewPolygon(vertices, textureCoords), nil
}

// Create a circle. The radius must not be negative.
func NewCircle(center Point, radius float64) (result Circle, err error) {
	defer recoverInto(&err)
	return geometry.NewCircle(center, radius), nil
}

// Create a line from a normal, which must not be zero, and an offset.
func NewLine(normal Point, offset float64) (result Line, err error) {
	defer recoverInto(&err)
	return geometry.NewLine(normal, offset), nil
}
