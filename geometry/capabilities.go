package geometry

// Reflectable values can be mirrored through a point or over a line, which
// always succeeds and gives a value of the same kind T, and inverted in a
// circle, which gives an I and may fail.
type Reflectable[T, I any] interface {
	ReflectOverPoint(origin Point) T
	ReflectOverLine(line Line) T
	InvertOverCircle(circle Circle) (I, bool)
}

// Croppable values can be cut down to the part on one side of a line. side
// picks the half-plane by the sign of Line.Side; points on the line are kept.
// Nothing is left when the value lies entirely on the other side.
type Croppable[T any] interface {
	CropToHalfPlane(line Line, side float64) (T, bool)
}

var (
	_ Reflectable[Point, Point]               = Point{}
	_ Reflectable[LineSegment, []LineSegment] = LineSegment{}
	_ Reflectable[Polygon, Polygon]           = Polygon{}

	_ Croppable[LineSegment] = LineSegment{}
	_ Croppable[Polygon]     = Polygon{}
)
