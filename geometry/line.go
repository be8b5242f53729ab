package geometry

import "math"

// Create a line from a normal vector and offset. Both are divided by the
// normal's length, so the normal need not be unit length, but it must not be
// zero.
func NewLine(normal Point, offset float64) Line {
	norm := normal.Length()
	if norm == 0 {
		fatalf("cannot create line with zero normal (offset %v)", offset)
	}
	return Line{normal.Scale(1 / norm), offset / norm}
}

// The line through a and b.
func NewLineThrough(a, b Point) Line {
	return LineSegment{a, b}.Line()
}

// Lines derived from segments may be degenerate, in which case the zero normal
// is kept. Such a line intersects nothing.
func normalizedLine(normal Point, offset float64) Line {
	norm := normal.Length()
	if norm == 0 {
		return Line{}
	}
	return Line{normal.Scale(1 / norm), offset / norm}
}

func (l Line) Normal() Point {
	return l.normal
}

func (l Line) Offset() float64 {
	return l.offset
}

// Unit tangent of the line.
func (l Line) Direction() Point {
	return Point{l.normal.Y, -l.normal.X}
}

// The point of the line closest to the origin.
func (l Line) PointOnLine() Point {
	return l.normal.Scale(-l.offset)
}

// The parallel line through the origin. Reflecting a direction vector over a
// line is the same as reflecting it over the line's centered version.
func (l Line) Centered() Line {
	return Line{l.normal, 0}
}

// Signed distance from the line. Which side is positive depends on how the line
// was built, but is consistent for a given Line value.
func (l Line) Side(p Point) float64 {
	return p.Dot(l.normal) + l.offset
}

func (l Line) Distance(p Point) float64 {
	return math.Abs(l.Side(p))
}

func (l Line) ClosestPoint(p Point) Point {
	direction := l.Direction()
	return l.PointOnLine().Add(direction.Scale(direction.Dot(p)))
}

// The line through p perpendicular to this one.
func (l Line) PerpendicularThrough(p Point) Line {
	return NewLineThrough(p, p.Add(l.normal))
}

func (l Line) Intersect(other Line) (Point, bool) {
	return Defaults.Intersect(l, other)
}

func (l Line) Relation(other Line) LineRelation {
	return Defaults.Relation(l, other)
}

func (l Line) Contains(p Point) bool {
	return Defaults.OnLine(l, p)
}

// Whether p is on the line, or strictly on the side whose sign matches side.
func (l Line) IsOnSide(p Point, side float64) bool {
	return Defaults.IsOnSide(l, p, side)
}

// The unique intersection of two lines. Parallel lines, including identical
// ones, have none; use Relation to tell those apart.
func (cfg Config) Intersect(a, b Line) (Point, bool) {
	det := a.normal.Cross(b.normal)
	if math.Abs(det) < cfg.Epsilon {
		return Point{}, false
	}
	return Point{
		-b.normal.Y*a.offset + a.normal.Y*b.offset,
		b.normal.X*a.offset - a.normal.X*b.offset,
	}.Scale(1 / det), true
}

type LineRelation int

const (
	Intersecting LineRelation = iota
	Parallel
	Coincident
)

func (r LineRelation) String() string {
	switch r {
	case Intersecting:
		return "intersecting"
	case Parallel:
		return "parallel"
	case Coincident:
		return "coincident"
	}
	return "unknown"
}

// A degenerate line, with a zero normal, is parallel to every line, itself
// included, since it intersects nothing.
func (cfg Config) Relation(a, b Line) LineRelation {
	if a.normal.Length() < cfg.Epsilon || b.normal.Length() < cfg.Epsilon {
		return Parallel
	}
	if math.Abs(a.normal.Cross(b.normal)) >= cfg.Epsilon {
		return Intersecting
	}
	// Normals may point opposite ways, in which case the offsets do too.
	if EqualWithin(a.offset, b.offset*a.normal.Dot(b.normal), cfg.Epsilon) {
		return Coincident
	}
	return Parallel
}

func (cfg Config) OnLine(l Line, p Point) bool {
	return l.Distance(p) < cfg.Epsilon
}

func (cfg Config) IsOnSide(l Line, p Point, side float64) bool {
	s := l.Side(p)
	return math.Abs(s) < cfg.Epsilon || s*side > 0
}
