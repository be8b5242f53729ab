package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector arithmetic is done by gonum's r2 package. Point has the same layout as
// r2.Vec, so the conversions are free.

func (p Point) vec() r2.Vec {
	return r2.Vec(p)
}

func fromVec(v r2.Vec) Point {
	return Point(v)
}

// Unit vector at the given angle, measured counterclockwise from the X axis.
func FromAngle(angle float64) Point {
	return Point{math.Cos(angle), math.Sin(angle)}
}

func (p Point) Add(q Point) Point {
	return fromVec(r2.Add(p.vec(), q.vec()))
}

func (p Point) Sub(q Point) Point {
	return fromVec(r2.Sub(p.vec(), q.vec()))
}

func (p Point) Scale(f float64) Point {
	return fromVec(r2.Scale(f, p.vec()))
}

func (p Point) Dot(q Point) float64 {
	return r2.Dot(p.vec(), q.vec())
}

// The z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return r2.Cross(p.vec(), q.vec())
}

func (p Point) Length() float64 {
	return r2.Norm(p.vec())
}

func (p Point) LengthSquared() float64 {
	return r2.Norm2(p.vec())
}

func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Unit vector in the direction of p. The zero vector stays zero.
func (p Point) Normalize() Point {
	if p.LengthSquared() == 0 {
		return Point{}
	}
	return fromVec(r2.Unit(p.vec()))
}

// Rotate counterclockwise about the origin.
func (p Point) Rotate(angle float64) Point {
	return fromVec(r2.Rotate(p.vec(), angle, r2.Vec{}))
}

// Signed angle from p to q, in (-π, π].
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Approximate equality, component-wise.
func (p Point) EqualWithin(q Point, eps float64) bool {
	return EqualWithin(p.X, q.X, eps) && EqualWithin(p.Y, q.Y, eps)
}

func (p Point) ReflectOverPoint(origin Point) Point {
	return origin.Scale(2).Sub(p)
}

func (p Point) ReflectOverLine(line Line) Point {
	dist := line.Side(p)
	return p.Sub(line.normal.Scale(2 * dist))
}

// Inversion maps p to center + (p-center)·r²/|p-center|². The center itself has
// no finite image, so points within epsilon of it fail.
func (p Point) InvertOverCircle(circle Circle) (Point, bool) {
	return Defaults.InvertPoint(p, circle)
}

func (cfg Config) InvertPoint(p Point, circle Circle) (Point, bool) {
	displacement := p.Sub(circle.center)
	dist2 := displacement.LengthSquared()
	if math.Sqrt(dist2) < cfg.Epsilon {
		return Point{}, false
	}
	return circle.center.Add(displacement.Scale(circle.radius * circle.radius / dist2)), true
}
