package geometry

import "math"

func NewCircle(center Point, radius float64) Circle {
	if !(radius >= 0) {
		fatalf("circle radius must not be negative, got %v", radius)
	}
	return Circle{center, radius}
}

func (c Circle) Center() Point {
	return c.center
}

func (c Circle) Radius() float64 {
	return c.radius
}

// The point of the circle at the given angle from the positive X axis.
func (c Circle) AnglePosition(angle float64) Point {
	return c.center.Add(FromAngle(angle).Scale(c.radius))
}

func (c Circle) Contains(p Point) bool {
	return p.Sub(c.center).LengthSquared() <= c.radius*c.radius
}

// n points evenly spaced around the circle, counterclockwise from angle zero.
func (c Circle) Sample(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = c.AnglePosition(2 * math.Pi * float64(i) / float64(n))
	}
	return points
}

// A regular n-gon inscribed in the circle. The texture maps the circle's
// bounding square onto the unit square.
func (c Circle) Polygon(n int) Polygon {
	if n < 3 {
		n = 3
	}
	vertices := c.Sample(n)
	textureCoords := make([]Point, n)
	for i := range textureCoords {
		direction := FromAngle(2 * math.Pi * float64(i) / float64(n))
		textureCoords[i] = Point{(direction.X + 1) / 2, (direction.Y + 1) / 2}
	}
	return NewPolygon(vertices, textureCoords)
}
