package geometry

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Tolerance based equality, using the given epsilon.
func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// Shoelace formula. Positive for counterclockwise rings.
func SignedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		area += p.Cross(q)
	}
	return area / 2
}

func reversed(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}
