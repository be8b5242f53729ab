package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	q := Point{1, -2}

	assert.Equal(t, Point{4, 2}, p.Add(q))
	assert.Equal(t, Point{2, 6}, p.Sub(q))
	assert.Equal(t, Point{6, 8}, p.Scale(2))
	assert.Equal(t, -5.0, p.Dot(q))
	assert.Equal(t, -10.0, p.Cross(q))
	assert.InDelta(t, 5, p.Length(), testEpsilon)
	assert.InDelta(t, 25, p.LengthSquared(), testEpsilon)
	assert.InDelta(t, math.Sqrt(40), p.DistanceTo(q), testEpsilon)
	assertPointInDelta(t, Point{0.6, 0.8}, p.Normalize(), testEpsilon)
	assert.Equal(t, Point{}, Point{}.Normalize())
}

func TestPointRotation(t *testing.T) {
	assertPointInDelta(t, Point{0, 1}, Point{1, 0}.Rotate(math.Pi/2), testEpsilon)
	assertPointInDelta(t, Point{-1, 0}, Point{1, 0}.Rotate(math.Pi), testEpsilon)
	assertPointInDelta(t, FromAngle(math.Pi/3), Point{1, 0}.Rotate(math.Pi/3), testEpsilon)

	assert.InDelta(t, math.Pi/2, Point{1, 0}.AngleTo(Point{0, 3}), testEpsilon)
	assert.InDelta(t, -math.Pi/2, Point{1, 0}.AngleTo(Point{0, -3}), testEpsilon)
	assert.InDelta(t, math.Pi/4, Point{2, 0}.AngleTo(Point{1, 1}), testEpsilon)
}

func TestPointReflection(t *testing.T) {
	t.Run("over point", func(t *testing.T) {
		assert.Equal(t, Point{1, 2}, Point{3, 4}.ReflectOverPoint(Point{2, 3}))
		p := Point{-1.5, 7.25}
		origin := Point{0.3, -2}
		assertPointInDelta(t, p, p.ReflectOverPoint(origin).ReflectOverPoint(origin), testEpsilon)
	})

	t.Run("over line", func(t *testing.T) {
		diagonal := NewLineThrough(Point{0, 0}, Point{1, 1})
		assertPointInDelta(t, Point{0, 2}, Point{2, 0}.ReflectOverLine(diagonal), testEpsilon)

		// Points on the line stay put
		assertPointInDelta(t, Point{3, 3}, Point{3, 3}.ReflectOverLine(diagonal), testEpsilon)

		line := NewLine(Point{3, -1}, 2.5)
		for _, p := range []Point{{0, 0}, {4, -3}, {-10, 20}, {0.5, 0.5}} {
			assertPointInDelta(t, p, p.ReflectOverLine(line).ReflectOverLine(line), 1e-9)
			// The midpoint of a point and its reflection is on the line
			mid := p.Add(p.ReflectOverLine(line)).Scale(0.5)
			assert.True(t, line.Contains(mid), "midpoint %v should be on the line", mid)
		}
	})
}

func TestPointInversion(t *testing.T) {
	unit := NewCircle(Point{0, 0}, 1)

	image, ok := Point{2, 0}.InvertOverCircle(unit)
	assert.True(t, ok)
	assertPointInDelta(t, Point{0.5, 0}, image, testEpsilon)
	back, ok := image.InvertOverCircle(unit)
	assert.True(t, ok)
	assertPointInDelta(t, Point{2, 0}, back, testEpsilon)

	t.Run("points on the circle are fixed", func(t *testing.T) {
		for _, angle := range []float64{0, 1, 2.5, 4} {
			p := unit.AnglePosition(angle)
			image, ok := p.InvertOverCircle(unit)
			assert.True(t, ok)
			assertPointInDelta(t, p, image, testEpsilon)
		}
	})

	t.Run("involution", func(t *testing.T) {
		circle := NewCircle(Point{1, -2}, 3)
		for _, p := range []Point{{0, 0}, {5, 5}, {1.1, -2}, {-20, 3}} {
			image, ok := p.InvertOverCircle(circle)
			assert.True(t, ok)
			back, ok := image.InvertOverCircle(circle)
			assert.True(t, ok)
			assertPointInDelta(t, p, back, 1e-9)
		}
	})

	t.Run("center has no image", func(t *testing.T) {
		_, ok := Point{0, 0}.InvertOverCircle(unit)
		assert.False(t, ok)
		_, ok = Point{1e-7, 0}.InvertOverCircle(unit)
		assert.False(t, ok)

		// A tighter tolerance accepts it
		cfg := DefaultConfig()
		cfg.Epsilon = 1e-9
		image, ok := cfg.InvertPoint(Point{1e-7, 0}, unit)
		assert.True(t, ok)
		assert.InDelta(t, 1e7, image.X, 1)
	})
}
