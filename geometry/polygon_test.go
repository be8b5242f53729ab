package geometry

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolygonWinding(t *testing.T) {
	t.Run("counterclockwise input is kept", func(t *testing.T) {
		vertices := []Point{{0, 0}, {2, 0}, {0, 2}}
		texture := []Point{{0, 0}, {1, 0}, {0, 1}}
		poly := NewPolygon(vertices, texture)
		assert.Equal(t, vertices, poly.Vertices())
		assert.Equal(t, texture, poly.TextureCoords())
		assert.InDelta(t, 2, poly.Area(), testEpsilon)
	})

	t.Run("clockwise input is reversed in lockstep", func(t *testing.T) {
		vertices := []Point{{0, 0}, {0, 2}, {2, 0}}
		texture := []Point{{0, 0}, {0, 1}, {1, 0}}
		poly := NewPolygon(vertices, texture)
		assert.Equal(t, []Point{{2, 0}, {0, 2}, {0, 0}}, poly.Vertices())
		assert.Equal(t, []Point{{1, 0}, {0, 1}, {0, 0}}, poly.TextureCoords())
		assert.InDelta(t, 2, poly.Area(), testEpsilon)
	})

	t.Run("area is never negative", func(t *testing.T) {
		random := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			n := 3 + random.Intn(10)
			vertices := make([]Point, n)
			for j := range vertices {
				vertices[j] = Point{random.Float64()*20 - 10, random.Float64()*20 - 10}
			}
			poly := NewPolygon(vertices, make([]Point, n))
			assert.GreaterOrEqual(t, poly.Area(), 0.0)
		}
	})

	t.Run("input is copied", func(t *testing.T) {
		vertices := []Point{{0, 0}, {2, 0}, {0, 2}}
		poly := NewPolygon(vertices, make([]Point, 3))
		vertices[0] = Point{100, 100}
		assert.Equal(t, Point{0, 0}, poly.Vertex(0))

		out := poly.Vertices()
		out[1] = Point{100, 100}
		assert.Equal(t, Point{2, 0}, poly.Vertex(1))
	})

	t.Run("invariant violations panic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPolygon([]Point{{0, 0}, {1, 0}, {0, 1}}, []Point{{0, 0}})
		})
		assert.Panics(t, func() {
			NewPolygon([]Point{{0, 0}, {1, 0}}, []Point{{0, 0}, {1, 0}})
		})
	})
}

func TestPolygonBorder(t *testing.T) {
	poly := square(1)
	border := poly.Border()
	require.Len(t, border, 4)
	for i, edge := range border {
		assert.Equal(t, poly.Vertex(i), edge.Start)
		assert.Equal(t, poly.Vertex(i+1), edge.End)
		assert.InDelta(t, 2, edge.Length(), testEpsilon)
	}
	assert.Equal(t, poly.Vertex(0), border[3].End)
}

func TestPolygonQueries(t *testing.T) {
	poly := square(1)
	assert.Equal(t, 4, poly.NumVertices())
	assert.Equal(t, poly.Vertex(0), poly.Vertex(4))
	assert.Equal(t, poly.TextureCoord(-1), poly.TextureCoord(3))
	assertPointInDelta(t, Point{0, 0}, poly.Centroid(), testEpsilon)

	shifted := NewPolygon([]Point{{1, 1}, {3, 1}, {3, 2}, {1, 2}}, make([]Point, 4))
	assertPointInDelta(t, Point{2, 1.5}, shifted.Centroid(), testEpsilon)

	assert.True(t, poly.ContainsPointByEvenOdd(Point{0, 0}))
	assert.True(t, poly.ContainsPointByEvenOdd(Point{0.9, -0.9}))
	assert.False(t, poly.ContainsPointByEvenOdd(Point{1.5, 0}))
	assert.False(t, poly.ContainsPointByEvenOdd(Point{0, -3}))

	reversedPoly := poly.Reverse()
	assert.InDelta(t, -poly.Area(), reversedPoly.Area(), testEpsilon)
	assert.Equal(t, poly.Vertex(0), reversedPoly.Vertex(3))

	assert.Contains(t, poly.String(), "(-1, -1)")
}

func TestPolygonList(t *testing.T) {
	outer := square(2)
	inner := square(1)
	list := PolygonList{outer, inner}
	assert.InDelta(t, 20, list.Area(), testEpsilon)

	// Even-odd treats the inner square as a hole
	assert.False(t, list.ContainsPointByEvenOdd(Point{0, 0}))
	assert.True(t, list.ContainsPointByEvenOdd(Point{1.5, 1.5}))
	assert.False(t, list.ContainsPointByEvenOdd(Point{3, 0}))
}

func TestSanitize(t *testing.T) {
	t.Run("clean polygon is unchanged", func(t *testing.T) {
		poly := square(1)
		result, ok := poly.Sanitize(0.01, 0.01)
		require.True(t, ok)
		assert.Equal(t, poly.Vertices(), result.Vertices())
		assert.Equal(t, poly.TextureCoords(), result.TextureCoords())
	})

	t.Run("close consecutive vertices merge", func(t *testing.T) {
		vertices := []Point{{0, 0}, {1, 0}, {1.001, 0.0005}, {1, 1}, {0, 1}}
		poly := NewPolygon(vertices, boxTexture(vertices))
		result, ok := poly.Sanitize(0.01, 0.01)
		require.True(t, ok)
		assert.Equal(t, 4, result.NumVertices())
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, result.Vertices())
	})

	t.Run("wrap around vertices merge", func(t *testing.T) {
		vertices := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0.001}}
		poly := NewPolygon(vertices, boxTexture(vertices))
		result, ok := poly.Sanitize(0.01, 0.01)
		require.True(t, ok)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, result.Vertices())
	})

	t.Run("collapsed polygon is rejected", func(t *testing.T) {
		vertices := []Point{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.0015}}
		poly := NewPolygon(vertices, boxTexture(vertices))
		_, ok := poly.Sanitize(0.01, 0)
		assert.False(t, ok)
	})

	t.Run("triangle collapsing to two vertices is rejected", func(t *testing.T) {
		vertices := []Point{{0, 0}, {5, 0}, {5, 0.001}}
		poly := NewPolygon(vertices, boxTexture(vertices))
		_, ok := poly.Sanitize(0.01, 0)
		assert.False(t, ok)
	})

	t.Run("sliver is rejected", func(t *testing.T) {
		vertices := []Point{{0, 0}, {10, 0}, {10, 0.0005}, {0, 0.0005}}
		poly := NewPolygon(vertices, make([]Point, 4))
		_, ok := poly.Sanitize(1e-6, 0.01)
		assert.False(t, ok)
		_, ok = poly.Sanitize(1e-6, 0.001)
		assert.True(t, ok)
	})
}
