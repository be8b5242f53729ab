package geometry_test

import (
	"embed"
	"log"
	"testing"

	. "github.com/osuushi/mirrorgeom/geometry"
	"github.com/osuushi/mirrorgeom/polyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures are SVG files in the fixtures/ directory, loaded by name sans
// extension. Each holds a single polygon.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rings, err := polyio.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(rings) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(rings))
	}
	return NewPolygon(rings[0], polyio.BoxTexture(rings[0]))
}

var fixtureNames = []string{"star", "comb", "hexagon_cw"}

func TestFixturesAreCounterclockwise(t *testing.T) {
	for _, name := range fixtureNames {
		assert.Greater(t, LoadFixture(name).Area(), 0.0, name)
	}
	assert.InDelta(t, 24, LoadFixture("comb").Area(), 1e-9)
}

func TestFixtureCropPartition(t *testing.T) {
	lines := []Line{
		NewLine(Point{X: 1, Y: 0}, -0.3),
		NewLine(Point{X: 0, Y: 1}, -2.1),
		NewLineThrough(Point{X: -3, Y: -2.5}, Point{X: 4, Y: 3.3}),
	}
	for _, name := range fixtureNames {
		poly := LoadFixture(name)
		for _, line := range lines {
			var total float64
			for _, side := range []float64{1, -1} {
				piece, ok := poly.CropToHalfPlane(line, side)
				if !ok {
					continue
				}
				total += piece.Area()
				for _, v := range piece.Vertices() {
					assert.True(t, line.IsOnSide(v, side), "%s: vertex %v on wrong side", name, v)
				}
			}
			assert.InDelta(t, poly.Area(), total, 1e-6, name)
		}
	}
}

func TestCombCropKeepsTeeth(t *testing.T) {
	comb := LoadFixture("comb")
	// Above y = 2 only the five teeth remain, joined along the cut
	top, ok := comb.CropToHalfPlane(NewLine(Point{X: 0, Y: 1}, -2), 1)
	require.True(t, ok)
	assert.InDelta(t, 10, top.Area(), 1e-9)
	for _, p := range []Point{{X: 0.5, Y: 3}, {X: 4.5, Y: 3}, {X: 8.5, Y: 3}} {
		assert.True(t, top.ContainsPointByEvenOdd(p), "%v should be in a tooth", p)
	}
	assert.False(t, top.ContainsPointByEvenOdd(Point{X: 1.5, Y: 3}))
}

func TestFixtureReflectionInvolution(t *testing.T) {
	line := NewLineThrough(Point{X: 1, Y: 7}, Point{X: -2, Y: -4})
	for _, name := range fixtureNames {
		poly := LoadFixture(name)
		twice := poly.ReflectOverLine(line).ReflectOverLine(line)
		for i, v := range poly.Vertices() {
			assert.True(t, v.EqualWithin(twice.Vertex(i), 1e-9), name)
		}
		assert.InDelta(t, poly.Area(), poly.ReflectOverLine(line).Area(), 1e-9, name)
	}
}

func TestFixtureInversion(t *testing.T) {
	circle := NewCircle(Point{X: 20, Y: 0}, 6)
	for _, name := range fixtureNames {
		poly := LoadFixture(name)
		image, ok := poly.InvertOverCircle(circle)
		require.True(t, ok, name)
		assert.Greater(t, image.Area(), 0.0, name)
		for _, v := range image.Vertices() {
			// Everything is outside the circle, so the image is inside
			assert.True(t, circle.Contains(v), "%s: %v should be inside the circle", name, v)
		}
	}
}

func TestFixtureMirrorSplit(t *testing.T) {
	comb := LoadFixture("comb")
	split, ok := SplitByMirror(comb, LineSegment{Start: Point{X: 2.5, Y: 6}, End: Point{X: 6.5, Y: 6}})
	require.True(t, ok)
	assert.Len(t, split.Outside, 2)
	assert.InDelta(t, comb.Area(), split.Pieces().Area(), 1e-9)
	for _, v := range split.Reflected.Vertices() {
		assert.GreaterOrEqual(t, v.Y, 8.0-1e-9)
	}
}
