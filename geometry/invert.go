package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Inversion is conformal but not affine: a straight edge maps to a circular
// arc, bending hardest near the center. Polygons and segments are therefore
// resampled before inverting, with samples spread so that each carries the same
// share of a weight that grows toward the center.

// Sampling weight of p for inversion about center. It is 1/d at distance d up
// to the falloff distance D and decays as exp(-(d-D)/D)/D beyond it, so far
// away edges do not eat the vertex budget. Distances are clamped below at
// epsilon, since the weight has a pole at the center.
func (cfg Config) inversionWeight(center Point) func(Point) float64 {
	falloff := cfg.WeightFalloffDistance
	return func(p Point) float64 {
		d := math.Max(p.DistanceTo(center), cfg.Epsilon)
		if d <= falloff {
			return 1 / d
		}
		return math.Exp(-(d-falloff)/falloff) / falloff
	}
}

func (s LineSegment) InvertOverCircle(circle Circle) ([]LineSegment, bool) {
	return Defaults.InvertSegment(s, circle)
}

func (poly Polygon) InvertOverCircle(circle Circle) (Polygon, bool) {
	return Defaults.InvertPolygon(poly, circle)
}

// The image of a segment is an arc (or a line, if the segment's line passes
// through the center). It is approximated by a polyline through the images of
// SegmentResolution weighted samples. Samples at the center are skipped, which
// breaks the polyline there.
func (cfg Config) InvertSegment(s LineSegment, circle Circle) ([]LineSegment, bool) {
	samples := cfg.WeightedSplit(s, cfg.inversionWeight(circle.center), cfg.SegmentResolution)
	var result []LineSegment
	var last Point
	haveLast := false
	for _, sample := range samples {
		image, ok := cfg.InvertPoint(sample, circle)
		if !ok {
			haveLast = false
			continue
		}
		if haveLast {
			result = append(result, LineSegment{last, image})
		}
		last = image
		haveLast = true
	}
	return result, len(result) > 0
}

// Invert every edge of the polygon, after splitting each into pieces of equal
// weight. The PolygonResolution budget is shared among the edges in proportion
// to their total weight.
//
// A polygon that contains the center has an unbounded image. Samples that land
// on the center are dropped and those near it map far away, so the result can
// be garbled or rejected.
func (cfg Config) InvertPolygon(poly Polygon, circle Circle) (Polygon, bool) {
	weight := cfg.inversionWeight(circle.center)
	border := poly.Border()

	masses := make([]float64, len(border))
	for i, edge := range border {
		n := cfg.integrationSteps(edge.Length(), cfg.MaxMassSamples)
		masses[i] = integrateAlong(edge, n, weight)[n]
	}
	total := floats.Sum(masses)
	if !(total > 0) {
		Logger().Debug("polygon inversion has no weight", "vertices", len(poly.vertices))
		return Polygon{}, false
	}

	var vertices, textureCoords []Point
	dropped := 0
	for i, edge := range border {
		splits := int(math.Ceil(masses[i] * float64(cfg.PolygonResolution) / total))
		lastTexture := poly.textureCoords[i]
		nextTexture := poly.TextureCoord(i + 1)

		for _, sample := range cfg.WeightedSplit(edge, weight, splits) {
			image, ok := cfg.InvertPoint(sample, circle)
			if !ok {
				dropped++
				continue
			}
			vertices = append(vertices, image)
			textureCoords = append(textureCoords, interpolateTextureCoords(edge.Start, lastTexture, edge.End, nextTexture, sample))
		}
	}
	if dropped > 0 {
		Logger().Debug("inversion dropped samples at the center", "dropped", dropped)
	}

	return newPolygon(vertices, textureCoords).Sanitize(cfg.InversionMinDistance, cfg.InversionMinArea)
}
