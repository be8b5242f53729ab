package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func (s LineSegment) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

func (s LineSegment) MidPoint() Point {
	return s.Start.Add(s.End).Scale(0.5)
}

func (s LineSegment) Endpoints() (start, end Point) {
	return s.Start, s.End
}

// The infinite line through the segment. This is computed on every call. A
// segment whose endpoints coincide gives a degenerate line.
func (s LineSegment) Line() Line {
	normal := Point{s.Start.Y - s.End.Y, s.End.X - s.Start.X}
	return normalizedLine(normal, -normal.Dot(s.Start))
}

// The weighted point (w2·start + w1·end) / (w1 + w2). With w1 = 0 this is the
// start, and with w2 = 0 the end.
func (s LineSegment) InterpolatePosition(w1, w2 float64) Point {
	return s.Start.Scale(w2).Add(s.End.Scale(w1)).Scale(1 / (w1 + w2))
}

// The perpendiculars to the segment's line through the start and end. The
// region between them is the segment's strip.
func (s LineSegment) StripBoundaries() (atStart, atEnd Line) {
	line := s.Line()
	return line.PerpendicularThrough(s.Start), line.PerpendicularThrough(s.End)
}

// Whether p projects onto the segment, i.e. lies between the strip boundaries.
// Mirrors use this to decide whether something is in front of their finite
// extent rather than merely on one side of their line.
func (s LineSegment) OnStrip(p Point) bool {
	return Defaults.OnStrip(s, p)
}

func (s LineSegment) Contains(p Point) bool {
	return Defaults.SegmentContains(s, p)
}

// Cut the segment where it crosses line. If it doesn't cross, the result is the
// segment alone.
func (s LineSegment) Split(line Line) []LineSegment {
	return Defaults.Split(s, line)
}

func (s LineSegment) WeightedSplit(f func(Point) float64, numSplits int) []Point {
	return Defaults.WeightedSplit(s, f, numSplits)
}

func (cfg Config) OnStrip(s LineSegment, p Point) bool {
	atStart, atEnd := s.StripBoundaries()
	return cfg.IsOnSide(atStart, p, atStart.Side(s.End)) &&
		cfg.IsOnSide(atEnd, p, atEnd.Side(s.Start))
}

func (cfg Config) SegmentContains(s LineSegment, p Point) bool {
	if !cfg.OnLine(s.Line(), p) {
		return false
	}
	direction := s.End.Sub(s.Start)
	projection := p.Sub(s.Start).Dot(direction)
	return 0 <= projection && projection <= direction.LengthSquared()
}

func (cfg Config) Split(s LineSegment, line Line) []LineSegment {
	intersection, ok := cfg.Intersect(s.Line(), line)
	if !ok || !cfg.SegmentContains(s, intersection) {
		return []LineSegment{s}
	}
	return []LineSegment{{s.Start, intersection}, {intersection, s.End}}
}

// Number of integration steps for a segment of the given length.
func (cfg Config) integrationSteps(length float64, limit int) int {
	n := int(math.Ceil(length / cfg.IntegrationStep))
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Cumulative midpoint-rule integral of f along the segment over n equal steps.
// The result has n+1 entries, starting at zero, so result[k] is the integral
// over the first k steps.
func integrateAlong(s LineSegment, n int, f func(Point) float64) []float64 {
	step := s.Length() / float64(n)
	masses := make([]float64, n+1)
	for i := 0; i < n; i++ {
		mid := s.InterpolatePosition(float64(i)+0.5, float64(n-i)-0.5)
		masses[i+1] = f(mid) * step
	}
	return floats.CumSum(masses, masses)
}

// Place numSplits+2 points along the segment, both endpoints included, so that
// the integral of f between consecutive points is the same. Points crowd where
// f is large. f must be non-negative. If it integrates to zero along the
// segment, the points are evenly spaced instead.
func (cfg Config) WeightedSplit(s LineSegment, f func(Point) float64, numSplits int) []Point {
	if numSplits < 0 {
		numSplits = 0
	}
	m := numSplits + 1
	n := cfg.integrationSteps(s.Length(), cfg.MaxSplitSamples)
	cumulative := integrateAlong(s, n, f)
	total := cumulative[n]

	result := make([]Point, 0, m+1)
	if !(total > 0) || math.IsInf(total, 0) {
		for i := 0; i <= m; i++ {
			result = append(result, s.InterpolatePosition(float64(i), float64(m-i)))
		}
		return result
	}

	stepSize := total / float64(m)
	next := 0
	for k := 0; k < n; k++ {
		// The k-th integration step, on which each target mass in range is
		// located by linear interpolation of the cumulative integral.
		sub := LineSegment{
			s.InterpolatePosition(float64(k), float64(n-k)),
			s.InterpolatePosition(float64(k+1), float64(n-k-1)),
		}
		for next <= m && stepSize*float64(next) <= cfg.Epsilon*total+cumulative[k+1] {
			target := stepSize * float64(next)
			before := math.Max(target-cumulative[k], 0)
			after := math.Max(cumulative[k+1]-target, 0)
			if before+after == 0 {
				result = append(result, sub.Start)
			} else {
				result = append(result, sub.InterpolatePosition(before, after))
			}
			next++
		}
	}
	// Rounding can leave the final target just beyond the last step.
	for ; next <= m; next++ {
		result = append(result, s.End)
	}
	return result
}
