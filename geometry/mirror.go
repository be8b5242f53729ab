package geometry

// A mirror is a line segment that reflects whatever lies in its strip (see
// LineSegment.OnStrip) over its line, and leaves everything else alone.

// The result of passing a polygon through a mirror. The middle piece is the
// part of the polygon in the mirror's strip, already reflected. The outside
// pieces are the parts beyond either end of the strip, when present.
type MirrorSplit struct {
	Reflected Polygon
	Outside   []Polygon
}

// All the pieces, reflected ones last.
func (m MirrorSplit) Pieces() PolygonList {
	pieces := append(PolygonList(nil), m.Outside...)
	return append(pieces, m.Reflected)
}

func SplitByMirror(poly Polygon, mirror LineSegment) (MirrorSplit, bool) {
	return Defaults.SplitByMirror(poly, mirror)
}

// Split the polygon along the mirror's strip boundaries and reflect the middle.
// Returns false when no part of the polygon is in the strip, in which case the
// mirror has no effect on it.
func (cfg Config) SplitByMirror(poly Polygon, mirror LineSegment) (MirrorSplit, bool) {
	if mirror.Length() < cfg.Epsilon {
		return MirrorSplit{}, false
	}
	atStart, atEnd := mirror.StripBoundaries()
	towardEnd := atStart.Side(mirror.End)
	towardStart := atEnd.Side(mirror.Start)

	middle, ok := cfg.CropPolygon(poly, atStart, towardEnd)
	if ok {
		middle, ok = cfg.CropPolygon(middle, atEnd, towardStart)
	}
	if !ok {
		return MirrorSplit{}, false
	}

	split := MirrorSplit{Reflected: middle.ReflectOverLine(mirror.Line())}
	if before, ok := cfg.CropPolygon(poly, atStart, -towardEnd); ok {
		split.Outside = append(split.Outside, before)
	}
	if after, ok := cfg.CropPolygon(poly, atEnd, -towardStart); ok {
		split.Outside = append(split.Outside, after)
	}
	return split, true
}

// A moving point, such as a bullet.
type Body struct {
	Position Point
	Velocity Point
}

func ReflectBody(mirror LineSegment, body Body) (Body, bool) {
	return Defaults.ReflectBody(mirror, body)
}

// Reflect a body in front of the mirror. The position is reflected over the
// mirror's line and the velocity, being a direction, over the parallel line
// through the origin. Bodies off the strip are returned unchanged with false.
func (cfg Config) ReflectBody(mirror LineSegment, body Body) (Body, bool) {
	if mirror.Length() < cfg.Epsilon || !cfg.OnStrip(mirror, body.Position) {
		return body, false
	}
	line := mirror.Line()
	return Body{
		Position: body.Position.ReflectOverLine(line),
		Velocity: body.Velocity.ReflectOverLine(line.Centered()),
	}, true
}
