package geometry

func (s LineSegment) ReflectOverPoint(origin Point) LineSegment {
	return LineSegment{s.Start.ReflectOverPoint(origin), s.End.ReflectOverPoint(origin)}
}

func (s LineSegment) ReflectOverLine(line Line) LineSegment {
	return LineSegment{s.Start.ReflectOverLine(line), s.End.ReflectOverLine(line)}
}

// Reflecting through a point is a half turn, which keeps the winding, so the
// rings keep their order.
func (poly Polygon) ReflectOverPoint(origin Point) Polygon {
	vertices := make([]Point, len(poly.vertices))
	for i, v := range poly.vertices {
		vertices[i] = v.ReflectOverPoint(origin)
	}
	return Polygon{vertices, append([]Point(nil), poly.textureCoords...)}
}

// Reflecting over a line flips chirality, so both rings are reversed to keep
// the polygon counterclockwise. Reflecting twice gives back the original ring
// order.
func (poly Polygon) ReflectOverLine(line Line) Polygon {
	n := len(poly.vertices)
	vertices := make([]Point, n)
	for i, v := range poly.vertices {
		vertices[n-1-i] = v.ReflectOverLine(line)
	}
	return Polygon{vertices, reversed(poly.textureCoords)}
}
