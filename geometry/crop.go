package geometry

func (s LineSegment) CropToHalfPlane(line Line, side float64) (LineSegment, bool) {
	return Defaults.CropSegment(s, line, side)
}

func (poly Polygon) CropToHalfPlane(line Line, side float64) (Polygon, bool) {
	return Defaults.CropPolygon(poly, line, side)
}

// The piece of the segment, after splitting it on the line, that lies entirely
// on the kept side.
func (cfg Config) CropSegment(s LineSegment, line Line, side float64) (LineSegment, bool) {
	for _, piece := range cfg.Split(s, line) {
		if cfg.IsOnSide(line, piece.Start, side) && cfg.IsOnSide(line, piece.End, side) {
			return piece, true
		}
	}
	return LineSegment{}, false
}

// Sutherland–Hodgman against a single boundary. The walk starts at a kept
// vertex so that the output ring starts with an original vertex, and every
// edge that crosses the line contributes the crossing point, with a texture
// coordinate interpolated between the edge's endpoints.
func (cfg Config) CropPolygon(poly Polygon, line Line, side float64) (Polygon, bool) {
	n := len(poly.vertices)
	start := -1
	for i, v := range poly.vertices {
		if cfg.IsOnSide(line, v, side) {
			start = i
			break
		}
	}
	if start < 0 {
		Logger().Debug("polygon cropped away", "vertices", n)
		return Polygon{}, false
	}

	vertices := []Point{poly.vertices[start]}
	textureCoords := []Point{poly.textureCoords[start]}

	// Returns the crossing of the edge from index last to index next, and
	// whether it exists. Parallel edges never cross.
	crossing := func(last, next int) (Point, Point, bool) {
		a, b := poly.vertices[last], poly.vertices[next]
		intersection, ok := cfg.Intersect(line, NewLineThrough(a, b))
		if !ok {
			return Point{}, Point{}, false
		}
		texture := interpolateTextureCoords(a, poly.textureCoords[last], b, poly.textureCoords[next], intersection)
		return intersection, texture, true
	}

	for i := start + 1; i <= start+n; i++ {
		last := CircularIndex(i-1, n)
		next := CircularIndex(i, n)
		lastKept := cfg.IsOnSide(line, poly.vertices[last], side)

		if cfg.IsOnSide(line, poly.vertices[next], side) {
			if !lastKept {
				intersection, texture, ok := crossing(last, next)
				if ok &&
					intersection.DistanceTo(vertices[len(vertices)-1]) > cfg.Epsilon &&
					intersection.DistanceTo(poly.vertices[next]) > cfg.Epsilon {
					vertices = append(vertices, intersection)
					textureCoords = append(textureCoords, texture)
				}
			}
			vertices = append(vertices, poly.vertices[next])
			textureCoords = append(textureCoords, poly.textureCoords[next])
		} else if lastKept {
			intersection, texture, ok := crossing(last, next)
			if ok && intersection.DistanceTo(vertices[len(vertices)-1]) > cfg.Epsilon {
				vertices = append(vertices, intersection)
				textureCoords = append(textureCoords, texture)
			}
		}
	}

	// The walk ends where it started, so the last vertex repeats the first.
	vertices = vertices[:len(vertices)-1]
	textureCoords = textureCoords[:len(textureCoords)-1]

	return newPolygon(vertices, textureCoords).Sanitize(cfg.Epsilon, cfg.CropMinArea)
}

// Interpolate a texture coordinate for p, which lies on the segment between
// last and next, weighting each end by the distance to the other.
func interpolateTextureCoords(last, lastTexture, next, nextTexture, p Point) Point {
	s := p.DistanceTo(last)
	t := p.DistanceTo(next)
	if s+t == 0 {
		return lastTexture
	}
	return lastTexture.Scale(t).Add(nextTexture.Scale(s)).Scale(1 / (s + t))
}
