// Package polyio reads polygon rings from SVG documents and from a plain text
// format of one "x y" pair per line.
package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/mirrorgeom/geometry"
	"github.com/pkg/errors"
)

// Read the point lists of every <polygon> and <polyline> element in an SVG
// document, in document order. This is not a full SVG reader: transforms and
// paths are ignored.
func ReadSVG(r io.Reader) ([][]geometry.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var rings [][]geometry.Point
	for _, element := range collect(root) {
		points, err := ParsePoints(element.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "in <%s> %d", element.Name, len(rings))
		}
		rings = append(rings, points)
	}
	if len(rings) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return rings, nil
}

// FindAll only searches for one element name, so walk the tree ourselves to
// keep polygons and polylines in document order.
func collect(element *svgparser.Element) []*svgparser.Element {
	var result []*svgparser.Element
	if element.Name == "polygon" || element.Name == "polyline" {
		result = append(result, element)
	}
	for _, child := range element.Children {
		result = append(result, collect(child)...)
	}
	return result
}

// Parse an SVG points attribute, such as "0,0 10,0 10,10". Coordinates may be
// separated by commas, whitespace or both.
func ParsePoints(attribute string) ([]geometry.Point, error) {
	fields := strings.FieldsFunc(attribute, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attribute)
	}
	points := make([]geometry.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points, nil
}
