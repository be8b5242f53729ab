package main

import (
	"strconv"
	"strings"

	"github.com/osuushi/mirrorgeom/geometry"
	"github.com/pkg/errors"
)

// Parse exactly n comma separated numbers.
func parseNumbers(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, errors.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	numbers := make([]float64, n)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", s)
		}
		numbers[i] = value
	}
	return numbers, nil
}

func parsePoint(s string) (geometry.Point, error) {
	numbers, err := parseNumbers(s, 2)
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: numbers[0], Y: numbers[1]}, nil
}

func parseSegment(s string) (geometry.LineSegment, error) {
	numbers, err := parseNumbers(s, 4)
	if err != nil {
		return geometry.LineSegment{}, err
	}
	return geometry.LineSegment{
		Start: geometry.Point{X: numbers[0], Y: numbers[1]},
		End:   geometry.Point{X: numbers[2], Y: numbers[3]},
	}, nil
}
