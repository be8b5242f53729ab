// Package preview draws polygons, segments and circles to an image, for
// debugging and for the command line tool. The Y axis points up.
package preview

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/mirrorgeom/geometry"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const padding = 20

type Scene struct {
	Polygons []geometry.Polygon
	Segments []geometry.LineSegment
	Circles  []geometry.Circle
}

func (s *Scene) AddPolygons(polygons ...geometry.Polygon) {
	s.Polygons = append(s.Polygons, polygons...)
}

// Fill colors for polygons, cycled in order
var palette = [][3]float64{
	{0, 0.5, 0},
	{0.2, 0.3, 0.8},
	{0.7, 0.4, 0},
	{0.6, 0, 0.5},
	{0, 0.5, 0.5},
}

func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(p geometry.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, poly := range s.Polygons {
		for _, p := range poly.Vertices() {
			add(p)
		}
	}
	for _, segment := range s.Segments {
		add(segment.Start)
		add(segment.End)
	}
	for _, circle := range s.Circles {
		r := geometry.Point{X: circle.Radius(), Y: circle.Radius()}
		add(circle.Center().Sub(r))
		add(circle.Center().Add(r))
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return
}

// Draw the scene with the given number of pixels per unit.
func Render(s Scene, scale float64) image.Image {
	minX, minY, maxX, maxY := s.bounds()
	width := int(math.Ceil(scale*(maxX-minX))) + padding*2
	height := int(math.Ceil(scale*(maxY-minY))) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for i, poly := range s.Polygons {
		vertices := poly.Vertices()
		if len(vertices) == 0 {
			continue
		}
		c.MoveTo(vertices[0].X, vertices[0].Y)
		for _, p := range vertices[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		color := palette[i%len(palette)]
		c.SetRGB(color[0], color[1], color[2])
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, segment := range s.Segments {
		c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
		c.Stroke()
	}
	c.SetRGB(1, 0.8, 0)
	for _, circle := range s.Circles {
		c.DrawCircle(circle.Center().X, circle.Center().Y, circle.Radius())
		c.Stroke()
	}
	return c.Image()
}

func SavePNG(s Scene, scale float64, path string) error {
	if err := gg.SavePNG(path, Render(s, scale)); err != nil {
		return errors.Wrapf(err, "saving preview to %s", path)
	}
	return nil
}

// Print the scene to an iTerm compatible terminal.
func Cat(s Scene, scale float64, w io.Writer) error {
	if err := imgcat.CatImage(Render(s, scale), w); err != nil {
		return errors.Wrap(err, "printing preview")
	}
	return nil
}
