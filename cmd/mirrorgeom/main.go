// Command line front end for the geometry kernel. Polygons are read from an
// SVG file or from stdin, transformed, and written to stdout as newline
// separated "x y" points with a blank line between polygons. A colored summary
// of the result goes to stderr.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/mirrorgeom"
	"github.com/osuushi/mirrorgeom/boundary"
	"github.com/osuushi/mirrorgeom/dbg"
	"github.com/osuushi/mirrorgeom/geometry"
	"github.com/osuushi/mirrorgeom/polyio"
	"github.com/osuushi/mirrorgeom/preview"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

type options struct {
	in         string
	configPath string
	pngPath    string
	scale      float64
	imgcat     bool
	verbose    bool
	noColor    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("mirrorgeom", "Crop, reflect and invert polygons.\n\n"+
		"Values starting with a minus sign must be joined to their flag, as in --offset=-1 or --center=-3,0.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	var opts options
	app.Flag("in", "SVG file to read polygons from. Defaults to points on stdin.").Short('i').ExistingFileVar(&opts.in)
	app.Flag("config", "YAML file of geometry tolerances.").Short('c').ExistingFileVar(&opts.configPath)
	app.Flag("png", "Write a preview of the result to this file.").StringVar(&opts.pngPath)
	app.Flag("scale", "Preview pixels per unit.").Default("20").Float64Var(&opts.scale)
	app.Flag("imgcat", "Print a preview of the result to the terminal, on stderr.").BoolVar(&opts.imgcat)
	app.Flag("verbose", "Log rejected fragments and dropped samples.").Short('v').BoolVar(&opts.verbose)
	app.Flag("no-color", "Disable colored output.").BoolVar(&opts.noColor)

	crop := app.Command("crop", "Keep the part of each polygon on one side of a line.")
	cropNormal := crop.Flag("normal", "Line normal as X,Y.").Required().String()
	cropOffset := crop.Flag("offset", "Line offset, as --offset=-1 when negative.").Default("0").Float64()
	cropSide := crop.Flag("side", "Side to keep, positive or negative (--side=-1).").Default("1").Float64()

	reflect := app.Command("reflect", "Reflect each polygon over a point or a line.")
	reflectLine := reflect.Flag("line", "Line through two points, as X1,Y1,X2,Y2.").String()
	reflectPoint := reflect.Flag("point", "Point as X,Y.").String()

	invert := app.Command("invert", "Invert each polygon over a circle.")
	invertCenter := invert.Flag("center", "Circle center as X,Y.").Required().String()
	invertRadius := invert.Flag("radius", "Circle radius.").Required().Float64()

	mirror := app.Command("mirror", "Pass each polygon through a mirror segment.")
	mirrorSegment := mirror.Flag("segment", "Mirror as X1,Y1,X2,Y2.").Required().String()

	mesh := app.Command("mesh", "Convert each polygon to a render mesh and a collider.")

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	if opts.verbose {
		geometry.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer geometry.SetLogger(nil)
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	polygons, err := readPolygons(opts.in, stdin)
	if err != nil {
		return err
	}

	au := aurora.NewAurora(!opts.noColor)
	var scene preview.Scene
	var results geometry.PolygonList

	switch command {
	case crop.FullCommand():
		normal, err := parsePoint(*cropNormal)
		if err != nil {
			return errors.Wrap(err, "--normal")
		}
		line, err := mirrorgeom.NewLine(normal, *cropOffset)
		if err != nil {
			return err
		}
		for _, poly := range polygons {
			if cropped, ok := cfg.CropPolygon(poly, line, *cropSide); ok {
				results = append(results, cropped)
			}
		}

	case reflect.FullCommand():
		switch {
		case *reflectPoint != "" && *reflectLine != "":
			return errors.New("reflect takes either --point or --line, not both")
		case *reflectPoint != "":
			origin, err := parsePoint(*reflectPoint)
			if err != nil {
				return errors.Wrap(err, "--point")
			}
			for _, poly := range polygons {
				results = append(results, poly.ReflectOverPoint(origin))
			}
		case *reflectLine != "":
			segment, err := parseSegment(*reflectLine)
			if err != nil {
				return errors.Wrap(err, "--line")
			}
			if segment.Length() < cfg.Epsilon {
				return errors.Errorf("--line %q does not define a line", *reflectLine)
			}
			scene.Segments = append(scene.Segments, segment)
			for _, poly := range polygons {
				results = append(results, poly.ReflectOverLine(segment.Line()))
			}
		default:
			return errors.New("reflect needs --point or --line")
		}

	case invert.FullCommand():
		center, err := parsePoint(*invertCenter)
		if err != nil {
			return errors.Wrap(err, "--center")
		}
		circle, err := mirrorgeom.NewCircle(center, *invertRadius)
		if err != nil {
			return err
		}
		scene.Circles = append(scene.Circles, circle)
		for _, poly := range polygons {
			if inverted, ok := cfg.InvertPolygon(poly, circle); ok {
				results = append(results, inverted)
			}
		}

	case mirror.FullCommand():
		segment, err := parseSegment(*mirrorSegment)
		if err != nil {
			return errors.Wrap(err, "--segment")
		}
		scene.Segments = append(scene.Segments, segment)
		for _, poly := range polygons {
			split, ok := cfg.SplitByMirror(poly, segment)
			if !ok {
				// Out of the mirror's reach
				results = append(results, poly)
				continue
			}
			results = append(results, split.Pieces()...)
		}

	case mesh.FullCommand():
		namer := dbg.NewNamer()
		for i := range polygons {
			name := namer.Name(&polygons[i])
			m, ok := boundary.ToMesh(polygons[i])
			if !ok {
				return errors.Errorf("polygon %s crosses itself and cannot be meshed", name)
			}
			collider := boundary.ToCollider(polygons[i])
			fmt.Fprintf(stderr, "%s: %d triangles, %d collider edges\n",
				au.Bold(au.Cyan(name)),
				au.Green(m.NumTriangles()),
				au.Green(len(collider.Edges)))
		}
		results = polygons

	default:
		return errors.Errorf("unknown command %q", command)
	}

	report(stderr, au, polygons, results)
	if err := writePolygons(stdout, results); err != nil {
		return err
	}

	scene.AddPolygons(results...)
	if opts.pngPath != "" {
		if err := preview.SavePNG(scene, opts.scale, opts.pngPath); err != nil {
			return err
		}
	}
	// stdout carries the points, so the image goes to stderr
	if opts.imgcat {
		if err := preview.Cat(scene, opts.scale, stderr); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(path string) (geometry.Config, error) {
	if path == "" {
		return geometry.Defaults, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return geometry.Config{}, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	return geometry.ReadConfig(file)
}

func readPolygons(path string, stdin io.Reader) (geometry.PolygonList, error) {
	var rings [][]geometry.Point
	var err error
	if path == "" {
		rings, err = polyio.ReadText(stdin)
	} else {
		var file *os.File
		file, err = os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		rings, err = polyio.ReadSVG(file)
	}
	if err != nil {
		return nil, err
	}
	polygons := polyio.Polygons(rings)
	if len(polygons) == 0 {
		return nil, errors.New("no polygons in input")
	}
	return polygons, nil
}

func writePolygons(w io.Writer, polygons geometry.PolygonList) error {
	rings := make([][]geometry.Point, len(polygons))
	for i, poly := range polygons {
		rings[i] = poly.Vertices()
	}
	return polyio.WriteText(w, rings)
}

func report(w io.Writer, au aurora.Aurora, in, out geometry.PolygonList) {
	namer := dbg.NewNamer()
	fmt.Fprintf(w, "%d polygons in, %d out\n", au.Yellow(len(in)), au.Yellow(len(out)))
	for i := range out {
		fmt.Fprintf(w, "  %s: %d vertices, area %.4g\n",
			au.Cyan(namer.Name(&out[i])),
			out[i].NumVertices(),
			au.Green(out[i].Area()))
	}
	fmt.Fprintf(w, "total area %.4g -> %.4g\n", in.Area(), au.Bold(out.Area()))
}
