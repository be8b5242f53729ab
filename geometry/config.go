package geometry

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tolerances and resolution budgets of the kernel. The methods
// on Line, LineSegment and Polygon use Defaults; the Config methods of the same
// name take the tolerances from the receiver instead, which lets tests and
// callers with unusual scales tighten or loosen them.
type Config struct {
	// Distance under which two things are considered to coincide.
	Epsilon float64 `yaml:"epsilon"`

	// Fragments left by a crop with less area than this are dropped.
	CropMinArea float64 `yaml:"crop_min_area"`

	// Sanitization thresholds for inverted polygons.
	InversionMinDistance float64 `yaml:"inversion_min_distance"`
	InversionMinArea     float64 `yaml:"inversion_min_area"`

	// Output vertex budget for an inverted polygon, shared among its edges.
	PolygonResolution int `yaml:"polygon_resolution"`
	// Number of splits of an inverted segment.
	SegmentResolution int `yaml:"segment_resolution"`

	// Length of one integration step along an edge, and the caps on the number
	// of steps when measuring an edge's mass and when splitting it.
	IntegrationStep float64 `yaml:"integration_step"`
	MaxMassSamples  int     `yaml:"max_mass_samples"`
	MaxSplitSamples int     `yaml:"max_split_samples"`

	// Past this distance from the inversion center, the sampling weight decays
	// exponentially instead of as 1/d.
	WeightFalloffDistance float64 `yaml:"weight_falloff_distance"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon:               1e-6,
		CropMinArea:           0.01,
		InversionMinDistance:  0.001,
		InversionMinArea:      0.001,
		PolygonResolution:     120,
		SegmentResolution:     30,
		IntegrationStep:       0.05,
		MaxMassSamples:        400,
		MaxSplitSamples:       200,
		WeightFalloffDistance: 10,
	}
}

// The configuration used by the value methods.
var Defaults = DefaultConfig()

func (cfg Config) Validate() error {
	switch {
	case cfg.Epsilon <= 0:
		return errors.Errorf("epsilon must be positive, got %v", cfg.Epsilon)
	case cfg.CropMinArea < 0:
		return errors.Errorf("crop_min_area must not be negative, got %v", cfg.CropMinArea)
	case cfg.InversionMinDistance < 0 || cfg.InversionMinArea < 0:
		return errors.Errorf("inversion thresholds must not be negative, got %v and %v", cfg.InversionMinDistance, cfg.InversionMinArea)
	case cfg.PolygonResolution < 1:
		return errors.Errorf("polygon_resolution must be at least 1, got %d", cfg.PolygonResolution)
	case cfg.SegmentResolution < 1:
		return errors.Errorf("segment_resolution must be at least 1, got %d", cfg.SegmentResolution)
	case cfg.IntegrationStep <= 0:
		return errors.Errorf("integration_step must be positive, got %v", cfg.IntegrationStep)
	case cfg.MaxMassSamples < 1 || cfg.MaxSplitSamples < 1:
		return errors.Errorf("sample caps must be at least 1, got %d and %d", cfg.MaxMassSamples, cfg.MaxSplitSamples)
	case cfg.WeightFalloffDistance <= 0:
		return errors.Errorf("weight_falloff_distance must be positive, got %v", cfg.WeightFalloffDistance)
	}
	return nil
}

// Read a YAML document of overrides. Fields missing from the document keep
// their default values.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding geometry config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid geometry config")
	}
	return cfg, nil
}
