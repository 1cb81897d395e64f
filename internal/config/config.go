package config

import (
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"honnef.co/go/geoline"
)

type Config struct {
	LogLevel      slog.Level `envconfig:"GEOLINE_LOG_LEVEL" default:"warn"`
	HatchMaxSteps int        `envconfig:"GEOLINE_HATCH_MAX_STEPS" default:"10"`
	ArcStep       float64    `envconfig:"GEOLINE_ARC_STEP" default:"5"`
	ArcTolerance  float64    `envconfig:"GEOLINE_ARC_TOLERANCE" default:"0.01"`
	MiterLimit    float64    `envconfig:"GEOLINE_MITER_LIMIT" default:"10"`
	RasterScale   float64    `envconfig:"GEOLINE_RASTER_SCALE" default:"1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HatchOptions returns the hatch tracing settings.
func (c *Config) HatchOptions() geoline.HatchOptions {
	return geoline.HatchOptions{MaxSteps: c.HatchMaxSteps, AngleStep: c.ArcStep}
}

// StrokeStyle returns the default stroke style with the configured miter
// limit.
func (c *Config) StrokeStyle() geoline.StrokeStyle {
	return geoline.DefaultStrokeStyle.WithMiterLimit(c.MiterLimit)
}
