package config

import (
	"github.com/achilleasa/scexport/scene"
	"github.com/kelseyhightower/envconfig"
)

// The prefix for all environment overrides, e.g. SCEXPORT_RESOLUTION.
const envPrefix = "SCEXPORT"

// Config holds image setting overrides read from the environment. Field
// names map to upper snake case keys, e.g. GIMaxDist is read from
// SCEXPORT_GI_MAX_DIST. Empty values leave the image defaults untouched.
type Config struct {
	Resolution string `split_words:"true"`
	AA         string `split_words:"true"`
	Samples    string `split_words:"true"`
	Filter     string `split_words:"true"`

	TraceDiff string `split_words:"true"`
	TraceRefl string `split_words:"true"`
	TraceRefr string `split_words:"true"`

	GIType    string `split_words:"true"`
	GISamples string `split_words:"true"`
	GIMaxDist string `split_words:"true"`

	Background   string `split_words:"true"`
	GlobalShader string `split_words:"true"`

	FloorColor  string   `split_words:"true"`
	FloorShader string   `split_words:"true"`
	FloorAngle  *float64 `split_words:"true"`
	FloorShadow *bool    `split_words:"true"`
	OutputWidth int      `split_words:"true"`

	LogLevel string `split_words:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply the non-empty overrides to img. A floor color override without a
// floor shader override re-selects the diffuse shader so the color is used.
func (cfg *Config) Apply(img *scene.Image) error {
	overrides := []struct {
		value string
		dst   *string
	}{
		{cfg.Resolution, &img.Resolution},
		{cfg.AA, &img.AA},
		{cfg.Samples, &img.Samples},
		{cfg.Filter, &img.Filter},
		{cfg.TraceDiff, &img.TraceDiff},
		{cfg.TraceRefl, &img.TraceRefl},
		{cfg.TraceRefr, &img.TraceRefr},
		{cfg.GIType, &img.GIType},
		{cfg.GISamples, &img.GISamples},
		{cfg.GIMaxDist, &img.GIMaxDist},
		{cfg.Background, &img.Background},
		{cfg.GlobalShader, &img.GlobalShader},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = o.value
		}
	}

	if cfg.FloorAngle != nil {
		img.SetFloorAngle(*cfg.FloorAngle)
	}
	if cfg.FloorShadow != nil {
		img.SetFloorShadow(*cfg.FloorShadow)
	}
	if cfg.OutputWidth != 0 {
		img.SetOutputWidth(cfg.OutputWidth)
	}
	shaderKind := cfg.FloorShader
	if cfg.FloorColor != "" {
		img.SetFloorColor(cfg.FloorColor)
		if shaderKind == "" {
			shaderKind = scene.DiffuseShader.String()
		}
	}
	if shaderKind != "" {
		return img.SetFloorShader(shaderKind)
	}

	return nil
}
