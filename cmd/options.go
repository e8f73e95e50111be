package cmd

import (
	"github.com/achilleasa/scexport/config"
	"github.com/achilleasa/scexport/scene"
	"github.com/urfave/cli"
)

// Flags for overriding image settings. Each flag only takes effect when set
// explicitly so that environment overrides are preserved.
var ImageFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "resolution",
		Usage: `image resolution as "width height"`,
	},
	cli.StringFlag{
		Name:  "aa",
		Usage: `min and max anti-aliasing depth as "min max"`,
	},
	cli.StringFlag{
		Name:  "samples",
		Usage: "samples per pixel",
	},
	cli.StringFlag{
		Name:  "filter",
		Usage: "image filter (box, triangle, gaussian, mitchell, blackman-harris)",
	},
	cli.StringFlag{
		Name:  "diff",
		Usage: "diffuse trace depth",
	},
	cli.StringFlag{
		Name:  "refl",
		Usage: "reflection trace depth",
	},
	cli.StringFlag{
		Name:  "refr",
		Usage: "refraction trace depth",
	},
	cli.StringFlag{
		Name:  "gi-type",
		Usage: "global illumination type",
	},
	cli.StringFlag{
		Name:  "gi-samples",
		Usage: "global illumination samples",
	},
	cli.StringFlag{
		Name:  "gi-maxdist",
		Usage: "ambient occlusion max distance",
	},
	cli.StringFlag{
		Name:  "background",
		Usage: `background color as "r g b"`,
	},
	cli.StringFlag{
		Name:  "global-shader",
		Usage: "shader applied to scene objects",
	},
	cli.Float64Flag{
		Name:  "floor-angle",
		Value: 90.0,
		Usage: "tilt in degrees between the scene up axis and true up",
	},
	cli.StringFlag{
		Name:  "floor-color",
		Usage: `floor color as "r g b"`,
	},
	cli.StringFlag{
		Name:  "floor-shader",
		Usage: "floor shader (diffuse, glass, mirror, shiny, phong)",
	},
	cli.BoolFlag{
		Name:  "no-floor",
		Usage: "do not emit a floor plane",
	},
	cli.IntFlag{
		Name:  "output-width",
		Value: 1280,
		Usage: "output image width in pixels",
	},
}

// Build the image settings from defaults, environment overrides and command
// line flags, in that order of precedence.
func buildImage(ctx *cli.Context) (*scene.Image, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err = setupLogging(ctx, cfg.LogLevel); err != nil {
		return nil, err
	}

	img := scene.NewImage()
	if err = cfg.Apply(img); err != nil {
		return nil, err
	}

	stringFlags := []struct {
		name string
		dst  *string
	}{
		{"resolution", &img.Resolution},
		{"aa", &img.AA},
		{"samples", &img.Samples},
		{"filter", &img.Filter},
		{"diff", &img.TraceDiff},
		{"refl", &img.TraceRefl},
		{"refr", &img.TraceRefr},
		{"gi-type", &img.GIType},
		{"gi-samples", &img.GISamples},
		{"gi-maxdist", &img.GIMaxDist},
		{"background", &img.Background},
		{"global-shader", &img.GlobalShader},
	}
	for _, f := range stringFlags {
		if ctx.IsSet(f.name) {
			*f.dst = ctx.String(f.name)
		}
	}

	if ctx.IsSet("floor-angle") {
		img.SetFloorAngle(ctx.Float64("floor-angle"))
	}
	if ctx.IsSet("output-width") {
		img.SetOutputWidth(ctx.Int("output-width"))
	}
	if ctx.Bool("no-floor") {
		img.SetFloorShadow(false)
	}

	// The floor color is captured when a shader is selected so a new color
	// always triggers a shader selection.
	shaderKind := ctx.String("floor-shader")
	if ctx.IsSet("floor-color") {
		img.SetFloorColor(ctx.String("floor-color"))
		if shaderKind == "" {
			shaderKind = cfg.FloorShader
		}
		if shaderKind == "" {
			shaderKind = scene.DiffuseShader.String()
		}
	}
	if shaderKind != "" {
		if err = img.SetFloorShader(shaderKind); err != nil {
			return nil, err
		}
	}

	logger.Debugf("floor angle %v, floor enabled %t, output width %d", img.FloorAngle(), img.FloorShadow(), img.OutputWidth())
	return img, nil
}
