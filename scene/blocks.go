package scene

import (
	"fmt"
	"strings"
)

// Generate the image settings block.
func ImageBlock(img *Image) string {
	return fmt.Sprintf(
		"image {\n\tresolution %s\n\taa %s\n\tsamples %s\n\tfilter %s\n}\n",
		img.Resolution, img.AA, img.Samples, img.Filter,
	)
}

// Generate the trace-depths block.
func TraceDepthsBlock(img *Image) string {
	return fmt.Sprintf(
		"trace-depths {\n\tdiff %s\n\trefl %s\n\trefr %s\n}\n",
		img.TraceDiff, img.TraceRefl, img.TraceRefr,
	)
}

// Generate the global illumination block.
func GIBlock(img *Image) string {
	return fmt.Sprintf(
		"gi {\n\ttype %s\n\tbright %s\n\tdark %s\n\tsamples %s\n\tmaxdist %s\n}\n",
		img.GIType, img.GIBright, img.GIDark, img.GISamples, img.GIMaxDist,
	)
}

// Generate the background block. Unlike the other blocks it does not end
// with a newline.
func BackgroundBlock(img *Image) string {
	return fmt.Sprintf("background {\n\tcolor %s\n}", img.Background)
}

// Generate the plane object that references the floor shader.
func PlaneBlock(plane FloorPlane) string {
	return fmt.Sprintf(
		"object {\n\tshader floor\n\ttype plane\n\tp %s\n\tn %s\n}\n",
		plane.Position, plane.Normal,
	)
}

// Ensure that every setting referenced by the main block is populated.
func (img *Image) Validate() error {
	settings := []struct {
		name  string
		value string
	}{
		{"resolution", img.Resolution},
		{"aa", img.AA},
		{"samples", img.Samples},
		{"filter", img.Filter},
		{"trace diff", img.TraceDiff},
		{"trace refl", img.TraceRefl},
		{"trace refr", img.TraceRefr},
		{"gi type", img.GIType},
		{"gi bright", img.GIBright},
		{"gi dark", img.GIDark},
		{"gi samples", img.GISamples},
		{"gi maxdist", img.GIMaxDist},
		{"background", img.Background},
	}

	for _, setting := range settings {
		if strings.TrimSpace(setting.value) == "" {
			return fmt.Errorf("%w %q", ErrMissingSetting, setting.name)
		}
	}

	return nil
}

// Generate the image, trace-depths, gi and background blocks separated by
// blank lines.
func (img *Image) MainBlock() (string, error) {
	if err := img.Validate(); err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n",
		ImageBlock(img), TraceDepthsBlock(img), GIBlock(img), BackgroundBlock(img),
	), nil
}

// Generate the floor shader and plane object. An empty string is returned
// when the floor is disabled.
//
// The placement is derived from the points checked so far, so FloorBlock must
// be called after every scene point has been passed to CheckLowestPoint.
func (img *Image) FloorBlock() string {
	if !img.floorShadow {
		return ""
	}

	return img.floorShader + PlaneBlock(img.FloorPlacement())
}
