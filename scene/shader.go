package scene

import (
	"fmt"
	"strings"
)

type ShaderKind uint8

// The supported floor shaders.
const (
	DiffuseShader ShaderKind = iota
	GlassShader
	MirrorShader
	ShinyShader
	PhongShader
)

func (k ShaderKind) String() string {
	switch k {
	case DiffuseShader:
		return "diffuse"
	case GlassShader:
		return "glass"
	case MirrorShader:
		return "mirror"
	case ShinyShader:
		return "shiny"
	case PhongShader:
		return "phong"
	}

	return "unknown"
}

// Shader templates. Each %s is replaced by the floor color.
var shaderTemplates = map[ShaderKind]string{
	DiffuseShader: "shader {\n\tname floor\n\ttype diffuse\n\tdiff %s\n}\n",
	GlassShader:   "shader {\n\tname floor\n\ttype glass\n\teta 1.33\n\tcolor  %s\n\tabsorbtion.distance 5.0\n}\n",
	MirrorShader:  "shader {\n\tname floor\n\ttype mirror\n\trefl %s\n}\n",
	ShinyShader:   "shader {\n\tname floor\n\ttype shiny\n\tdiff { \"sRGB nonlinear\" %s }\n\trefl 0.5\n}\n",
	PhongShader:   "shader {\n\tname floor\n\ttype phong\n\tdiff { \"sRGB linear\" %[1]s }\n\tspec { \"sRGB linear\" %[1]s } 50\n\tsamples 4\n}\n",
}

// Parse a case-insensitive shader kind. Both "diff" and "diffuse" select
// the diffuse shader.
func ParseShaderKind(name string) (ShaderKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "diff", "diffuse":
		return DiffuseShader, nil
	case "glass":
		return GlassShader, nil
	case "mirror":
		return MirrorShader, nil
	case "shiny":
		return ShinyShader, nil
	case "phong":
		return PhongShader, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownShader, name)
}

func renderShader(kind ShaderKind, color string) string {
	return fmt.Sprintf(shaderTemplates[kind], color)
}

// Select the floor shader and render it using the current floor color. If
// kind is not recognized the previously selected shader text is kept and an
// error wrapping ErrUnknownShader is returned.
func (img *Image) SetFloorShader(kind string) error {
	shaderKind, err := ParseShaderKind(kind)
	if err != nil {
		return err
	}

	img.floorShader = renderShader(shaderKind, img.floorColor)
	return nil
}
