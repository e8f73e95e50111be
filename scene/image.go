package scene

import (
	"math"

	"github.com/achilleasa/scexport/types"
)

const (
	// Seed values for the tracked Z range. The range is not seeded with
	// infinities so scenes whose depth never leaves [-200, 200] report the
	// seeds as their bounds.
	seedMaxZ = -200.0
	seedMinZ = 200.0

	// Clearance between the lowest point and the floor plane.
	floorClearance = 2.0
)

// Image holds the renderer settings for a single scene export together with
// the floor placement state accumulated while the scene points are streamed
// in. All string settings are emitted verbatim.
type Image struct {
	// image block.
	Resolution string
	AA         string
	Samples    string
	Filter     string

	// trace-depths block.
	TraceDiff string
	TraceRefl string
	TraceRefr string

	// gi block.
	GIType    string
	GIBright  string
	GIDark    string
	GISamples string
	GIMaxDist string

	// background block.
	Background string

	// Shader name applied to scene objects by the exporter.
	GlobalShader string

	// Enable depth of field. Read by the camera exporter together with ZRange.
	DOF bool

	floorColor  string
	floorShader string
	floorAngle  float64
	floorShadow bool
	outputWidth int

	floorHeight float64
	lowestPoint types.Vec3
	minZ        float64
	maxZ        float64
	numPoints   int
}

// Create a new image configuration with default settings.
func NewImage() *Image {
	img := &Image{
		Resolution: "1280 959",
		AA:         "1 2",
		Samples:    "4",
		Filter:     "gaussian",

		TraceDiff: "1",
		TraceRefl: "4",
		TraceRefr: "4",

		GIType:    "ambocc",
		GIBright:  `{ "sRGB nonlinear" 1 1 1 }`,
		GIDark:    `{ "sRGB nonlinear" 0 0 0 }`,
		GISamples: "32",
		GIMaxDist: "200.0",

		Background:   "1.0 1.0 1.0",
		GlobalShader: "diff",

		floorColor:  "1.0 1.0 1.0",
		floorAngle:  90.0,
		floorShadow: true,
		outputWidth: 1280,

		floorHeight: math.Inf(1),
		minZ:        seedMinZ,
		maxZ:        seedMaxZ,
	}
	img.floorShader = renderShader(DiffuseShader, img.floorColor)
	return img
}

// Set the tilt in degrees between the authored up axis and true up.
func (img *Image) SetFloorAngle(angle float64) {
	img.floorAngle = angle
}

// Return the floor tilt in degrees.
func (img *Image) FloorAngle() float64 {
	return img.floorAngle
}

// Set the output image width in pixels.
func (img *Image) SetOutputWidth(width int) {
	img.outputWidth = width
}

// Return the output image width in pixels.
func (img *Image) OutputWidth() int {
	return img.outputWidth
}

// Enable or disable floor plane emission.
func (img *Image) SetFloorShadow(enabled bool) {
	img.floorShadow = enabled
}

// Returns true if the floor plane is emitted.
func (img *Image) FloorShadow() bool {
	return img.floorShadow
}

// Set the shader applied to scene objects.
func (img *Image) SetGlobalShader(shader string) {
	img.GlobalShader = shader
}

// Set the floor color literal. The new color only affects the floor shader
// text after the next call to SetFloorShader.
func (img *Image) SetFloorColor(color string) {
	img.floorColor = color
}

// Return the floor color literal.
func (img *Image) FloorColor() string {
	return img.floorColor
}

// Return the currently selected floor shader text.
func (img *Image) FloorShaderText() string {
	return img.floorShader
}
