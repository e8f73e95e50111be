package types

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/image/math/f64"
)

// Vec3 uses 64-bit components so that coordinates survive the trip to the
// scene file without losing precision.
type Vec3 f64.Vec3

// Define a 3 component vector.
func XYZ(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Returns false if any component is infinite or NaN.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}

// Rotate the vector about the X axis by angle radians. The X component is
// left untouched.
func (v Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		v[0],
		v[1]*cos - v[2]*sin,
		v[1]*sin + v[2]*cos,
	}
}

// Format the vector as three space-separated decimals using the shortest
// representation that parses back to the same value.
func (v Vec3) String() string {
	return fmt.Sprintf("%s %s %s", FormatFloat(v[0]), FormatFloat(v[1]), FormatFloat(v[2]))
}

// Format a float in plain decimal notation without truncating precision.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Convert degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
