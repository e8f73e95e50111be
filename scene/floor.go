package scene

import (
	"math"

	"github.com/achilleasa/scexport/types"
)

// FloorPlane describes the placement of the synthetic floor.
type FloorPlane struct {
	Position types.Vec3
	Normal   types.Vec3
}

// Update the floor state with a scene point given in authored coordinates.
//
// The point is rotated about X by -floorAngle so that true down becomes the
// -Y axis. If its rotated height is strictly lower than any point seen so far,
// the un-rotated point becomes the new lowest point. Ties keep the point that
// was seen first. The tracked Z range always uses the un-rotated z.
func (img *Image) CheckLowestPoint(p types.Vec3) {
	img.numPoints++

	rotated := p.RotateX(types.Radians(-img.floorAngle))
	if rotated[1] < img.floorHeight {
		img.floorHeight = rotated[1]
		img.lowestPoint = p
	}

	if p[2] > img.maxZ {
		img.maxZ = p[2]
	}
	if p[2] < img.minZ {
		img.minZ = p[2]
	}
}

// Return the lowest rotated height seen so far. It is +Inf if no points
// have been checked.
func (img *Image) FloorHeight() float64 {
	return img.floorHeight
}

// Return the un-rotated point with the lowest rotated height.
func (img *Image) LowestPoint() types.Vec3 {
	return img.lowestPoint
}

// Return the min and max z values over all checked points. The range starts
// at [200, -200] rather than at infinity; see seedMinZ.
func (img *Image) ZRange() (minZ, maxZ float64) {
	return img.minZ, img.maxZ
}

// Return the number of checked points.
func (img *Image) PointCount() int {
	return img.numPoints
}

// Calculate the floor plane placement from the points checked so far. The
// plane sits floorClearance units below the lowest point along Y and its
// normal is the authored up axis tilted by the floor angle.
//
// FloorPlacement does not modify the image; calling it before all scene points
// have been checked yields a placement based on the partial set.
func (img *Image) FloorPlacement() FloorPlane {
	sin, cos := math.Sincos(types.Radians(img.floorAngle))
	return FloorPlane{
		Position: img.lowestPoint.Sub(types.XYZ(0, floorClearance, 0)),
		Normal:   types.XYZ(0, cos, sin),
	}
}
