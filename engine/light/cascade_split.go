package light

import (
	"math"

	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// lightUpThreshold is the |dot(direction, +Y)| above which the light basis
// switches its up reference from +Y to +Z.
const lightUpThreshold float32 = 0.99

// CascadeSplits partitions the view depth range [near, far] into count slices by
// blending a logarithmic and a uniform distribution:
//
//	split_i = lambda * near * (far/near)^(i/count) + (1-lambda) * (near + (far-near) * i/count)
//
// Parameters:
//   - near: camera near plane distance (must be > 0)
//   - far: camera far plane distance (must be > near)
//   - count: number of slices (must be >= 1)
//   - lambda: blend factor in [0, 1]; 1 is fully logarithmic, 0 fully uniform
//
// Returns:
//   - []float32: count+1 strictly increasing depths with [0] == near and [count] == far
func CascadeSplits(near, far float32, count int, lambda float32) []float32 {
	splits := make([]float32, count+1)
	splits[0] = near
	ratio := float64(far / near)
	for i := 1; i < count; i++ {
		p := float32(i) / float32(count)
		logSplit := near * float32(math.Pow(ratio, float64(p)))
		uniformSplit := near + (far-near)*p
		splits[i] = lambda*logSplit + (1-lambda)*uniformSplit
	}
	splits[count] = far
	return splits
}

// FrustumSliceCorners returns the 8 view-space corners of the part of the camera
// frustum between nearDepth and farDepth. Depths are positive distances along
// the view direction. Corners 0-3 lie on the near face and 4-7 on the far face,
// each ordered top-left, top-right, bottom-left, bottom-right.
//
// Parameters:
//   - cam: the camera supplying field of view and aspect ratio
//   - nearDepth: distance of the slice's near face
//   - farDepth: distance of the slice's far face
//
// Returns:
//   - [8]mgl32.Vec3: the slice corners in view space
func FrustumSliceCorners(cam camera.Camera, nearDepth, farDepth float32) [8]mgl32.Vec3 {
	tanHalfFov := cam.TanHalfFov()
	aspect := cam.Intrinsics.Aspect

	var corners [8]mgl32.Vec3
	for face, depth := range [2]float32{nearDepth, farDepth} {
		height := 2 * tanHalfFov * depth
		width := height * aspect
		hw, hh := width/2, height/2
		base := face * 4
		corners[base+0] = mgl32.Vec3{-hw, hh, -depth}
		corners[base+1] = mgl32.Vec3{hw, hh, -depth}
		corners[base+2] = mgl32.Vec3{-hw, -hh, -depth}
		corners[base+3] = mgl32.Vec3{hw, -hh, -depth}
	}
	return corners
}

// LightViewMatrix builds the sun's view matrix: a look-at from the world origin
// along direction. The up reference is +Y, or +Z when direction is within
// lightUpThreshold of vertical.
//
// Parameters:
//   - direction: the direction the light travels (zero length is treated as straight down)
//
// Returns:
//   - mgl32.Mat4: the world-to-light transform
func LightViewMatrix(direction mgl32.Vec3) mgl32.Mat4 {
	dir := common.NormalizeOr(direction, defaultSunDirection)
	up := common.StableUp(dir, common.AxisY, common.AxisZ, lightUpThreshold)
	return mgl32.LookAtV(mgl32.Vec3{}, dir, up)
}

// SelectCascade returns the index of the cascade a fragment at the given view
// depth should sample: the first cascade whose split depth is at least viewDepth,
// or the last cascade for anything beyond.
//
// Parameters:
//   - cascades: the cascades for the current frame, nearest first
//   - viewDepth: positive distance of the fragment along the view direction
//
// Returns:
//   - int: cascade index, or -1 if cascades is empty
func SelectCascade(cascades []Cascade, viewDepth float32) int {
	for i := range cascades {
		if viewDepth <= cascades[i].SplitDepth {
			return i
		}
	}
	return len(cascades) - 1
}
