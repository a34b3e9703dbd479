package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/go-gl/mathgl/mgl32"
)

// lookAtParallelThreshold is the |dot(forward, +Y)| above which LookAt stops using
// world up as its reference and falls back to +X.
const lookAtParallelThreshold = 0.999

// Intrinsics holds the perspective projection parameters of a Camera.
// Callers must keep 0 < Near < Far and FovY, Aspect > 0; nothing here validates them.
type Intrinsics struct {
	// FovY is the vertical field of view in radians.
	FovY float32
	// Aspect is the viewport width divided by its height.
	Aspect float32
	// Near is the distance to the near clipping plane.
	Near float32
	// Far is the distance to the far clipping plane.
	Far float32
}

// Camera is a perspective camera with a position, an orientation and projection intrinsics.
//
// Orientation maps local camera axes into world space. Locally +X is right, +Y is
// up and -Z is forward. Orientation is the only stored rotation; every rotation
// matrix is derived from it on demand, and every mutating method renormalizes it.
//
// Rotation composition is fixed for all operations: Pan rotates in the world frame
// (left-multiplied), Tilt and Roll rotate in the camera's own frame (right-multiplied).
//
// Camera is a plain value. It holds no locks; the input step owns it while
// mutating and the render step only reads it afterwards.
type Camera struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Intrinsics  Intrinsics
}

// Translate moves the camera by delta expressed in the camera's local frame
// (x = right, y = up, z = backward).
//
// Parameters:
//   - delta: local-frame displacement
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.Position = c.Position.Add(c.Orientation.Rotate(delta))
}

// Pan yaws the camera around the world +Y axis.
//
// Parameters:
//   - angle: rotation in radians, counter-clockwise seen from above
func (c *Camera) Pan(angle float32) {
	c.Orientation = mgl32.QuatRotate(angle, common.AxisY).Mul(c.Orientation).Normalize()
}

// Tilt pitches the camera around its local +X (right) axis. Positive angles look up.
//
// Parameters:
//   - angle: rotation in radians
func (c *Camera) Tilt(angle float32) {
	c.Orientation = c.Orientation.Mul(mgl32.QuatRotate(angle, common.AxisX)).Normalize()
}

// Roll rotates the camera around its local +Z (backward) axis. A positive quarter
// turn moves the camera's up vector onto its former -X (left) direction.
// The forward vector is unchanged.
//
// Parameters:
//   - angle: rotation in radians
func (c *Camera) Roll(angle float32) {
	c.Orientation = c.Orientation.Mul(mgl32.QuatRotate(angle, common.AxisZ)).Normalize()
}

// LookAt orients the camera so that its forward axis points at target, keeping world +Y
// as the up reference. When the view direction is within ~2.5 degrees of vertical,
// +X is used as the reference instead. When target equals the camera position the
// forward direction falls back to -Z.
//
// Parameters:
//   - target: world-space point to face
func (c *Camera) LookAt(target mgl32.Vec3) {
	forward := common.NormalizeOr(target.Sub(c.Position), mgl32.Vec3{0, 0, -1})

	var right mgl32.Vec3
	if common.Abs32(forward.Dot(common.AxisY)) > lookAtParallelThreshold {
		right = forward.Cross(common.AxisX).Normalize()
	} else {
		right = forward.Cross(common.AxisY).Normalize()
	}
	up := right.Cross(forward).Normalize()
	back := forward.Mul(-1)

	rotation := mgl32.Mat4{
		right[0], right[1], right[2], 0,
		up[0], up[1], up[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	c.Orientation = mgl32.Mat4ToQuat(rotation).Normalize()
}

// Forward returns the world-space direction the camera looks along.
func (c Camera) Forward() mgl32.Vec3 {
	return c.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up returns the camera's world-space up vector.
func (c Camera) Up() mgl32.Vec3 {
	return c.Orientation.Rotate(common.AxisY)
}

// Right returns the camera's world-space right vector.
func (c Camera) Right() mgl32.Vec3 {
	return c.Orientation.Rotate(common.AxisX)
}

// WorldTransform returns the camera-to-world matrix [R | position].
//
// Returns:
//   - mgl32.Mat4: the camera's world transform
func (c Camera) WorldTransform() mgl32.Mat4 {
	m := c.Orientation.Mat4()
	m[12], m[13], m[14] = c.Position[0], c.Position[1], c.Position[2]
	return m
}

// ViewMatrix returns the world-to-camera matrix [Rᵗ | -Rᵗ·position], the exact
// inverse of WorldTransform.
//
// Returns:
//   - mgl32.Mat4: the view matrix (column-major)
func (c Camera) ViewMatrix() mgl32.Mat4 {
	m := c.Orientation.Mat4().Transpose()
	t := m.Mul4x1(c.Position.Vec4(0))
	m[12], m[13], m[14] = -t[0], -t[1], -t[2]
	return m
}

// ProjectionMatrix returns a right-handed perspective projection with OpenGL clip
// depth in [-1, 1].
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func (c Camera) ProjectionMatrix() mgl32.Mat4 {
	in := c.Intrinsics
	return mgl32.Perspective(in.FovY, in.Aspect, in.Near, in.Far)
}

// ViewProjectionMatrix returns ProjectionMatrix() * ViewMatrix().
//
// Returns:
//   - mgl32.Mat4: the combined view-projection matrix
func (c Camera) ViewProjectionMatrix() mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// InverseProjectionMatrix returns the inverse of the projection matrix. Used by the
// tiled light culling pass to reconstruct per-tile view-space frustum planes from
// screen coordinates. Computed in closed form from the intrinsics.
//
// Returns:
//   - mgl32.Mat4: the inverse projection matrix
func (c Camera) InverseProjectionMatrix() mgl32.Mat4 {
	p := c.ProjectionMatrix()
	var inv mgl32.Mat4
	inv[0] = 1 / p[0]
	inv[5] = 1 / p[5]
	inv[11] = 1 / p[14]
	inv[14] = -1
	inv[15] = p[10] / p[14]
	return inv
}

// TanHalfFov returns tan(FovY / 2).
func (c Camera) TanHalfFov() float32 {
	return float32(math.Tan(float64(c.Intrinsics.FovY) * 0.5))
}
