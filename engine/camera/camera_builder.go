package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default intrinsics applied by NewCamera before any options.
const (
	DefaultFov    float32 = 45.0 * (math.Pi / 180.0) // radians
	DefaultAspect float32 = 1.0
	DefaultNear   float32 = 0.1
	DefaultFar    float32 = 100.0
)

// CameraBuilderOption configures a Camera during NewCamera. Options run in order.
type CameraBuilderOption func(*Camera)

// NewCamera creates a Camera at the origin with identity orientation and default
// perspective settings, then applies the provided options in order.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the configured camera value
func NewCamera(options ...CameraBuilderOption) Camera {
	c := Camera{
		Position:    mgl32.Vec3{0, 0, 0},
		Orientation: mgl32.QuatIdent(),
		Intrinsics: Intrinsics{
			FovY:   DefaultFov,
			Aspect: DefaultAspect,
			Near:   DefaultNear,
			Far:    DefaultFar,
		},
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithPosition sets the camera's world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's position
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Position = mgl32.Vec3{x, y, z}
	}
}

// WithOrientation sets the camera's orientation. The quaternion is normalized before storing.
//
// Parameters:
//   - q: local-to-world rotation
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's orientation
func WithOrientation(q mgl32.Quat) CameraBuilderOption {
	return func(c *Camera) {
		c.Orientation = q.Normalize()
	}
}

// WithLookAt orients the camera toward a world-space target. Place it after
// WithPosition so the direction is computed from the final position.
//
// Parameters:
//   - x, y, z: target components
//
// Returns:
//   - CameraBuilderOption: a function that aims the camera
func WithLookAt(x, y, z float32) CameraBuilderOption {
	return func(c *Camera) {
		c.LookAt(mgl32.Vec3{x, y, z})
	}
}

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Intrinsics.FovY = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Intrinsics.Aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Intrinsics.Near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *Camera) {
		c.Intrinsics.Far = far
	}
}
