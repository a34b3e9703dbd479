package game_object

import (
	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject takes part in culling and drawing.
//
// Parameters:
//   - enabled: true to consider the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithLocalBounds sets the model-space bounding box of the GameObject.
//
// Parameters:
//   - bounds: the local bounds
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the local bounds
func WithLocalBounds(bounds common.AABB) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.localBounds = bounds
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - x: the X coordinate
//   - y: the Y coordinate
//   - z: the Z coordinate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl32.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation of the GameObject.
//
// Parameters:
//   - q: the orientation (normalized before storing)
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(q mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = normalizeRotation(q)
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the X scale factor
//   - sy: the Y scale factor
//   - sz: the Z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = mgl32.Vec3{sx, sy, sz}
	}
}
