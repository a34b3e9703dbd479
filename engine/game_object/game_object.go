package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id      uint64
	enabled atomic.Bool

	localBounds common.AABB
	position    mgl32.Vec3
	rotation    mgl32.Quat
	scale       mgl32.Vec3

	// cached derived state, rebuilt when dirty
	dirty       bool
	modelMatrix mgl32.Mat4
	worldBounds common.AABB
}

// GameObject defines the interface for a cullable scene entity.
// An object carries a local-space bounding box and a position, rotation and
// scale. Its world-space bounds are derived from both and cached until either changes.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object takes part in culling and drawing.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// LocalBounds returns the object's bounding box in its own model space.
	//
	// Returns:
	//   - common.AABB: the local bounds
	LocalBounds() common.AABB

	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: the unit quaternion orientation
	Rotation() mgl32.Quat

	// Scale returns the per-axis scale factors.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// ModelMatrix returns the local-to-world transform T * R * S.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// WorldBounds returns the world-space box bounding the transformed local bounds.
	//
	// Returns:
	//   - common.AABB: the world bounds (empty if the local bounds are empty)
	WorldBounds() common.AABB

	// SetID sets the object's unique identifier. Called by the scene on Add.
	//
	// Parameters:
	//   - id: the new ID
	SetID(id uint64)

	// SetEnabled enables or disables the object.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetLocalBounds replaces the model-space bounding box.
	//
	// Parameters:
	//   - bounds: the new local bounds
	SetLocalBounds(bounds common.AABB)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the orientation. The quaternion is normalized before storing.
	//
	// Parameters:
	//   - q: the orientation
	SetRotation(q mgl32.Quat)

	// SetScale sets the per-axis scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: scale components
	SetScale(sx, sy, sz float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject at the origin with identity rotation and
// unit scale, enabled and with empty bounds, then applies the given options.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		localBounds: common.EmptyAABB(),
		rotation:    mgl32.QuatIdent(),
		scale:       mgl32.Vec3{1, 1, 1},
		dirty:       true,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) LocalBounds() common.AABB {
	return g.localBounds
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Rotation() mgl32.Quat {
	return g.rotation
}

func (g *gameObject) Scale() mgl32.Vec3 {
	return g.scale
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	g.refresh()
	return g.modelMatrix
}

func (g *gameObject) WorldBounds() common.AABB {
	g.refresh()
	return g.worldBounds
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetLocalBounds(bounds common.AABB) {
	g.localBounds = bounds
	g.dirty = true
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.position = mgl32.Vec3{x, y, z}
	g.dirty = true
}

func (g *gameObject) SetRotation(q mgl32.Quat) {
	g.rotation = normalizeRotation(q)
	g.dirty = true
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.scale = mgl32.Vec3{sx, sy, sz}
	g.dirty = true
}

// refresh rebuilds the model matrix and world bounds if the transform changed.
func (g *gameObject) refresh() {
	if !g.dirty {
		return
	}
	g.modelMatrix = common.BuildModelMatrix(g.position, g.rotation, g.scale)
	g.worldBounds = g.localBounds.Transform(g.modelMatrix)
	g.dirty = false
}

// normalizeRotation returns q normalized, or identity for a zero quaternion.
func normalizeRotation(q mgl32.Quat) mgl32.Quat {
	if q.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return q.Normalize()
}
