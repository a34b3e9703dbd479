// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types and the math shared between packages.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box in world space.
// A non-empty box satisfies Min <= Max componentwise. The empty box is
// Min = +Inf, Max = -Inf so that extending it by any point yields that point.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyAABB returns a box containing no points.
//
// Returns:
//   - AABB: the empty box
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// NewAABB returns the box spanning two corner points. The corners may be given in any order.
//
// Parameters:
//   - a, b: opposite corners of the box
//
// Returns:
//   - AABB: the box spanning a and b
func NewAABB(a, b mgl32.Vec3) AABB {
	return EmptyAABB().Extend(a).Extend(b)
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend returns the smallest box containing both b and p.
//
// Parameters:
//   - p: the point to include
//
// Returns:
//   - AABB: the grown box
func (b AABB) Extend(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box containing both b and other.
// The union with an empty box is the other box.
//
// Parameters:
//   - other: the box to merge
//
// Returns:
//   - AABB: the merged box
func (b AABB) Union(other AABB) AABB {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], other.Min[i])
		b.Max[i] = max(b.Max[i], other.Max[i])
	}
	return b
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extents returns the half-size of the box along each axis.
func (b AABB) Extents() mgl32.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Corners returns the 8 corner points of the box. Bit 0 of the index selects
// Max.X, bit 1 Max.Y and bit 2 Max.Z.
func (b AABB) Corners() [8]mgl32.Vec3 {
	var out [8]mgl32.Vec3
	for i := range out {
		out[i] = mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			out[i][0] = b.Max[0]
		}
		if i&2 != 0 {
			out[i][1] = b.Max[1]
		}
		if i&4 != 0 {
			out[i][2] = b.Max[2]
		}
	}
	return out
}

// Transform returns the axis-aligned box bounding the 8 corners of b after
// applying m. An empty box stays empty.
//
// Parameters:
//   - m: the affine transform to apply
//
// Returns:
//   - AABB: the re-fitted box in the transformed space
func (b AABB) Transform(m mgl32.Mat4) AABB {
	if b.IsEmpty() {
		return b
	}
	out := EmptyAABB()
	for _, c := range b.Corners() {
		out = out.Extend(TransformPoint(m, c))
	}
	return out
}

// AABBFromPoints bounds a set of local-space points after transforming them by model.
// Returns the empty box when points is empty.
//
// Parameters:
//   - points: local-space vertex positions
//   - model: the local-to-world transform
//
// Returns:
//   - AABB: the world-space bounds
func AABBFromPoints(points []mgl32.Vec3, model mgl32.Mat4) AABB {
	out := EmptyAABB()
	for _, p := range points {
		out = out.Extend(TransformPoint(model, p))
	}
	return out
}
