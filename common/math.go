package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis vectors in the engine's right-handed world frame (+Y up, -Z forward).
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)

// Abs32 returns the absolute value of a float32.
func Abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Floor32 returns the greatest integer value less than or equal to x.
func Floor32(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// NormalizeOr returns v scaled to unit length, or fallback when v has zero length.
// mgl32's Normalize divides by the length unconditionally and yields NaNs for a zero vector.
//
// Parameters:
//   - v: the vector to normalize
//   - fallback: the vector returned when v has zero length
//
// Returns:
//   - mgl32.Vec3: the normalized vector or fallback
func NormalizeOr(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return v.Mul(1 / l)
}

// StableUp picks an up reference for building a look-at basis along dir.
// The preferred vector is returned unless dir is within the given cosine threshold
// of being parallel to it, in which case fallback is returned.
//
// Parameters:
//   - dir: the normalized look direction
//   - preferred: the up reference normally used (typically +Y)
//   - fallback: the up reference used when dir is nearly parallel to preferred
//   - threshold: |dot(dir, preferred)| above which fallback is chosen
//
// Returns:
//   - mgl32.Vec3: the chosen up reference
func StableUp(dir, preferred, fallback mgl32.Vec3, threshold float32) mgl32.Vec3 {
	if Abs32(dir.Dot(preferred)) > threshold {
		return fallback
	}
	return preferred
}

// TransformPoint applies a 4x4 affine transform to a point (w = 1) and returns
// the resulting xyz. The w component is not divided out.
//
// Parameters:
//   - m: the column-major transform
//   - p: the point to transform
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// BuildModelMatrix constructs a 4x4 model matrix from position, rotation, and scale.
// The composition order is T * R * S. All matrices are column-major.
//
// Parameters:
//   - position: translation in world space
//   - rotation: unit quaternion orientation
//   - scale: scale factors along each local axis
//
// Returns:
//   - mgl32.Mat4: the model matrix
func BuildModelMatrix(position mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	out := rotation.Mat4()

	out[0] *= scale[0]
	out[1] *= scale[0]
	out[2] *= scale[0]

	out[4] *= scale[1]
	out[5] *= scale[1]
	out[6] *= scale[1]

	out[8] *= scale[2]
	out[9] *= scale[2]
	out[10] *= scale[2]

	out[12] = position[0]
	out[13] = position[1]
	out[14] = position[2]
	out[15] = 1
	return out
}

// IsFinite reports whether every entry of m is neither NaN nor infinite.
//
// Parameters:
//   - m: the matrix to check
//
// Returns:
//   - bool: true if all 16 entries are finite
func IsFinite(m mgl32.Mat4) bool {
	for _, v := range m {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
