package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the signed distance from p to the plane.
// Positive values lie on the side the normal points to.
//
// Parameters:
//   - point: the point to measure
//
// Returns:
//   - float32: the signed distance (exact only for normalized planes)
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Vec4 returns the plane as (a, b, c, d).
func (p Plane) Vec4() mgl32.Vec4 {
	return p.Normal.Vec4(p.Distance)
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumPlanes extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix.
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumPlanes(viewProj mgl32.Mat4) Frustum {
	var f Frustum

	r0 := viewProj.Row(0)
	r1 := viewProj.Row(1)
	r2 := viewProj.Row(2)
	r3 := viewProj.Row(3)

	f.Planes[FrustumLeft] = planeFromVec4(r3.Add(r0))
	f.Planes[FrustumRight] = planeFromVec4(r3.Sub(r0))
	f.Planes[FrustumBottom] = planeFromVec4(r3.Add(r1))
	f.Planes[FrustumTop] = planeFromVec4(r3.Sub(r1))
	f.Planes[FrustumNear] = planeFromVec4(r3.Add(r2))
	f.Planes[FrustumFar] = planeFromVec4(r3.Sub(r2))

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// IsAABBInFrustum reports whether box should be drawn.
// For each plane the corner most aligned with the plane normal (the positive vertex)
// is tested; if it lies behind any plane the box is fully outside. The test is
// conservative: boxes straddling several planes near a frustum corner may pass.
// Empty boxes are never inside.
//
// Parameters:
//   - box: the world-space bounds to test
//   - f: the frustum planes
//
// Returns:
//   - bool: false only if the box is definitely outside the frustum
func IsAABBInFrustum(box AABB, f Frustum) bool {
	if box.IsEmpty() {
		return false
	}
	for i := range f.Planes {
		p := &f.Planes[i]
		var v mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if p.Normal[axis] > 0 {
				v[axis] = box.Max[axis]
			} else {
				v[axis] = box.Min[axis]
			}
		}
		if p.SignedDistance(v) < 0 {
			return false
		}
	}
	return true
}

// IsSphereInFrustum reports whether a bounding sphere is at least partially inside the frustum.
//
// Parameters:
//   - center: world-space sphere center
//   - radius: sphere radius
//   - f: the frustum planes
//
// Returns:
//   - bool: false only if the sphere is fully behind some plane
func IsSphereInFrustum(center mgl32.Vec3, radius float32, f Frustum) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}

func planeFromVec4(v mgl32.Vec4) Plane {
	return Plane{Normal: v.Vec3(), Distance: v[3]}
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := p.Normal.Len()

	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
}
