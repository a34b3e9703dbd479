package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func assertVec3Near(t *testing.T, name string, got, want mgl32.Vec3, eps float32) {
	t.Helper()
	for i := range got {
		if !near(got[i], want[i], eps) {
			t.Errorf("%s = %v, want %v (eps %g)", name, got, want, eps)
			return
		}
	}
}

func assertNear(t *testing.T, name string, got, want, eps float32) {
	t.Helper()
	if !near(got, want, eps) {
		t.Errorf("%s = %v, want %v (eps %g)", name, got, want, eps)
	}
}

func assertMat4Near(t *testing.T, name string, got, want mgl32.Mat4, eps float32) {
	t.Helper()
	for i := range got {
		if !near(got[i], want[i], eps) {
			t.Errorf("%s = %v, want %v (eps %g)", name, got, want, eps)
			return
		}
	}
}

func assertIdentityRotation(t *testing.T, q mgl32.Quat) {
	t.Helper()
	if !near(q.W, 1, epsilon) || !near(q.V.Len(), 0, epsilon) {
		t.Errorf("orientation = %v, want identity", q)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Position != (mgl32.Vec3{}) {
		t.Errorf("position = %v, want origin", c.Position)
	}
	if c.Orientation != mgl32.QuatIdent() {
		t.Errorf("orientation = %v, want identity", c.Orientation)
	}
	if c.Intrinsics.Near != DefaultNear || c.Intrinsics.Far != DefaultFar {
		t.Errorf("near/far = %v/%v, want %v/%v", c.Intrinsics.Near, c.Intrinsics.Far, DefaultNear, DefaultFar)
	}
}

func TestTranslateIdentityOrientation(t *testing.T) {
	c := NewCamera()
	c.Translate(mgl32.Vec3{1, 2, 3})
	assertVec3Near(t, "position", c.Position, mgl32.Vec3{1, 2, 3}, epsilon)
}

func TestTranslateWithRotation(t *testing.T) {
	c := NewCamera(WithOrientation(mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})))
	c.Translate(mgl32.Vec3{1, 0, 0})
	assertVec3Near(t, "position", c.Position, mgl32.Vec3{0, 0, -1}, epsilon)
}

func TestTranslateAccumulates(t *testing.T) {
	c := NewCamera()
	c.Translate(mgl32.Vec3{1, 0, 0})
	c.Translate(mgl32.Vec3{0, 2, 0})
	assertVec3Near(t, "position", c.Position, mgl32.Vec3{1, 2, 0}, epsilon)
}

func TestPan(t *testing.T) {
	t.Run("zero is a no-op", func(t *testing.T) {
		c := NewCamera()
		c.Pan(0)
		assertIdentityRotation(t, c.Orientation)
	})

	t.Run("full turn returns to identity", func(t *testing.T) {
		c := NewCamera()
		c.Pan(2 * math.Pi)
		dot := c.Orientation.Dot(mgl32.QuatIdent())
		assertNear(t, "|dot|", float32(math.Abs(float64(dot))), 1, 1e-4)
	})

	t.Run("half turn flips forward", func(t *testing.T) {
		c := NewCamera()
		c.Pan(math.Pi)
		assertVec3Near(t, "forward", c.Forward(), mgl32.Vec3{0, 0, 1}, epsilon)
	})

	t.Run("rotates around world up after tilt", func(t *testing.T) {
		c := NewCamera()
		c.Tilt(math.Pi / 4)
		before := c.Forward()
		c.Pan(math.Pi / 2)
		after := c.Forward()
		assertNear(t, "forward.y", after.Y(), before.Y(), 1e-4)
	})
}

func TestTilt(t *testing.T) {
	t.Run("zero is a no-op", func(t *testing.T) {
		c := NewCamera()
		c.Tilt(0)
		assertIdentityRotation(t, c.Orientation)
	})

	t.Run("positive quarter turn looks up", func(t *testing.T) {
		c := NewCamera()
		c.Tilt(math.Pi / 2)
		assertVec3Near(t, "forward", c.Forward(), mgl32.Vec3{0, 1, 0}, epsilon)
	})

	t.Run("tilt keeps right vector", func(t *testing.T) {
		c := NewCamera()
		c.Pan(0.7)
		right := c.Right()
		c.Tilt(0.3)
		assertVec3Near(t, "right", c.Right(), right, 1e-4)
	})
}

func TestRoll(t *testing.T) {
	t.Run("zero is a no-op", func(t *testing.T) {
		c := NewCamera()
		c.Roll(0)
		assertIdentityRotation(t, c.Orientation)
	})

	t.Run("preserves forward", func(t *testing.T) {
		c := NewCamera()
		c.Pan(0.4)
		c.Tilt(-0.2)
		forward := c.Forward()
		c.Roll(math.Pi / 4)
		assertVec3Near(t, "forward", c.Forward(), forward, 1e-4)
	})

	t.Run("quarter turn moves up to -X", func(t *testing.T) {
		c := NewCamera()
		c.Roll(math.Pi / 2)
		assertVec3Near(t, "up", c.Up(), mgl32.Vec3{-1, 0, 0}, epsilon)
	})
}

func TestOrientationStaysNormalized(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 1000; i++ {
		c.Pan(0.013)
		c.Tilt(0.007)
		c.Roll(-0.011)
	}
	assertNear(t, "|q|", c.Orientation.Len(), 1, 1e-5)
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name    string
		pos     mgl32.Vec3
		target  mgl32.Vec3
		forward mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, -1}},
		{"right", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"behind", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 9}, mgl32.Vec3{0, 0, 1}},
		{"straight up", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 1, 0}},
		{"straight down", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}},
		{"target equals position", mgl32.Vec3{2, 2, 2}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera()
			c.Position = tt.pos
			c.LookAt(tt.target)

			assertNear(t, "|q|", c.Orientation.Len(), 1, 1e-5)
			assertVec3Near(t, "forward", c.Forward(), tt.forward, 1e-4)

			// The derived basis must stay orthonormal.
			assertNear(t, "right.up", c.Right().Dot(c.Up()), 0, 1e-4)
			assertNear(t, "right.forward", c.Right().Dot(c.Forward()), 0, 1e-4)
			assertNear(t, "up.forward", c.Up().Dot(c.Forward()), 0, 1e-4)
		})
	}
}

func TestLookAtKeepsWorldUp(t *testing.T) {
	c := NewCamera(WithPosition(0, 2, 10), WithLookAt(5, 0, 0))
	if c.Up().Y() <= 0 {
		t.Errorf("up = %v, expected a positive Y component", c.Up())
	}
	assertNear(t, "right.y", c.Right().Y(), 0, 1e-5)
}

func TestViewMatrix(t *testing.T) {
	t.Run("identity pose", func(t *testing.T) {
		c := NewCamera()
		assertMat4Near(t, "view", c.ViewMatrix(), mgl32.Ident4(), epsilon)
	})

	t.Run("translation", func(t *testing.T) {
		c := NewCamera()
		c.Translate(mgl32.Vec3{3, 0, 0})
		view := c.ViewMatrix()
		assertNear(t, "view[0][3]", view.At(0, 3), -3, epsilon)
		assertNear(t, "view[1][3]", view.At(1, 3), 0, epsilon)
		assertNear(t, "view[2][3]", view.At(2, 3), 0, epsilon)
	})

	t.Run("inverse of world transform", func(t *testing.T) {
		c := NewCamera(WithPosition(4, -2, 7))
		c.Pan(0.8)
		c.Tilt(-0.3)
		c.Roll(0.25)

		product := c.ViewMatrix().Mul4(c.WorldTransform())
		assertMat4Near(t, "view * world", product, mgl32.Ident4(), 1e-4)

		origin := c.ViewMatrix().Mul4x1(c.Position.Vec4(1)).Vec3()
		assertVec3Near(t, "view * position", origin, mgl32.Vec3{}, 1e-4)
	})

	t.Run("forward maps to -Z", func(t *testing.T) {
		c := NewCamera(WithPosition(1, 2, 3), WithLookAt(-4, 0, 8))
		p := c.Position.Add(c.Forward().Mul(5))
		v := c.ViewMatrix().Mul4x1(p.Vec4(1)).Vec3()
		assertVec3Near(t, "view-space point", v, mgl32.Vec3{0, 0, -5}, 1e-4)
	})
}

func TestProjectionMatrix(t *testing.T) {
	fov := float32(math.Pi / 3)
	aspect := float32(16.0 / 9.0)
	zNear, zFar := float32(0.5), float32(250)
	c := NewCamera(WithFov(fov), WithAspect(aspect), WithNear(zNear), WithFar(zFar))
	p := c.ProjectionMatrix()

	f := float32(1 / math.Tan(float64(fov)/2))
	assertNear(t, "p[1][1]", p.At(1, 1), f, 1e-5)
	assertNear(t, "p[0][0]", p.At(0, 0), f/aspect, 1e-5)
	assertNear(t, "p[2][2]", p.At(2, 2), -(zFar+zNear)/(zFar-zNear), 1e-5)
	assertNear(t, "p[2][3]", p.At(2, 3), -2*zFar*zNear/(zFar-zNear), 1e-5)
	assertNear(t, "p[3][2]", p.At(3, 2), -1, 0)
	assertNear(t, "p[3][3]", p.At(3, 3), 0, 0)

	// Points on the near and far planes land on clip depth -1 and +1.
	nearClip := p.Mul4x1(mgl32.Vec4{0, 0, -zNear, 1})
	farClip := p.Mul4x1(mgl32.Vec4{0, 0, -zFar, 1})
	assertNear(t, "near ndc z", nearClip.Z()/nearClip.W(), -1, 1e-4)
	assertNear(t, "far ndc z", farClip.Z()/farClip.W(), 1, 1e-4)
}

func TestInverseProjectionMatrix(t *testing.T) {
	c := NewCamera(WithAspect(1.5), WithNear(0.3), WithFar(400))
	product := c.ProjectionMatrix().Mul4(c.InverseProjectionMatrix())
	assertMat4Near(t, "P * P^-1", product, mgl32.Ident4(), 1e-4)
}

func TestViewProjectionMatrix(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3), WithAspect(2))
	c.Pan(0.5)
	want := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	assertMat4Near(t, "view-projection", c.ViewProjectionMatrix(), want, epsilon)
}

func TestGPUCameraUniform(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 3), WithFar(250))
	g := NewGPUCameraUniform(c)
	if g.Size() != 144 {
		t.Fatalf("GPUCameraUniform size = %d, want 144", g.Size())
	}
	if mgl32.Mat4(g.View) != c.ViewMatrix() {
		t.Errorf("view = %v, want %v", g.View, c.ViewMatrix())
	}

	buf := g.Marshal()
	if len(buf) != 144 {
		t.Fatalf("marshalled %d bytes, want 144", len(buf))
	}
	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if got := readF32(0); got != g.ViewProj[0] {
		t.Errorf("view_proj[0] = %v, want %v", got, g.ViewProj[0])
	}
	assertVec3Near(t, "position", mgl32.Vec3{readF32(128), readF32(132), readF32(136)}, mgl32.Vec3{1, 2, 3}, 0)
	assertNear(t, "far", readF32(140), 250, 0)

	if !strings.Contains(GPUCameraUniformSource, "struct CameraUniform") {
		t.Error("embedded WGSL is missing the CameraUniform struct")
	}
}
