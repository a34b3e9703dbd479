package light

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

func TestCascadeSplits(t *testing.T) {
	tests := []struct {
		name   string
		near   float32
		far    float32
		count  int
		lambda float32
		want   []float32
	}{
		{"uniform", 1, 10, 3, 0, []float32{1, 4, 7, 10}},
		{"logarithmic", 1, 1000, 3, 1, []float32{1, 10, 100, 1000}},
		{"single cascade", 0.5, 50, 1, 0.5, []float32{0.5, 50}},
		{"blended", 1, 100, 2, 0.5, []float32{1, 0.5*10 + 0.5*50.5, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CascadeSplits(tt.near, tt.far, tt.count, tt.lambda)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d splits, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !near(got[i], tt.want[i], 1e-3) {
					t.Errorf("split %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
			if got[0] != tt.near || got[len(got)-1] != tt.far {
				t.Errorf("endpoints = %v, %v; want exactly %v, %v", got[0], got[len(got)-1], tt.near, tt.far)
			}
		})
	}
}

func TestCascadeSplitsStrictlyIncrease(t *testing.T) {
	for _, lambda := range []float32{0, 0.25, 0.5, 0.86, 1} {
		splits := CascadeSplits(0.1, 500, 6, lambda)
		for i := 1; i < len(splits); i++ {
			if splits[i] <= splits[i-1] {
				t.Errorf("lambda %v: split %d (%v) <= split %d (%v)", lambda, i, splits[i], i-1, splits[i-1])
			}
		}
	}
}

func TestFrustumSliceCorners(t *testing.T) {
	cam := defaultCamera(camera.WithFov(math.Pi / 2))
	corners := FrustumSliceCorners(cam, 1, 4)

	// fov 90 and aspect 16/9: half height equals depth.
	aspect := cam.Intrinsics.Aspect
	want := [8]mgl32.Vec3{
		{-aspect, 1, -1}, {aspect, 1, -1}, {-aspect, -1, -1}, {aspect, -1, -1},
		{-4 * aspect, 4, -4}, {4 * aspect, 4, -4}, {-4 * aspect, -4, -4}, {4 * aspect, -4, -4},
	}
	for i := range want {
		for axis := 0; axis < 3; axis++ {
			if !near(corners[i][axis], want[i][axis], 1e-4) {
				t.Errorf("corner %d = %v, want %v", i, corners[i], want[i])
				break
			}
		}
	}
}

func TestFrustumSliceCornersLieOnFrustumPlanes(t *testing.T) {
	cam := defaultCamera()
	f := common.ExtractFrustumPlanes(cam.ProjectionMatrix())
	for _, c := range FrustumSliceCorners(cam, 2, 30) {
		for i, p := range f.Planes {
			if d := p.SignedDistance(c); d < -1e-3 {
				t.Errorf("corner %v is outside plane %d by %v", c, i, d)
			}
		}
	}
}

func TestLightViewMatrix(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
		up   mgl32.Vec3
	}{
		{"horizontal uses +Y up", mgl32.Vec3{1, 0, 0}, common.AxisY},
		{"straight down uses +Z up", mgl32.Vec3{0, -1, 0}, common.AxisZ},
		{"nearly vertical uses +Z up", mgl32.Vec3{0, -1, 0.001}, common.AxisZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := LightViewMatrix(tt.dir)
			if !common.IsFinite(view) {
				t.Fatalf("non-finite light view %v", view)
			}
			dir := tt.dir.Normalize()
			forward := view.Mul4x1(dir.Vec4(0)).Vec3()
			if !near(forward.Z(), -1, 1e-4) {
				t.Errorf("light direction maps to %v, want -Z", forward)
			}
			// The chosen up reference projects onto light-space +Y.
			up := view.Mul4x1(tt.up.Vec4(0)).Vec3()
			if up.Y() <= 0 {
				t.Errorf("up reference maps to %v, want positive Y", up)
			}
			// The origin stays at the origin.
			origin := common.TransformPoint(view, mgl32.Vec3{})
			if origin.Len() > 1e-6 {
				t.Errorf("origin maps to %v", origin)
			}
		})
	}
}

func TestSelectCascade(t *testing.T) {
	cascades := []Cascade{{SplitDepth: 5}, {SplitDepth: 20}, {SplitDepth: 100}}
	tests := []struct {
		depth float32
		want  int
	}{
		{0.1, 0}, {5, 0}, {5.01, 1}, {20, 1}, {99, 2}, {250, 2},
	}
	for _, tt := range tests {
		if got := SelectCascade(cascades, tt.depth); got != tt.want {
			t.Errorf("SelectCascade(%v) = %d, want %d", tt.depth, got, tt.want)
		}
	}
	if got := SelectCascade(nil, 1); got != -1 {
		t.Errorf("SelectCascade(nil) = %d, want -1", got)
	}
}
