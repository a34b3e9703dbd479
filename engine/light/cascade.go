package light

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Cascade is one depth slice of a cascaded shadow map.
//
// The bounds are expressed in the sun's light space: Left/Right/Bottom/Top are the
// orthographic XY extents and Near/Far the orthographic depth range.
// ViewProjectionMatrix is ortho * lightView and is what the shadow pass renders with.
type Cascade struct {
	// SplitDepth is the view-space depth at which this cascade ends.
	SplitDepth float32
	Near       float32
	Far        float32
	Left       float32
	Right      float32
	Bottom     float32
	Top        float32

	ViewProjectionMatrix mgl32.Mat4
}

// CascadeBuilder fits orthographic shadow frusta around slices of the camera frustum.
//
// Each frame the camera's depth range is split into Count slices, every slice is
// bounded in the sun's light space, and the bounds are snapped to the shadow map
// texel grid so shadows do not shimmer as the camera moves.
type CascadeBuilder interface {
	// ComputeCascades fits Count cascades for the given sun and camera.
	//
	// Parameters:
	//   - sun: the directional light; only its direction is read
	//   - cam: the viewing camera (near < far and a non-zero fov are required)
	//
	// Returns:
	//   - []Cascade: Count cascades ordered nearest first
	ComputeCascades(sun SunLight, cam camera.Camera) []Cascade

	// Count returns the number of cascades produced per frame.
	//
	// Returns:
	//   - int: the cascade count
	Count() int

	// Lambda returns the logarithmic/uniform split blend factor.
	//
	// Returns:
	//   - float32: lambda in [0, 1]
	Lambda() float32

	// Resolution returns the shadow map resolution used for texel snapping.
	//
	// Returns:
	//   - uint32: texels per side
	Resolution() uint32

	// DepthPadding returns how far each cascade's near plane is pulled toward the light.
	//
	// Returns:
	//   - float32: padding in world units
	DepthPadding() float32
}

// cascadeBuilderImpl is the implementation of the CascadeBuilder interface.
type cascadeBuilderImpl struct {
	count        int
	lambda       float32
	resolution   uint32
	depthPadding float32

	// pool fits cascades in parallel when non-nil. Each task writes only its own
	// slot of the output slice.
	pool worker.DynamicWorkerPool
}

var _ CascadeBuilder = &cascadeBuilderImpl{}

// NewCascadeBuilder creates a CascadeBuilder with the default cascade count, split
// lambda, resolution and depth padding, then applies the given options. It panics
// if the resulting configuration is invalid.
//
// Parameters:
//   - options: functional options to configure the builder
//
// Returns:
//   - CascadeBuilder: the configured builder
func NewCascadeBuilder(options ...CascadeBuilderOption) CascadeBuilder {
	cb := &cascadeBuilderImpl{
		count:        DefaultCascadeCount,
		lambda:       DefaultCascadeSplitLambda,
		resolution:   ShadowMapResolution,
		depthPadding: DefaultCascadeDepthPadding,
	}

	for _, option := range options {
		option(cb)
	}

	if cb.count < 1 {
		panic("light: NewCascadeBuilder requires at least one cascade")
	}
	if cb.resolution == 0 {
		panic("light: NewCascadeBuilder requires a non-zero shadow map resolution")
	}
	if cb.lambda < 0 || cb.lambda > 1 {
		panic("light: NewCascadeBuilder requires a split lambda in [0, 1]")
	}

	return cb
}

// ComputeCascades fits DefaultCascadeCount cascades with the default split lambda
// and depth padding, snapping to a shadow map of the given resolution.
//
// Parameters:
//   - sun: the directional light
//   - cam: the viewing camera
//   - resolution: the shadow map resolution used for texel snapping (must be > 0)
//
// Returns:
//   - []Cascade: the fitted cascades ordered nearest first
func ComputeCascades(sun SunLight, cam camera.Camera, resolution uint32) []Cascade {
	return NewCascadeBuilder(WithResolution(resolution)).ComputeCascades(sun, cam)
}

func (cb *cascadeBuilderImpl) ComputeCascades(sun SunLight, cam camera.Camera) []Cascade {
	splits := CascadeSplits(cam.Intrinsics.Near, cam.Intrinsics.Far, cb.count, cb.lambda)
	f := cascadeFit{
		cam:          cam,
		viewToWorld:  cam.WorldTransform(),
		lightView:    LightViewMatrix(sun.Direction),
		resolution:   float32(cb.resolution),
		depthPadding: cb.depthPadding,
	}

	cascades := make([]Cascade, cb.count)
	if cb.pool == nil || cb.count == 1 {
		for i := range cascades {
			cascades[i] = f.fit(splits[i], splits[i+1])
		}
		return cascades
	}

	var wg sync.WaitGroup
	for i := range cascades {
		wg.Add(1)
		idx := i
		cb.pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				cascades[idx] = f.fit(splits[idx], splits[idx+1])
				return nil, nil
			},
		})
	}
	wg.Wait()
	return cascades
}

func (cb *cascadeBuilderImpl) Count() int {
	return cb.count
}

func (cb *cascadeBuilderImpl) Lambda() float32 {
	return cb.lambda
}

func (cb *cascadeBuilderImpl) Resolution() uint32 {
	return cb.resolution
}

func (cb *cascadeBuilderImpl) DepthPadding() float32 {
	return cb.depthPadding
}

// cascadeFit holds the per-frame state shared by every cascade. It is read-only
// once built, so fit may run concurrently.
type cascadeFit struct {
	cam          camera.Camera
	viewToWorld  mgl32.Mat4
	lightView    mgl32.Mat4
	resolution   float32
	depthPadding float32
}

// fit bounds the camera frustum slice [nearDepth, farDepth] in light space and
// builds its orthographic shadow projection.
func (f cascadeFit) fit(nearDepth, farDepth float32) Cascade {
	viewToLight := f.lightView.Mul4(f.viewToWorld)

	bounds := common.EmptyAABB()
	for _, corner := range FrustumSliceCorners(f.cam, nearDepth, farDepth) {
		bounds = bounds.Extend(common.TransformPoint(viewToLight, corner))
	}

	minX, maxX := snapToTexel(bounds.Min[0], bounds.Max[0], f.resolution)
	minY, maxY := snapToTexel(bounds.Min[1], bounds.Max[1], f.resolution)

	// The light looks down -Z, so larger Z is closer to the sun.
	near := -bounds.Max[2] - f.depthPadding
	far := -bounds.Min[2]

	ortho := mgl32.Ortho(minX, maxX, minY, maxY, near, far)
	return Cascade{
		SplitDepth:           farDepth,
		Near:                 near,
		Far:                  far,
		Left:                 minX,
		Right:                maxX,
		Bottom:               minY,
		Top:                  maxY,
		ViewProjectionMatrix: ortho.Mul4(f.lightView),
	}
}

// snapToTexel moves the interval [lo, hi] so its center sits on a multiple of the
// interval's texel size. The width is preserved; only the position is quantized.
func snapToTexel(lo, hi, resolution float32) (float32, float32) {
	center := (lo + hi) / 2
	extent := (hi - lo) / 2
	texel := 2 * extent / resolution
	if texel <= 0 || math.IsInf(float64(texel), 0) {
		return lo, hi
	}
	center = common.Floor32(center/texel) * texel
	return center - extent, center + extent
}
