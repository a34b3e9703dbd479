package scene

import (
	"github.com/Carmen-Shannon/oxy-csm/engine/game_object"
	"github.com/Carmen-Shannon/oxy-csm/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.add(obj)
		}
	}
}

// WithSun sets the scene's directional light.
//
// Parameters:
//   - sun: the sun light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSun(sun light.SunLight) SceneBuilderOption {
	return func(s *scene) {
		s.sun = sun
	}
}

// WithComputeWorkers sets the number of worker goroutines used to fit shadow
// cascades in parallel. Defaults to runtime.NumCPU()-1. A value of 1 fits
// cascades inline on the calling goroutine.
//
// Parameters:
//   - n: the number of compute workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.computeWorkers = n
	}
}

// WithCullingDisabled disables frustum culling for the scene. When set to true,
// every enabled object is reported visible.
// By default culling is enabled (disabled = false).
//
// Parameters:
//   - disabled: true to disable frustum culling, false to enable it (default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithCascadeCount sets the number of shadow cascades fitted per frame.
// Default is light.DefaultCascadeCount (3).
//
// Parameters:
//   - count: the number of cascades (must be >= 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCascadeCount(count int) SceneBuilderOption {
	return func(s *scene) {
		s.cascadeOptions = append(s.cascadeOptions, light.WithCascadeCount(count))
	}
}

// WithCascadeSplitLambda sets the logarithmic/uniform blend of cascade split depths.
// Default is light.DefaultCascadeSplitLambda (0.5).
//
// Parameters:
//   - lambda: blend factor in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCascadeSplitLambda(lambda float32) SceneBuilderOption {
	return func(s *scene) {
		s.cascadeOptions = append(s.cascadeOptions, light.WithSplitLambda(lambda))
	}
}

// WithCascadeDepthPadding sets how far each cascade's near plane is pulled toward
// the sun to catch occluders outside the view. Default is
// light.DefaultCascadeDepthPadding (20).
//
// Parameters:
//   - padding: distance in world units
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCascadeDepthPadding(padding float32) SceneBuilderOption {
	return func(s *scene) {
		s.cascadeOptions = append(s.cascadeOptions, light.WithDepthPadding(padding))
	}
}

// WithShadowBias sets the depth comparison bias used during shadow sampling to
// reduce shadow acne. Default is light.DefaultShadowBias (0.001).
//
// Parameters:
//   - bias: the depth bias value
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShadowBias(bias float32) SceneBuilderOption {
	return func(s *scene) {
		s.shadowBias = bias
	}
}

// WithShadowNormalBiasScale sets the multiplier applied to the shadow-map
// texel world-size to derive the normal-offset bias. Default is
// light.DefaultShadowNormalBiasScale (3.0).
//
// Parameters:
//   - scale: multiplier on per-texel world size (typically 2.0 to 4.0)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShadowNormalBiasScale(scale float32) SceneBuilderOption {
	return func(s *scene) {
		s.shadowNormalBias = scale
	}
}

// WithShadowMapResolution sets the width and height in texels of each cascade's
// depth layer. Cascade bounds are snapped to this texel grid, so it must match the
// texture the shadow pass renders into. Default is light.ShadowMapResolution (1024).
//
// Parameters:
//   - resolution: shadow map width and height in texels (e.g. 1024, 2048, 4096)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithShadowMapResolution(resolution uint32) SceneBuilderOption {
	return func(s *scene) {
		s.shadowMapResolution = resolution
	}
}
