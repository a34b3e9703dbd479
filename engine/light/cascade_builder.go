package light

import "github.com/Carmen-Shannon/automation/tools/worker"

// CascadeBuilderOption is a function that configures a CascadeBuilder during construction.
type CascadeBuilderOption func(*cascadeBuilderImpl)

// WithCascadeCount sets how many depth slices the camera frustum is split into.
//
// Parameters:
//   - count: the number of cascades (must be >= 1)
//
// Returns:
//   - CascadeBuilderOption: a function that applies the count option
func WithCascadeCount(count int) CascadeBuilderOption {
	return func(cb *cascadeBuilderImpl) {
		cb.count = count
	}
}

// WithSplitLambda sets the blend between logarithmic (1) and uniform (0) split placement.
//
// Parameters:
//   - lambda: the blend factor in [0, 1]
//
// Returns:
//   - CascadeBuilderOption: a function that applies the lambda option
func WithSplitLambda(lambda float32) CascadeBuilderOption {
	return func(cb *cascadeBuilderImpl) {
		cb.lambda = lambda
	}
}

// WithResolution sets the shadow map resolution the cascade bounds are snapped to.
// This should match the resolution of the depth target the cascades are rendered into.
//
// Parameters:
//   - resolution: texels per side (must be > 0)
//
// Returns:
//   - CascadeBuilderOption: a function that applies the resolution option
func WithResolution(resolution uint32) CascadeBuilderOption {
	return func(cb *cascadeBuilderImpl) {
		cb.resolution = resolution
	}
}

// WithDepthPadding sets how far each cascade's near plane is pulled toward the light.
// Negative values are ignored.
//
// Parameters:
//   - padding: distance in world units
//
// Returns:
//   - CascadeBuilderOption: a function that applies the padding option
func WithDepthPadding(padding float32) CascadeBuilderOption {
	return func(cb *cascadeBuilderImpl) {
		if padding >= 0 {
			cb.depthPadding = padding
		}
	}
}

// WithWorkerPool fits cascades concurrently on the given pool. The pool is shared,
// not owned; the builder never stops it.
//
// Parameters:
//   - pool: the worker pool to submit per-cascade tasks to
//
// Returns:
//   - CascadeBuilderOption: a function that applies the pool option
func WithWorkerPool(pool worker.DynamicWorkerPool) CascadeBuilderOption {
	return func(cb *cascadeBuilderImpl) {
		cb.pool = pool
	}
}
