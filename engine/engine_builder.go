package engine

import (
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/Carmen-Shannon/oxy-csm/engine/profiler"
	"github.com/Carmen-Shannon/oxy-csm/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, e.g. to change its update interval.
//
// Parameters:
//   - p: the profiler to feed frame statistics to
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The default camera controller scales key movement to the same rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = tickInterval(fps)
	}
}

// WithWindow attaches a window. Its input is routed to the engine's input queue
// and its size drives the scene camera's aspect ratio. Without a window the
// engine runs headless.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithController replaces the default fly camera controller.
//
// Parameters:
//   - cc: the controller input events are applied with
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithController(cc camera.CameraController) EngineBuilderOption {
	return func(e *engine) {
		e.controller = cc
	}
}
