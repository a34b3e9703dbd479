package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/Carmen-Shannon/oxy-csm/engine/input"
	"github.com/Carmen-Shannon/oxy-csm/engine/profiler"
	"github.com/Carmen-Shannon/oxy-csm/engine/scene"
	"github.com/Carmen-Shannon/oxy-csm/engine/window"
)

// Engine drives the per-frame loop: drain input into the camera controller, build
// the scene's FrameData and hand it to the frame callback.
// All work happens on the goroutine calling Tick or Run.
type Engine interface {
	// Window returns the engine's window, or nil when running headless.
	Window() window.Window

	// Scene returns the scene the engine builds frames for.
	Scene() scene.Scene

	// Input returns the input queue drained at the start of each tick.
	Input() *input.State

	// Controller returns the camera controller events are applied with.
	Controller() camera.CameraController

	// EnableProfiler enables performance profiling output.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate changes the rate Run ticks at. Takes effect on the next Run.
	//
	// Parameters:
	//   - fps: ticks per second (values <= 0 are treated as 60)
	SetTickRate(fps float64)

	// SetFrameCallback sets the function that receives every built frame.
	// The render passes hang off this callback.
	//
	// Parameters:
	//   - callback: receives the frame data
	SetFrameCallback(callback func(fd scene.FrameData))

	// Tick runs one frame: every queued input event is applied to the scene camera,
	// the frame is built and passed to the frame callback and profiler.
	//
	// Returns:
	//   - scene.FrameData: the frame that was built
	Tick() scene.FrameData

	// Run ticks at the configured rate until Quit is called or the window closes.
	// Must be called from the main goroutine when a window is attached.
	Run()

	// Running reports whether Quit has not been called yet.
	Running() bool

	// Quit stops Run. Safe to call more than once and from any goroutine.
	Quit()
}

type engine struct {
	running     atomic.Bool
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window     window.Window
	scene      scene.Scene
	input      *input.State
	controller camera.CameraController

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate      time.Duration
	frameCallback func(fd scene.FrameData)
}

var _ Engine = &engine{}

// NewEngine creates a new Engine for the given scene. Panics if s is nil.
// When a window is supplied the input queue is attached to it and the scene
// camera's aspect ratio follows the framebuffer size.
//
// Parameters:
//   - s: the scene to build frames for (must not be nil)
//   - options: functional options to configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(s scene.Scene, options ...EngineBuilderOption) Engine {
	if s == nil {
		panic("engine: NewEngine requires a non-nil Scene")
	}

	e := &engine{
		quitChannel:      make(chan struct{}),
		scene:            s,
		input:            input.NewState(),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		tickRate:         time.Second / 60,
	}
	e.running.Store(true)

	for _, opt := range options {
		opt(e)
	}

	if e.controller == nil {
		e.controller = camera.NewCameraController(camera.WithTickRate(float32(time.Second) / float32(e.tickRate)))
	}

	if e.window != nil {
		e.input.Attach(e.window.Handle())
		s.Camera().Intrinsics.Aspect = e.window.AspectRatio()
		e.window.SetResizeCallback(func(width, height int) {
			if width > 0 && height > 0 {
				s.Camera().Intrinsics.Aspect = float32(width) / float32(height)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) Input() *input.State {
	return e.input
}

func (e *engine) Controller() camera.CameraController {
	return e.controller
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	e.tickRate = tickInterval(fps)
}

func (e *engine) SetFrameCallback(callback func(fd scene.FrameData)) {
	e.frameCallback = callback
}

func (e *engine) Tick() scene.FrameData {
	cam := e.scene.Camera()
	for {
		ev, ok := e.input.Poll()
		if !ok {
			break
		}
		if e.controller.HandleEvent(ev, cam) {
			e.Quit()
		}
	}

	fd := e.scene.Frame()

	if e.frameCallback != nil {
		e.frameCallback(fd)
	}
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(profiler.FrameStats{
			Visible:        len(fd.Visible),
			Culled:         fd.Culled,
			CascadeFitTime: fd.CascadeFitTime,
		})
	}
	return fd
}

func (e *engine) Run() {
	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	for e.Running() {
		if e.window != nil && !e.window.PollEvents() {
			e.Quit()
			return
		}
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			if e.scene.Active() {
				e.Tick()
			}
		}
	}
}

func (e *engine) Running() bool {
	return e.running.Load()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// tickInterval converts a rate in ticks per second into a ticker period.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60.0
	}
	return time.Duration(float64(time.Second) / fps)
}
