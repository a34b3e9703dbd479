package window

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the native surface the engine presents to.
// Input callbacks are not handled here; pass Handle to input.State.Attach.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer size changes.
	//
	// Parameters:
	//   - callback: receives the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// Handle returns the underlying GLFW window.
	//
	// Returns:
	//   - *glfw.Window: the GLFW window, or nil after Close
	Handle() *glfw.Window

	// SurfaceDescriptor returns the platform-specific descriptor needed to create a wgpu surface.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the surface descriptor, or nil if the window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is open and has not been asked to close.
	IsRunning() bool

	// PollEvents processes pending window events without blocking, dispatching any
	// registered callbacks on the calling goroutine.
	//
	// Returns:
	//   - bool: true if the window is still running afterwards
	PollEvents() bool

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: error if the window is not initialized
	Close() error

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// AspectRatio returns width / height, or 1 if the height is zero.
	AspectRatio() float32
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	// title is the window caption
	title string

	// size limits applied to user resizing
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// current framebuffer size in pixels
	width  int
	height int

	internalWindow *glfwWindow

	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates and opens a new Window. Panics if the platform window cannot
// be created. Must be called from the main goroutine.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-csm",
		maxWidth:  glfw.DontCare,
		maxHeight: glfw.DontCare,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("window: failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) Handle() *glfw.Window {
	if w.internalWindow == nil {
		return nil
	}
	return w.internalWindow.window
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) AspectRatio() float32 {
	return aspectRatio(w.width, w.height)
}

// aspectRatio returns width / height, falling back to 1 for a zero height
// (minimized windows report 0x0).
func aspectRatio(width, height int) float32 {
	if height <= 0 || width <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
