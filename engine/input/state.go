package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// State buffers input events between window callbacks and the per-frame consumer.
// The Process* methods hold the window-independent logic so they can be driven
// directly in tests; Attach wires them to a live GLFW window.
//
// State is not safe for concurrent use. GLFW delivers callbacks on the thread
// that calls glfw.PollEvents, which is the same thread that drains the queue.
type State struct {
	queue []Event

	attached bool

	lastCursorX       float64
	lastCursorY       float64
	cursorInitialized bool
}

// NewState creates an empty input State.
//
// Returns:
//   - *State: the new state
func NewState() *State {
	return &State{
		queue: make([]Event, 0, 32),
	}
}

// ProcessKey queues a press or release for a mapped key. Repeats and unmapped keys are ignored.
//
// Parameters:
//   - key: the GLFW key code
//   - action: the GLFW key action
func (s *State) ProcessKey(key glfw.Key, action glfw.Action) {
	k, ok := MapKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		s.queue = append(s.queue, KeyPressEvent{Key: k})
	case glfw.Release:
		s.queue = append(s.queue, KeyReleaseEvent{Key: k})
	}
}

// ProcessCursorPos converts an absolute cursor position to a normalized drag event.
// The first sample only records the position. Samples with a zero-sized window
// or no motion emit nothing.
//
// Parameters:
//   - x, y: cursor position in screen coordinates
//   - width, height: window size in screen coordinates
func (s *State) ProcessCursorPos(x, y float64, width, height int) {
	if width == 0 || height == 0 {
		return
	}
	if !s.cursorInitialized {
		s.lastCursorX, s.lastCursorY = x, y
		s.cursorInitialized = true
		return
	}

	dx := float32((x - s.lastCursorX) / float64(width))
	dy := float32((y - s.lastCursorY) / float64(height))
	s.lastCursorX, s.lastCursorY = x, y

	if dx != 0 || dy != 0 {
		s.queue = append(s.queue, MouseDragEvent{DX: dx, DY: dy})
	}
}

// ProcessScroll queues a vertical scroll event.
//
// Parameters:
//   - yoffset: the vertical scroll offset reported by the window system
func (s *State) ProcessScroll(yoffset float64) {
	s.queue = append(s.queue, MouseScrollEvent{Delta: float32(yoffset)})
}

// Poll removes and returns the oldest queued event.
//
// Returns:
//   - Event: the oldest event, or nil
//   - bool: false if the queue is empty
func (s *State) Poll() (Event, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	ev := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	if len(s.queue) == 0 {
		s.queue = s.queue[:0:cap(s.queue)]
	}
	return ev, true
}

// Len returns the number of queued events.
func (s *State) Len() int {
	return len(s.queue)
}

// Attach registers key, cursor and scroll callbacks on win and captures the cursor
// for FPS-style look. Calling Attach again is a no-op.
//
// GLFW reference: https://www.glfw.org/docs/latest/input_guide.html
//
// Parameters:
//   - win: an initialized GLFW window owned by the caller
func (s *State) Attach(win *glfw.Window) {
	if s.attached || win == nil {
		return
	}

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		s.ProcessKey(key, action)
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		width, height := w.GetSize()
		s.ProcessCursorPos(xpos, ypos, width, height)
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		s.ProcessScroll(yoff)
	})

	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		win.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}

	s.attached = true
}
