package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key is a logical key recognized by the interaction layer. Raw GLFW keys are
// mapped to a Key by MapKey; everything else is dropped at the callback.
type Key int

const (
	KeyForward Key = iota + 1
	KeyBack
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeyEscape
	KeySpace
	KeyShift
)

// keyMap translates GLFW key codes to logical keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
var keyMap = map[glfw.Key]Key{
	glfw.KeyW:         KeyForward,
	glfw.KeyS:         KeyBack,
	glfw.KeyA:         KeyLeft,
	glfw.KeyD:         KeyRight,
	glfw.KeyQ:         KeyDown,
	glfw.KeyE:         KeyUp,
	glfw.KeyEscape:    KeyEscape,
	glfw.KeySpace:     KeySpace,
	glfw.KeyLeftShift: KeyShift,
}

// MapKey returns the logical key for a GLFW key code.
//
// Parameters:
//   - key: the GLFW key code
//
// Returns:
//   - Key: the mapped logical key
//   - bool: false if the key has no mapping
func MapKey(key glfw.Key) (Key, bool) {
	k, ok := keyMap[key]
	return k, ok
}

// Event is a single input occurrence queued for the interaction layer.
// The concrete types are KeyPressEvent, KeyReleaseEvent, MouseDragEvent and MouseScrollEvent.
type Event interface {
	isEvent()
}

// KeyPressEvent is emitted when a mapped key goes down.
type KeyPressEvent struct {
	Key Key
}

// KeyReleaseEvent is emitted when a mapped key goes up.
type KeyReleaseEvent struct {
	Key Key
}

// MouseDragEvent carries cursor motion normalized by the window size,
// so a delta of 1 is a full window width or height.
type MouseDragEvent struct {
	DX, DY float32
}

// MouseScrollEvent carries the vertical scroll offset.
type MouseScrollEvent struct {
	Delta float32
}

func (KeyPressEvent) isEvent()    {}
func (KeyReleaseEvent) isEvent()  {}
func (MouseDragEvent) isEvent()   {}
func (MouseScrollEvent) isEvent() {}
