package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-csm/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController translates input events into camera motion.
// Keys translate the camera along its local axes, mouse drags pan and tilt it,
// and the scroll wheel scales the movement speed.
type CameraController interface {
	// HandleEvent applies a single input event to cam.
	//
	// Parameters:
	//   - ev: the event to apply
	//   - cam: the camera to mutate
	//
	// Returns:
	//   - bool: true if the event requests the application to quit
	HandleEvent(ev input.Event, cam *Camera) bool

	// MoveSpeed returns the current movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	MoveSpeed() float32

	// SetMoveSpeed sets the movement speed, clamped to the controller's bounds.
	//
	// Parameters:
	//   - speed: world units per second
	SetMoveSpeed(speed float32)

	// MouseSensitivity returns the radians of rotation per normalized drag unit.
	//
	// Returns:
	//   - float32: the mouse sensitivity
	MouseSensitivity() float32
}

// cameraControllerImpl is the fly-style implementation of CameraController.
type cameraControllerImpl struct {
	moveSpeed        float32
	minMoveSpeed     float32
	maxMoveSpeed     float32
	scrollMultiplier float32
	mouseSensitivity float32
	tickRate         float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a fly controller with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		moveSpeed:        DefaultMoveSpeed,
		minMoveSpeed:     DefaultMinMoveSpeed,
		maxMoveSpeed:     DefaultMaxMoveSpeed,
		scrollMultiplier: DefaultScrollMultiplier,
		mouseSensitivity: DefaultMouseSensitivity,
		tickRate:         DefaultTickRate,
	}

	for _, option := range options {
		option(cc)
	}

	cc.moveSpeed = cc.clampSpeed(cc.moveSpeed)
	return cc
}

func (cc *cameraControllerImpl) HandleEvent(ev input.Event, cam *Camera) bool {
	switch e := ev.(type) {
	case input.KeyPressEvent:
		step := cc.moveSpeed / cc.tickRate
		var delta mgl32.Vec3
		switch e.Key {
		case input.KeyForward:
			delta[2] = -step // forward is -Z in camera space
		case input.KeyBack:
			delta[2] = step
		case input.KeyLeft:
			delta[0] = -step
		case input.KeyRight:
			delta[0] = step
		case input.KeyDown:
			delta[1] = -step
		case input.KeyUp:
			delta[1] = step
		case input.KeyEscape:
			return true
		}
		if delta != (mgl32.Vec3{}) {
			cam.Translate(delta)
		}
	case input.MouseDragEvent:
		cam.Pan(-e.DX * cc.mouseSensitivity)
		cam.Tilt(-e.DY * cc.mouseSensitivity)
	case input.MouseScrollEvent:
		switch {
		case e.Delta > 0:
			cc.moveSpeed *= cc.scrollMultiplier
		case e.Delta < 0:
			cc.moveSpeed /= cc.scrollMultiplier
		default:
			return false
		}
		cc.moveSpeed = cc.clampSpeed(cc.moveSpeed)
		log.Printf("[Camera] move speed: %.2f", cc.moveSpeed)
	}
	return false
}

func (cc *cameraControllerImpl) MoveSpeed() float32 {
	return cc.moveSpeed
}

func (cc *cameraControllerImpl) SetMoveSpeed(speed float32) {
	cc.moveSpeed = cc.clampSpeed(speed)
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}

// clampSpeed bounds speed to [minMoveSpeed, maxMoveSpeed].
func (cc *cameraControllerImpl) clampSpeed(speed float32) float32 {
	return min(max(speed, cc.minMoveSpeed), cc.maxMoveSpeed)
}
