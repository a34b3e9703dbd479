package camera

// Controller defaults.
const (
	DefaultMoveSpeed        float32 = 2.0
	DefaultMinMoveSpeed     float32 = 0.1
	DefaultMaxMoveSpeed     float32 = 100.0
	DefaultScrollMultiplier float32 = 1.2
	DefaultMouseSensitivity float32 = 3.0
	DefaultTickRate         float32 = 60.0
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMoveSpeed sets the initial movement speed in world units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - CameraControllerOption: functional option to set the movement speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithMoveSpeedBounds sets the range the movement speed is clamped to.
// Ignored when minSpeed is not positive or exceeds maxSpeed.
//
// Parameters:
//   - minSpeed: lowest allowed speed
//   - maxSpeed: highest allowed speed
//
// Returns:
//   - CameraControllerOption: functional option to set the speed bounds
func WithMoveSpeedBounds(minSpeed, maxSpeed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if minSpeed <= 0 || minSpeed > maxSpeed {
			return
		}
		cc.minMoveSpeed = minSpeed
		cc.maxMoveSpeed = maxSpeed
	}
}

// WithScrollMultiplier sets the factor applied to the movement speed per scroll step.
//
// Parameters:
//   - multiplier: speed factor per scroll step (values <= 1 are ignored)
//
// Returns:
//   - CameraControllerOption: functional option to set the scroll multiplier
func WithScrollMultiplier(multiplier float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if multiplier > 1 {
			cc.scrollMultiplier = multiplier
		}
	}
}

// WithMouseSensitivity sets the radians of rotation per normalized drag unit.
//
// Parameters:
//   - sensitivity: the mouse sensitivity
//
// Returns:
//   - CameraControllerOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithTickRate sets the number of input ticks per second. A key press moves the
// camera by moveSpeed / tickRate.
//
// Parameters:
//   - ticksPerSecond: tick rate (values <= 0 are treated as the default)
//
// Returns:
//   - CameraControllerOption: functional option to set the tick rate
func WithTickRate(ticksPerSecond float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if ticksPerSecond <= 0 {
			ticksPerSecond = DefaultTickRate
		}
		cc.tickRate = ticksPerSecond
	}
}
