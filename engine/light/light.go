package light

import (
	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/go-gl/mathgl/mgl32"
)

// defaultSunDirection points straight down. It also replaces zero-length directions.
var defaultSunDirection = mgl32.Vec3{0, -1, 0}

// SunLight is the scene's single directional light source.
//
// The sun has no position, only a direction, so it affects every fragment
// uniformly with no distance attenuation. Cascade fitting reads only the
// direction; color and intensity are carried for the lighting pass.
type SunLight struct {
	// Direction is the normalized direction the light travels in world space.
	Direction mgl32.Vec3
	// Color is the linear RGB color of the light.
	Color mgl32.Vec3
	// Intensity is the scalar multiplier applied to Color.
	Intensity float32
}

// NewSunLight creates a SunLight shining straight down with white light at unit
// intensity, then applies any provided options.
//
// Parameters:
//   - opts: variadic list of SunLightBuilderOption functions to configure the light
//
// Returns:
//   - SunLight: the configured light
func NewSunLight(opts ...SunLightBuilderOption) SunLight {
	l := SunLight{
		Direction: defaultSunDirection,
		Color:     mgl32.Vec3{1, 1, 1},
		Intensity: 1.0,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// SetDirection sets the direction of the light and normalizes it. A zero-length
// direction resets the light to point straight down.
//
// Parameters:
//   - x, y, z: direction components (will be normalized)
func (l *SunLight) SetDirection(x, y, z float32) {
	l.Direction = common.NormalizeOr(mgl32.Vec3{x, y, z}, defaultSunDirection)
}

// Radiance returns the light color scaled by its intensity.
func (l SunLight) Radiance() mgl32.Vec3 {
	return l.Color.Mul(l.Intensity)
}
