package light

import (
	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/go-gl/mathgl/mgl32"
)

// SunLightBuilderOption is a function that configures a SunLight during construction.
type SunLightBuilderOption func(*SunLight)

// WithDirection is an option builder that sets the direction of the light.
// The direction is normalized before storing.
//
// Parameters:
//   - x: the x direction component
//   - y: the y direction component
//   - z: the z direction component
//
// Returns:
//   - SunLightBuilderOption: a function that applies the direction option to a SunLight
func WithDirection(x, y, z float32) SunLightBuilderOption {
	return func(l *SunLight) {
		l.Direction = common.NormalizeOr(mgl32.Vec3{x, y, z}, defaultSunDirection)
	}
}

// WithColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r: the red color component
//   - g: the green color component
//   - b: the blue color component
//
// Returns:
//   - SunLightBuilderOption: a function that applies the color option to a SunLight
func WithColor(r, g, b float32) SunLightBuilderOption {
	return func(l *SunLight) {
		l.Color = mgl32.Vec3{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - SunLightBuilderOption: a function that applies the intensity option to a SunLight
func WithIntensity(intensity float32) SunLightBuilderOption {
	return func(l *SunLight) {
		l.Intensity = intensity
	}
}
