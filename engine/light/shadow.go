package light

// ShadowMapResolution is the default width and height in texels of each cascade's
// depth layer. Cascade builders snap their bounds to this texel grid unless
// configured otherwise via WithResolution.
const ShadowMapResolution uint32 = 1024

// DefaultCascadeCount is the number of depth slices the camera frustum is split into.
const DefaultCascadeCount = 3

// DefaultCascadeSplitLambda blends logarithmic (1.0) and uniform (0.0) split placement.
const DefaultCascadeSplitLambda float32 = 0.5

// DefaultCascadeDepthPadding is the distance in world units the light-space near
// plane is pulled back toward the sun, so occluders between the light and the
// visible slab still land in the shadow map.
const DefaultCascadeDepthPadding float32 = 20.0

// DefaultShadowBias is the constant depth bias applied to shadow comparisons
// to reduce shadow acne artifacts.
const DefaultShadowBias float32 = 0.001

// DefaultShadowNormalBiasScale is the multiplier applied to the shadow map
// texel world-size to compute the normal-offset bias. Higher values push
// the shadow sample point further along the surface normal, reducing
// self-shadowing on concave geometry at the cost of slight shadow
// detachment from contact points. Typical values are 2.0 to 4.0.
const DefaultShadowNormalBiasScale float32 = 3.0

// ShadowTexelWorldSize returns the world-space width of one shadow map texel for
// a cascade. The lighting pass multiplies it by the normal bias scale.
//
// Parameters:
//   - c: the cascade
//   - resolution: the cascade's shadow map width in texels
//
// Returns:
//   - float32: world units per texel (0 when resolution is 0)
func ShadowTexelWorldSize(c Cascade, resolution uint32) float32 {
	if resolution == 0 {
		return 0
	}
	return (c.Right - c.Left) / float32(resolution)
}
