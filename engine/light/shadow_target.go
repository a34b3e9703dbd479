package light

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// CascadeTextureDescriptor describes the depth texture the shadow pass renders
// into: a 2D array with one square layer per cascade.
//
// Parameters:
//   - resolution: width and height of each layer in texels
//   - count: number of cascades (array layers)
//
// Returns:
//   - *wgpu.TextureDescriptor: descriptor ready for Device.CreateTexture
func CascadeTextureDescriptor(resolution uint32, count int) *wgpu.TextureDescriptor {
	return &wgpu.TextureDescriptor{
		Label: "Cascade Shadow Depth Texture",
		Size: wgpu.Extent3D{
			Width:              resolution,
			Height:             resolution,
			DepthOrArrayLayers: uint32(count),
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth32Float,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	}
}

// CascadeArrayViewDescriptor describes the view the lighting pass samples:
// every cascade layer as a texture_depth_2d_array.
//
// Parameters:
//   - count: number of cascades
//
// Returns:
//   - *wgpu.TextureViewDescriptor: descriptor ready for Texture.CreateView
func CascadeArrayViewDescriptor(count int) *wgpu.TextureViewDescriptor {
	return &wgpu.TextureViewDescriptor{
		Label:           "Cascade Shadow Array View",
		Format:          wgpu.TextureFormatDepth32Float,
		Dimension:       wgpu.TextureViewDimension2DArray,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  0,
		ArrayLayerCount: uint32(count),
		Aspect:          wgpu.TextureAspectDepthOnly,
	}
}

// CascadeLayerViewDescriptor describes the single-layer view the shadow pass
// uses as its depth attachment for one cascade.
//
// Parameters:
//   - index: the cascade index
//
// Returns:
//   - *wgpu.TextureViewDescriptor: descriptor ready for Texture.CreateView
func CascadeLayerViewDescriptor(index int) *wgpu.TextureViewDescriptor {
	return &wgpu.TextureViewDescriptor{
		Label:           fmt.Sprintf("Cascade Shadow Layer %d", index),
		Format:          wgpu.TextureFormatDepth32Float,
		Dimension:       wgpu.TextureViewDimension2D,
		BaseMipLevel:    0,
		MipLevelCount:   1,
		BaseArrayLayer:  uint32(index),
		ArrayLayerCount: 1,
		Aspect:          wgpu.TextureAspectDepthOnly,
	}
}

// CascadeSamplerDescriptor describes the comparison sampler used for hardware
// PCF lookups into the cascade array.
//
// Returns:
//   - *wgpu.SamplerDescriptor: descriptor ready for Device.CreateSampler
func CascadeSamplerDescriptor() *wgpu.SamplerDescriptor {
	return &wgpu.SamplerDescriptor{
		Label:         "Cascade Shadow Comparison Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		Compare:       wgpu.CompareFunctionLessEqual,
		MaxAnisotropy: 1,
	}
}
