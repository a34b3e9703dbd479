package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCascadeSource is the canonical WGSL definition of the ShadowHeader and
// Cascade structs. Matches GPUShadowHeader and GPUCascade layouts exactly.
//
//go:embed assets/cascade.wgsl
var GPUCascadeSource string

// GPUShadowHeader is the header prepended to the cascade storage buffer.
// Size: 16 bytes (std430 aligned).
type GPUShadowHeader struct {
	CascadeCount    uint32  // offset  0: number of cascades following the header
	Bias            float32 // offset  4: constant depth comparison bias
	NormalBiasScale float32 // offset  8: multiplier on the texel world size for normal offset
	TexelSize       float32 // offset 12: 1.0 / shadow_map_resolution for PCF offsets
}

// Size returns the size of the GPUShadowHeader struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (h *GPUShadowHeader) Size() int {
	return int(unsafe.Sizeof(*h))
}

// Marshal serializes the GPUShadowHeader struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (h *GPUShadowHeader) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], h.CascadeCount)
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(h.Bias))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(h.NormalBiasScale))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(h.TexelSize))
	return buf
}

// GPUCascade is the GPU-aligned representation of a single cascade.
// Size: 80 bytes (std430 / WGSL aligned).
//
// Layout:
//
//	mat4x4<f32> view_proj         (64 bytes, offset 0)
//	f32         split_depth       ( 4 bytes, offset 64)
//	f32         texel_world_size  ( 4 bytes, offset 68)
//	f32         near              ( 4 bytes, offset 72)
//	f32         far               ( 4 bytes, offset 76)
type GPUCascade struct {
	ViewProj       [16]float32
	SplitDepth     float32
	TexelWorldSize float32
	Near           float32
	Far            float32
}

// NewGPUCascade converts a fitted cascade into its GPU layout.
//
// Parameters:
//   - c: the cascade
//   - resolution: the shadow map resolution the cascade is rendered at
//
// Returns:
//   - GPUCascade: the GPU-ready cascade
func NewGPUCascade(c Cascade, resolution uint32) GPUCascade {
	return GPUCascade{
		ViewProj:       c.ViewProjectionMatrix,
		SplitDepth:     c.SplitDepth,
		TexelWorldSize: ShadowTexelWorldSize(c, resolution),
		Near:           c.Near,
		Far:            c.Far,
	}
}

// Size returns the size of the GPUCascade struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCascade) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCascade struct into a byte buffer suitable for GPU upload.
// The matrix is written column-major, matching WGSL mat4x4.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUCascade) Marshal() []byte {
	buf := make([]byte, 80)
	for i, v := range g.ViewProj {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint32(buf[64:68], math.Float32bits(g.SplitDepth))
	binary.LittleEndian.PutUint32(buf[68:72], math.Float32bits(g.TexelWorldSize))
	binary.LittleEndian.PutUint32(buf[72:76], math.Float32bits(g.Near))
	binary.LittleEndian.PutUint32(buf[76:80], math.Float32bits(g.Far))
	return buf
}

// MarshalCascades builds the full cascade storage buffer: a GPUShadowHeader
// followed by one GPUCascade per cascade.
//
// Parameters:
//   - cascades: the fitted cascades, nearest first
//   - resolution: the shadow map resolution (must be > 0)
//   - bias: constant depth bias
//   - normalBiasScale: normal-offset multiplier
//
// Returns:
//   - []byte: the buffer contents ready for GPU upload
func MarshalCascades(cascades []Cascade, resolution uint32, bias, normalBiasScale float32) []byte {
	header := GPUShadowHeader{
		CascadeCount:    uint32(len(cascades)),
		Bias:            bias,
		NormalBiasScale: normalBiasScale,
		TexelSize:       1.0 / float32(resolution),
	}
	buf := make([]byte, 0, 16+80*len(cascades))
	buf = append(buf, header.Marshal()...)
	for _, c := range cascades {
		g := NewGPUCascade(c, resolution)
		buf = append(buf, g.Marshal()...)
	}
	return buf
}
