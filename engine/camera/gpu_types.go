package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (144 bytes, std430 aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// The lighting pass needs View as well as ViewProj to recover a fragment's view
// depth for cascade selection.
// Size: 144 bytes (std430 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	View     [16]float32 // offset  64: world-to-view matrix (mat4x4<f32>)
	Position [3]float32  // offset 128: world-space camera position (vec3<f32>)
	Far      float32     // offset 140: far plane distance, packed into the vec3 tail
}

// NewGPUCameraUniform captures the camera's current matrices in GPU layout.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - GPUCameraUniform: the GPU-ready uniform
func NewGPUCameraUniform(c Camera) GPUCameraUniform {
	return GPUCameraUniform{
		ViewProj: c.ViewProjectionMatrix(),
		View:     c.ViewMatrix(),
		Position: c.Position,
		Far:      c.Intrinsics.Far,
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.Position[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], math.Float32bits(g.Far))
	return buf
}
