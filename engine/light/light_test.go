package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSunLightDefaults(t *testing.T) {
	l := NewSunLight()
	if l.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("direction = %v, want straight down", l.Direction)
	}
	if l.Color != (mgl32.Vec3{1, 1, 1}) || l.Intensity != 1 {
		t.Errorf("color/intensity = %v/%v, want white/1", l.Color, l.Intensity)
	}
}

func TestSunLightOptions(t *testing.T) {
	l := NewSunLight(WithDirection(3, 0, 4), WithColor(1, 0.5, 0.25), WithIntensity(2))
	if !near(l.Direction.X(), 0.6, 1e-6) || !near(l.Direction.Z(), 0.8, 1e-6) {
		t.Errorf("direction = %v, want normalized (0.6, 0, 0.8)", l.Direction)
	}
	if r := l.Radiance(); r != (mgl32.Vec3{2, 1, 0.5}) {
		t.Errorf("radiance = %v, want (2, 1, 0.5)", r)
	}

	l.SetDirection(0, 0, -5)
	if l.Direction != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("SetDirection = %v, want (0, 0, -1)", l.Direction)
	}
	l.SetDirection(0, 0, 0)
	if l.Direction != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("zero direction = %v, want straight down", l.Direction)
	}
}

func TestShadowTexelWorldSize(t *testing.T) {
	c := Cascade{Left: -8, Right: 8}
	if got := ShadowTexelWorldSize(c, 1024); got != 16.0/1024 {
		t.Errorf("texel size = %v, want %v", got, 16.0/1024)
	}
	if got := ShadowTexelWorldSize(c, 0); got != 0 {
		t.Errorf("texel size at resolution 0 = %v, want 0", got)
	}
}

func TestGPUTypeSizes(t *testing.T) {
	var h GPUShadowHeader
	if h.Size() != 16 || len(h.Marshal()) != 16 {
		t.Errorf("header size = %d / %d, want 16", h.Size(), len(h.Marshal()))
	}
	var c GPUCascade
	if c.Size() != 80 || len(c.Marshal()) != 80 {
		t.Errorf("cascade size = %d / %d, want 80", c.Size(), len(c.Marshal()))
	}
	if GPUCascadeSource == "" {
		t.Error("WGSL source not embedded")
	}
}

func TestMarshalCascades(t *testing.T) {
	cascades := ComputeCascades(NewSunLight(), defaultCamera(), ShadowMapResolution)
	buf := MarshalCascades(cascades, ShadowMapResolution, DefaultShadowBias, DefaultShadowNormalBiasScale)

	if want := 16 + 80*len(cascades); len(buf) != want {
		t.Fatalf("buffer length = %d, want %d", len(buf), want)
	}
	if n := binary.LittleEndian.Uint32(buf[0:4]); n != uint32(len(cascades)) {
		t.Errorf("cascade count = %d, want %d", n, len(cascades))
	}
	if texel := math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])); texel != 1.0/float32(ShadowMapResolution) {
		t.Errorf("texel size = %v", texel)
	}

	// Second cascade: matrix element 0 and split depth.
	off := 16 + 80
	m0 := math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	if m0 != cascades[1].ViewProjectionMatrix[0] {
		t.Errorf("matrix[0] = %v, want %v", m0, cascades[1].ViewProjectionMatrix[0])
	}
	split := math.Float32frombits(binary.LittleEndian.Uint32(buf[off+64 : off+68]))
	if split != cascades[1].SplitDepth {
		t.Errorf("split depth = %v, want %v", split, cascades[1].SplitDepth)
	}
}

func TestCascadeTextureDescriptor(t *testing.T) {
	d := CascadeTextureDescriptor(2048, 4)
	if d.Size.Width != 2048 || d.Size.Height != 2048 || d.Size.DepthOrArrayLayers != 4 {
		t.Errorf("size = %+v, want 2048x2048x4", d.Size)
	}
	if d.Format != wgpu.TextureFormatDepth32Float {
		t.Errorf("format = %v, want Depth32Float", d.Format)
	}
	want := wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding
	if d.Usage != want {
		t.Errorf("usage = %v, want %v", d.Usage, want)
	}
}

func TestCascadeViewDescriptors(t *testing.T) {
	arr := CascadeArrayViewDescriptor(3)
	if arr.Dimension != wgpu.TextureViewDimension2DArray || arr.ArrayLayerCount != 3 {
		t.Errorf("array view = %+v", arr)
	}
	layer := CascadeLayerViewDescriptor(2)
	if layer.Dimension != wgpu.TextureViewDimension2D || layer.BaseArrayLayer != 2 || layer.ArrayLayerCount != 1 {
		t.Errorf("layer view = %+v", layer)
	}
}

func TestCascadeSamplerDescriptor(t *testing.T) {
	s := CascadeSamplerDescriptor()
	if s.Compare != wgpu.CompareFunctionLessEqual {
		t.Errorf("compare = %v, want LessEqual", s.Compare)
	}
	if s.AddressModeU != wgpu.AddressModeClampToEdge || s.AddressModeV != wgpu.AddressModeClampToEdge {
		t.Errorf("address modes = %v/%v, want clamp-to-edge", s.AddressModeU, s.AddressModeV)
	}
	if s.MagFilter != wgpu.FilterModeLinear || s.MinFilter != wgpu.FilterModeLinear {
		t.Errorf("filters = %v/%v, want linear", s.MagFilter, s.MinFilter)
	}
}
