package paintkit

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// paintkit never creates a device; the host (e.g. a gogpu window) implements
// DeviceHandle and hands it in, the same integration pattern the rest of the
// GoGPU ecosystem uses. DeviceHandle is an alias for
// gpucontext.DeviceProvider so any existing provider plugs in directly.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no GPU behind it. Useful for
// CPU-only paths and tests.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// Material ties a shader name, a target texture format, and an optional
// gradient together. It is plain data; binding it to a pipeline is the
// renderer's job.
type Material struct {
	// Shader names the shader this material renders with.
	Shader string

	// Format is the texture format of the render target the material
	// expects to draw into.
	Format gputypes.TextureFormat

	// Gradient is the fill gradient, nil for non-gradient materials.
	Gradient *Gradient

	// shaderID is populated by ResolveShader.
	shaderID ShaderID
	resolved bool
}

// NewMaterial creates a material for the named shader targeting RGBA8.
func NewMaterial(shader string) *Material {
	return &Material{
		Shader: shader,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// NewGradientMaterial creates a material using the bundled gradient shader.
func NewGradientMaterial(g *Gradient) *Material {
	m := NewMaterial(GradientShaderName)
	m.Gradient = g
	return m
}

// SetGradientString parses a linear-gradient string (through the shared
// parse cache) onto the material, reporting success. On failure the
// material's gradient is left unchanged.
func (m *Material) SetGradientString(s string) bool {
	g, err := FromString(s)
	if err != nil {
		return false
	}
	m.Gradient = g
	return true
}

// ResolveShader compiles-or-fetches the material's shader from the given
// registry and records its identity for SameShader comparisons.
func (m *Material) ResolveShader(reg *ShaderRegistry, wgslSource string) error {
	s, err := reg.Lookup(m.Shader, wgslSource)
	if err != nil {
		return err
	}
	m.shaderID = s.ID
	m.resolved = true
	return nil
}

// ShaderID returns the resolved shader identity. ok is false until
// ResolveShader has run.
func (m *Material) ShaderID() (id ShaderID, ok bool) {
	return m.shaderID, m.resolved
}

// SameShader reports whether two materials render with the same shader.
// When both materials have resolved identities the compiled IDs are
// compared; otherwise the comparison falls back to the shader name.
func SameShader(a, b *Material) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.resolved && b.resolved {
		return a.shaderID == b.shaderID
	}
	return a.Shader == b.Shader
}

// CompatibleWith reports whether the material's target format matches the
// surface format of the given device handle.
func (m *Material) CompatibleWith(h DeviceHandle) bool {
	if h == nil {
		return false
	}
	return m.Format == h.SurfaceFormat()
}

// GradientPoints autofills the material's gradient into the four fixed
// color slots of the gradient shader. A material without a gradient yields
// four transparent points at the fixed offsets.
func (m *Material) GradientPoints() [4]ColorStop {
	if m.Gradient == nil {
		var points [4]ColorStop
		for i, off := range FourPointOffsets {
			points[i] = ColorStop{Offset: off, Color: Transparent}
		}
		return points
	}
	return m.Gradient.FourPoint()
}
