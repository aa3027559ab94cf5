package paintkit

import (
	_ "embed"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Shader errors.
var (
	// ErrNilDevice is returned when creating a shader module without a device.
	ErrNilDevice = errors.New("paintkit: device is nil")

	// ErrEmptyShader is returned when registering a shader with no source.
	ErrEmptyShader = errors.New("paintkit: shader source is empty")
)

// GradientShaderName identifies the bundled four-slot gradient shader.
const GradientShaderName = "paintkit/gradient4"

// GradientShaderWGSL is the WGSL source of the bundled gradient shader. It
// renders a linear gradient from four fixed color slots; see
// [Gradient.FourPoint] for how stops are autofilled into those slots.
//
//go:embed shaders/gradient4.wgsl
var GradientShaderWGSL string

// ShaderID is a stable identity for a compiled shader, derived from its
// SPIR-V words. Two shaders with the same ID compiled from the same registry
// are interchangeable for pipeline reuse and material equality checks.
type ShaderID uint64

// CompiledShader is a WGSL shader compiled to SPIR-V, ready for module
// creation on a HAL device. Immutable once returned by a registry.
type CompiledShader struct {
	// Name is the registry key the shader was compiled under.
	Name string

	// ID is the identity hash of the compiled SPIR-V.
	ID ShaderID

	// SPIRV holds the compiled code as little-endian 32-bit words.
	SPIRV []uint32
}

// CreateModule creates a HAL shader module from the compiled SPIR-V.
func (s *CompiledShader) CreateModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: s.Name,
		Source: hal.ShaderSource{
			SPIRV: s.SPIRV,
		},
	})
}

// ShaderRegistry caches compiled shaders by name.
//
// Shader compilation is expensive, so each name is compiled at most once:
// the first Lookup compiles the WGSL source via naga and stores the result,
// and every later Lookup for that name returns the cached shader without
// touching the source again. There is deliberately no invalidation path; a
// name is bound to its first compile for the life of the registry.
//
// ShaderRegistry is safe for concurrent use. Reads take an RLock fast path
// with double-check locking on the compile path, and hit/miss counters are
// atomic for lock-free Stats reads.
type ShaderRegistry struct {
	mu      sync.RWMutex
	shaders map[string]*CompiledShader

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewShaderRegistry creates an empty shader registry.
func NewShaderRegistry() *ShaderRegistry {
	return &ShaderRegistry{
		shaders: make(map[string]*CompiledShader),
	}
}

// Lookup returns the compiled shader registered under name, compiling
// wgslSource on first use. The source is only consulted on the compiling
// call; subsequent lookups of the same name ignore it.
func (r *ShaderRegistry) Lookup(name, wgslSource string) (*CompiledShader, error) {
	// Fast path: read lock
	r.mu.RLock()
	if s, ok := r.shaders[name]; ok {
		r.mu.RUnlock()
		r.hits.Add(1)
		return s, nil
	}
	r.mu.RUnlock()

	if wgslSource == "" {
		return nil, ErrEmptyShader
	}

	// Slow path: write lock with double-check
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.shaders[name]; ok {
		r.hits.Add(1)
		return s, nil
	}

	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("paintkit: failed to compile shader %q: %w", name, err)
	}

	s := &CompiledShader{
		Name:  name,
		ID:    hashSPIRV(spirvBytes),
		SPIRV: packSPIRV(spirvBytes),
	}
	r.shaders[name] = s
	r.misses.Add(1)

	Logger().Debug("paintkit: compiled shader", "name", name, "words", len(s.SPIRV))
	return s, nil
}

// Stats returns the cumulative cache hit and compile (miss) counts.
func (r *ShaderRegistry) Stats() (hits, misses uint64) {
	return r.hits.Load(), r.misses.Load()
}

// packSPIRV converts compiled SPIR-V bytes to little-endian 32-bit words.
func packSPIRV(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}

// hashSPIRV derives a ShaderID from compiled SPIR-V bytes using FNV-1a.
func hashSPIRV(b []byte) ShaderID {
	h := fnv.New64a()
	_, _ = h.Write(b) // fnv.Write never returns an error
	return ShaderID(h.Sum64())
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *ShaderRegistry
)

// DefaultRegistry returns the process-wide shader registry, creating it on
// first use. It is the single owner of shaders looked up through
// [LookupShader]; like any registry it never invalidates.
func DefaultRegistry() *ShaderRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewShaderRegistry()
	})
	return defaultRegistry
}

// LookupShader compiles-or-fetches a shader from the default registry.
func LookupShader(name, wgslSource string) (*CompiledShader, error) {
	return DefaultRegistry().Lookup(name, wgslSource)
}

// GradientShader returns the bundled four-slot gradient shader, compiled on
// first call and cached in the default registry thereafter.
func GradientShader() (*CompiledShader, error) {
	return LookupShader(GradientShaderName, GradientShaderWGSL)
}
