// Package paintkit provides color, gradient, and shader-identity utilities
// for real-time 2D graphics in the GoGPU ecosystem.
//
// # Overview
//
// paintkit sits between a styling layer that speaks CSS-flavored strings and
// a GPU renderer that wants structured data. Its centerpiece is a lenient
// parser for the CSS linear-gradient functional notation:
//
//	g, err := paintkit.ParseLinearGradient(
//	    "linear-gradient(90deg, #0380FD 0%, #2B398F 50%, #FF77C1 100%);")
//	if err != nil {
//	    // not a gradient, or fewer than two usable color stops
//	}
//	// g.Angle == 90, g.Stops holds (color, offset) pairs with the final
//	// offset always normalized to exactly 1.0
//
// Colors may be written as hex codes, CSS named colors, or rgba(...) with
// channels in either the 0-1 or 0-255 range. Malformed pieces of a gradient
// are absorbed rather than fatal: an unparsable angle leaves the default of
// 180 degrees in place, an unparsable channel falls back to 0 (1 for alpha),
// and an unrecognized color word is skipped. The parse only fails outright
// when the string is not a linear-gradient call at all or fewer than two
// color stops survive.
//
// [FromString] is the cached front door: repeated parses of the same string
// return a shared, immutable *Gradient without re-tokenizing.
//
// # Shaders and Materials
//
// The shader side is deliberately thin. A [ShaderRegistry] compiles WGSL to
// SPIR-V once per shader name (via gogpu/naga) and derives a stable
// [ShaderID] from the compiled words, so materials can be compared for
// shader identity without recompiling. [Material] ties a shader name, a
// target texture format, and an optional gradient together; its FourPoint
// autofill samples any gradient down to the four fixed color slots the
// bundled gradient shader consumes.
//
// # Concurrency
//
// Parsing is a pure function over its input and is safe to call from any
// goroutine. The parse cache and shader registry are internally
// synchronized.
package paintkit

// Version is the current version of the library.
const Version = "0.1.0"
