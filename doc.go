// Package cssgrad renders CSS linear-gradient() descriptions into pixel buffers.
//
// # Overview
//
// cssgrad parses the declarative gradient syntax used in style sheets and
// rasterizes it without a browser or CSS engine, for backgrounds, textures
// and placeholder assets.
//
// # Quick Start
//
//	import "github.com/gogpu/cssgrad"
//
//	g, err := cssgrad.ParseGradient("linear-gradient(to bottom, #3498db, hsla(120,100%,50%,.5) 75%, transparent)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Render a 64x256 buffer; Pixmap implements image.Image.
//	pm := cssgrad.RenderToBuffer(g, 64, 256)
//	png.Encode(w, pm.ToImage())
//
// # Syntax
//
// The accepted form is
//
//	linear-gradient(<direction>?, <stop>, <stop>*)
//	<stop> = <color> <length>? <length>?
//
// Directions are the side keywords top, bottom, left, right and their
// "to <side>" forms. Without a direction the gradient runs "to bottom"; an
// unrecognized direction falls back to "to right". Colors are hex
// (#RGB, #RGBA, #RRGGBB, #RRGGBBAA), rgb(), rgba(), hsl(), hsla(), the CSS3
// color keywords and "transparent". Lengths are percentages, unitless
// fractions of the axis, or px, in, mm, cm, pt and pc at 96 DPI.
//
// Angles, corners, radial gradients and vendor-prefixed syntax are not
// supported.
//
// # Leniency
//
// Malformed stop positions do not fail the parse: the stop becomes
// auto-positioned and the recovery is reported through the package logger
// (see SetLogger). Malformed colors and wrappers fail the whole parse.
//
// # Concurrency
//
// A parsed Gradient is not mutated by rendering, so it can be rendered
// concurrently at different sizes. Each render owns its output Pixmap.
package cssgrad

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
