// Package codeshot renders syntax-highlighted source code into a raster
// image styled like a code screenshot.
//
// # Overview
//
// A Document (lines of styled spans produced by a highlighter) and a Theme
// go in; a Canvas holding straight-alpha RGBA8 pixels comes out. Between
// the two, a Renderer lays out text, sizes the canvas and composites the
// layers in a fixed order:
//
//   - background fill
//   - highlighted line bands
//   - line numbers
//   - code glyphs
//   - window controls and title
//   - rounded corners
//   - drop shadow
//
// # Quick Start
//
//	import "github.com/gogpu/codeshot"
//
//	r, err := codeshot.NewRenderer(codeshot.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	img := r.Render(doc, codeshot.Theme{
//	    Foreground: color.NRGBA{0xF8, 0xF8, 0xF2, 0xFF},
//	    Background: color.NRGBA{0x28, 0x2A, 0x36, 0xFF},
//	})
//	png.Encode(w, img)
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X grows right and Y grows down.
// All positions and sizes are whole pixels.
//
// # Concurrency
//
// A Renderer is immutable after NewRenderer and may be shared by
// goroutines. Each Render call owns the canvas it creates; only the shadow
// blur fans out internally, and it joins before returning.
package codeshot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
