// Package blend composites straight-alpha RGBA8 pixels.
//
// Colors here are non-premultiplied, matching image/color.NRGBA: a
// transparent pixel may still carry color channels, and blurred shadows
// rely on that.
package blend

import "image/color"

// Mode selects how a source pixel combines with the destination.
type Mode uint8

const (
	// ModeOver places the source over the destination by its alpha.
	ModeOver Mode = iota
	// ModeSource replaces the destination, alpha included.
	ModeSource
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOver:
		return "Over"
	case ModeSource:
		return "Source"
	default:
		return "Unknown"
	}
}

// Blend combines src with dst using mode m. Unknown modes behave as ModeOver.
func Blend(dst, src color.NRGBA, m Mode) color.NRGBA {
	if m == ModeSource {
		return src
	}
	return Over(dst, src)
}

// Shift adds delta to every channel of c, alpha included, saturating at
// 0 and 255.
func Shift(c color.NRGBA, delta int) color.NRGBA {
	return color.NRGBA{
		R: addClamp(c.R, delta),
		G: addClamp(c.G, delta),
		B: addClamp(c.B, delta),
		A: addClamp(c.A, delta),
	}
}
