package text

import "image/color"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// FontStyle selects one of the four variants of a font family.
type FontStyle uint8

const (
	// Regular is the upright, normal-weight variant.
	Regular FontStyle = iota
	// Italic is the slanted, normal-weight variant.
	Italic
	// Bold is the upright, bold variant.
	Bold
	// BoldItalic is the slanted, bold variant.
	BoldItalic
)

// String returns the string representation of the style.
func (s FontStyle) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	case Bold:
		return "Bold"
	case BoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// MapStyle converts highlighter bold/italic flags into a FontStyle.
func MapStyle(bold, italic bool) FontStyle {
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// Span is a contiguous piece of text sharing one highlight style.
type Span struct {
	Foreground color.NRGBA
	Style      FontStyle
	Text       string
}

// Line is an ordered sequence of spans, rendered left to right.
type Line []Span
