package codeshot

import (
	"image/color"

	"github.com/gogpu/codeshot/text"
)

// FontStyle selects one of the four variants of a font family.
type FontStyle = text.FontStyle

// Font styles.
const (
	Regular    = text.Regular
	Italic     = text.Italic
	Bold       = text.Bold
	BoldItalic = text.BoldItalic
)

// Span is a run of text sharing one foreground color and font style.
type Span = text.Span

// Line is the ordered spans of one source line.
type Line = text.Line

// Document is the highlighted source, one Line per source line.
type Document []Line

// MapStyle converts highlighter bold/italic flags into a FontStyle.
func MapStyle(bold, italic bool) FontStyle {
	return text.MapStyle(bold, italic)
}

// Theme holds the two colors the renderer takes from the highlighter theme.
type Theme struct {
	Foreground color.NRGBA
	Background color.NRGBA
}
