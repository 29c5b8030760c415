package codeshot

import (
	"github.com/gogpu/codeshot/text"
)

// Layout constants of the screenshot chrome, in pixels.
const (
	defaultLinePad   = 2
	defaultCodePad   = 25
	defaultTabWidth  = 4
	defaultFontSize  = 26
	titleBarHeight   = 50 // code_pad_top when a title bar is drawn
	titleBarPad      = 15
	controlsWidth    = 120
	controlsHeight   = 40
	controlsRadius   = 10
	cornerRadius     = 12
	lineNumberPad    = 6
	highlightDelta   = 40
	lineNumberDelta  = -20
	minCanvasWidth   = 150
	supersampleScale = 3
)

// Config controls the layout and decoration of a rendered screenshot.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	// LinePad is the vertical gap between lines.
	LinePad int

	// CodePad is the padding around the code block.
	CodePad int

	// LineNumber draws a line number gutter.
	LineNumber bool

	// LineOffset is the number printed for the first line.
	LineOffset int

	// RoundCorner rounds the four corners of the image.
	RoundCorner bool

	// WindowControls draws the three window buttons in a title bar.
	WindowControls bool

	// WindowTitle is drawn in the title bar when non-empty.
	WindowTitle string

	// HighlightLines lists 1-based lines to highlight. Out-of-range
	// entries are ignored.
	HighlightLines []int

	// TabWidth is the number of spaces a tab expands to.
	TabWidth int

	// Shadow adds a drop shadow when non-nil.
	Shadow *ShadowConfig

	// Fonts is the font set; nil selects embedded Go Mono at 26px.
	Fonts *text.FontSet

	// Shaper shapes text runs; nil selects text.BuiltinShaper.
	Shaper text.Shaper
}

// DefaultConfig returns the default configuration: line numbers starting
// at 1, window controls, rounded corners and no shadow.
func DefaultConfig() Config {
	return Config{
		LinePad:        defaultLinePad,
		CodePad:        defaultCodePad,
		LineNumber:     true,
		LineOffset:     1,
		RoundCorner:    true,
		WindowControls: true,
		TabWidth:       defaultTabWidth,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	switch {
	case c.LinePad < 0:
		return &ConfigError{Field: "LinePad", Reason: "must not be negative"}
	case c.CodePad < 0:
		return &ConfigError{Field: "CodePad", Reason: "must not be negative"}
	case c.LineOffset < 0:
		return &ConfigError{Field: "LineOffset", Reason: "must not be negative"}
	case c.TabWidth < 0:
		return &ConfigError{Field: "TabWidth", Reason: "must not be negative"}
	}
	if c.Shadow != nil {
		return c.Shadow.Validate()
	}
	return nil
}

// titleBar reports whether a title bar is drawn above the code.
func (c Config) titleBar() bool {
	return c.WindowControls || c.WindowTitle != ""
}
