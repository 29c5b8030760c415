package codeshot

import (
	"image"
	"image/color"
)

// Background is the backdrop behind a drop shadow: a solid color, or an
// image stretched over the whole padded canvas when Image is non-nil.
type Background struct {
	Color color.NRGBA
	Image image.Image
}

// ShadowConfig pads an image and casts a blurred shadow behind it.
type ShadowConfig struct {
	Background  Background
	ShadowColor color.NRGBA

	// BlurRadius is the blur sigma. Zero pads without casting a shadow.
	BlurRadius float64

	PadHoriz, PadVert int
	OffsetX, OffsetY  int
}

// DefaultShadow returns a grey shadow on a light blue-grey backdrop.
func DefaultShadow() *ShadowConfig {
	return &ShadowConfig{
		Background:  Background{Color: MustParseHex("#abb8c3")},
		ShadowColor: MustParseHex("#707070"),
		BlurRadius:  50,
		PadHoriz:    80,
		PadVert:     100,
	}
}

// Validate reports a negative pad or blur radius as a *ConfigError.
func (s *ShadowConfig) Validate() error {
	switch {
	case s.BlurRadius < 0:
		return &ConfigError{Field: "Shadow.BlurRadius", Reason: "must not be negative"}
	case s.PadHoriz < 0:
		return &ConfigError{Field: "Shadow.PadHoriz", Reason: "must not be negative"}
	case s.PadVert < 0:
		return &ConfigError{Field: "Shadow.PadVert", Reason: "must not be negative"}
	}
	return nil
}

// Apply returns a new canvas with img centered on the padded backdrop.
//
// When BlurRadius is positive, an opaque ShadowColor rectangle the size of
// img is drawn at img's position moved by the offsets, and the whole
// backdrop is blurred before img is composited on top.
func (s *ShadowConfig) Apply(img *Canvas) *Canvas {
	w := img.Width() + 2*s.PadHoriz
	h := img.Height() + 2*s.PadVert

	var out *Canvas
	if s.Background.Image != nil {
		out = NewCanvasFromImage(s.Background.Image).Resize(w, h)
	} else {
		out = NewCanvas(w, h)
		out.Fill(s.Background.Color)
	}

	if s.BlurRadius > 0 {
		shadow := s.ShadowColor
		shadow.A = 255
		out.FillRect(s.PadHoriz+s.OffsetX, s.PadVert+s.OffsetY, img.Width(), img.Height(), shadow)
		out.Blur(s.BlurRadius)
	}

	out.CompositeOver(img, s.PadHoriz, s.PadVert)
	return out
}
