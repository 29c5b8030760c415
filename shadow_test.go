package codeshot

import (
	"image"
	"image/color"
	"testing"
)

func TestShadowPaddingOnly(t *testing.T) {
	bg := MustParseHex("#abb8c3")
	s := &ShadowConfig{
		Background:  Background{Color: bg},
		ShadowColor: MustParseHex("#707070"),
		PadHoriz:    80,
		PadVert:     100,
	}

	r := newTestRenderer(t, plainConfig())
	inner := r.Render(sampleDoc(), testTheme)
	out := s.Apply(inner)

	if out.Width() != inner.Width()+160 || out.Height() != inner.Height()+200 {
		t.Fatalf("size = %dx%d, want %dx%d", out.Width(), out.Height(), inner.Width()+160, inner.Height()+200)
	}

	// A crisp boundary: backdrop right up to the padding, then the image.
	y := 100 + inner.Height()/2
	if got := out.NRGBAAt(79, y); got != bg {
		t.Errorf("left of image = %v, want backdrop %v", got, bg)
	}
	if got := out.NRGBAAt(80, y); got != inner.NRGBAAt(0, inner.Height()/2) {
		t.Errorf("image edge = %v, want %v", got, inner.NRGBAAt(0, inner.Height()/2))
	}
	if got := out.NRGBAAt(80+inner.Width(), y); got != bg {
		t.Errorf("right of image = %v, want backdrop", got)
	}
	if got := out.NRGBAAt(80, 99); got != bg {
		t.Errorf("above image = %v, want backdrop", got)
	}
}

func TestRenderWithShadowConfig(t *testing.T) {
	cfg := plainConfig()
	plain := newTestRenderer(t, cfg).Render(sampleDoc(), testTheme)

	cfg.Shadow = &ShadowConfig{Background: Background{Color: white}, PadHoriz: 80, PadVert: 100}
	out := newTestRenderer(t, cfg).Render(sampleDoc(), testTheme)

	if out.Width() != plain.Width()+160 || out.Height() != plain.Height()+200 {
		t.Errorf("size = %dx%d, want inner size + (160, 200)", out.Width(), out.Height())
	}
}

func TestShadowBlurred(t *testing.T) {
	inner := solidCanvas(40, 30, black)
	s := &ShadowConfig{
		Background:  Background{Color: white},
		ShadowColor: color.NRGBA{0x70, 0x70, 0x70, 0xFF},
		BlurRadius:  5,
		PadHoriz:    30,
		PadVert:     30,
		OffsetX:     6,
		OffsetY:     8,
	}
	out := s.Apply(inner)

	// The image itself sits on top, unblurred.
	if got := out.NRGBAAt(30, 30); got != black {
		t.Errorf("image corner = %v, want black", got)
	}
	// The shadow peeks out below-right of the image and fades to the backdrop.
	under := out.NRGBAAt(30+40+2, 30+30+2)
	if under.R >= 255 || under.R <= 0x70 {
		t.Errorf("shadow fringe = %v, want between shadow and backdrop", under)
	}
	if got := out.NRGBAAt(0, 0); got != white {
		t.Errorf("far corner = %v, want backdrop", got)
	}
	// Above-left the offset shadow does not reach as far.
	if above := out.NRGBAAt(30-4, 30-4); above.R <= under.R {
		t.Errorf("shadow above-left %v should be lighter than below-right %v", above, under)
	}
}

func TestShadowImageBackground(t *testing.T) {
	backdrop := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(backdrop.Pix); i += 4 {
		copy(backdrop.Pix[i:i+4], []uint8{10, 200, 30, 255})
	}
	s := &ShadowConfig{Background: Background{Color: white, Image: backdrop}, PadHoriz: 10, PadVert: 10}

	out := s.Apply(solidCanvas(5, 5, black))
	if got := out.NRGBAAt(1, 1); got != (color.NRGBA{10, 200, 30, 255}) {
		t.Errorf("backdrop = %v, want the resized image", got)
	}
	if out.Width() != 25 || out.Height() != 25 {
		t.Errorf("size = %dx%d", out.Width(), out.Height())
	}
}

func TestShadowKeepsTransparentCorners(t *testing.T) {
	inner := solidCanvas(10, 10, black)
	inner.Set(0, 0, color.NRGBA{})
	s := &ShadowConfig{Background: Background{Color: white}, PadHoriz: 2, PadVert: 2}

	out := s.Apply(inner)
	if got := out.NRGBAAt(2, 2); got != white {
		t.Errorf("transparent image pixel = %v, want backdrop showing through", got)
	}
}
