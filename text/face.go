package text

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// GlyphID is a glyph index within a font. Zero is the .notdef glyph.
type GlyphID uint16

// Metrics holds font-level metrics in design units.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line (positive).
	Descent float64

	// UnitsPerEm is the design grid size.
	UnitsPerEm float64
}

// Face represents a font source at a specific point size.
// Face is immutable and safe for concurrent use; every call uses its own
// sfnt buffer.
type Face struct {
	source *FontSource
	size   float64
	ppem   fixed.Int26_6
}

func newFace(s *FontSource, size float64) *Face {
	return &Face{
		source: s,
		size:   size,
		ppem:   floatToFixed(size),
	}
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the unscaled font metrics.
func (f *Face) Metrics() Metrics {
	upem := f.source.font.UnitsPerEm()
	m, err := f.source.font.Metrics(nil, fixed.I(int(upem)), font.HintingNone)
	if err != nil {
		return Metrics{UnitsPerEm: float64(upem)}
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		UnitsPerEm: float64(upem),
	}
}

// Height returns the pixel height of a line of this face:
// ceil((ascent + descent) / unitsPerEm * size).
func (f *Face) Height() int {
	m := f.Metrics()
	if m.UnitsPerEm == 0 {
		return 0
	}
	return int(math.Ceil((m.Ascent + m.Descent) / m.UnitsPerEm * f.size))
}

// DescentPx returns the descent scaled to this face's size, rounded to pixels.
func (f *Face) DescentPx() int {
	m := f.Metrics()
	if m.UnitsPerEm == 0 {
		return 0
	}
	return int(math.Round(m.Descent / m.UnitsPerEm * f.size))
}

// GlyphIndex returns the glyph for r, and false when the font has none.
func (f *Face) GlyphIndex(r rune) (GlyphID, bool) {
	gid, err := f.source.font.GlyphIndex(nil, r)
	if err != nil || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	_, ok := f.GlyphIndex(r)
	return ok
}

// Advance returns the horizontal advance of a glyph in whole pixels, rounded up.
func (f *Face) Advance(gid GlyphID) int {
	adv, err := f.source.font.GlyphAdvance(nil, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return adv.Ceil()
}

// Bounds returns the pixel raster bounds of a glyph relative to its origin
// on the baseline. Y grows downwards.
func (f *Face) Bounds(gid GlyphID) image.Rectangle {
	b, _, err := f.source.font.GlyphBounds(nil, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return image.Rectangle{}
	}
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// Mask rasterizes a glyph into an anti-aliased coverage mask.
// The mask's bounds are in pixels relative to the glyph origin on the
// baseline. Glyphs without ink (spaces) return nil.
func (f *Face) Mask(gid GlyphID) *image.Alpha {
	segments, err := f.source.font.LoadGlyph(nil, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil || len(segments) == 0 {
		return nil
	}

	b := segments.Bounds()
	rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if rect.Empty() {
		return nil
	}

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			r.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(rect)
	r.Draw(mask, rect, image.Opaque, image.Point{})
	return mask
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
