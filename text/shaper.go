package text

// ShapedGlyph is one glyph produced by a Shaper, in pixels relative to the
// start of the run.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the run this glyph came from.
	Cluster int

	// XOffset and YOffset adjust the glyph from the pen position.
	XOffset, YOffset int

	// Advance is how far the pen moves after this glyph, in whole pixels.
	Advance int
}

// Shaper converts a run of text into glyphs for a face.
//
// Implementations provide different levels of shaping fidelity:
//   - BuiltinShaper: one glyph per rune, advance from the font's metrics
//   - GoTextShaper: HarfBuzz shaping with ligatures and kerning
//
// Runes the face cannot render must be omitted from the result.
// An error means the whole run could not be shaped with this face.
type Shaper interface {
	Shape(text string, face *Face) ([]ShapedGlyph, error)
}
