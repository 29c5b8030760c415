package text

// FontSet is the font configuration consumed by layout: a primary family
// (usually monospace) and an optional secondary family used for non-ASCII
// runs, each at its own size.
type FontSet struct {
	primary       *Family
	primarySize   float64
	secondary     *Family
	secondarySize float64

	faces [2][4]*Face
}

// NewFontSet creates a font set. secondary may be nil, in which case all
// text renders with the primary family.
func NewFontSet(primary *Family, primarySize float64, secondary *Family, secondarySize float64) (*FontSet, error) {
	if primary == nil {
		return nil, ErrNoPrimary
	}
	if primarySize <= 0 || (secondary != nil && secondarySize <= 0) {
		return nil, ErrInvalidSize
	}

	fs := &FontSet{
		primary:       primary,
		primarySize:   primarySize,
		secondary:     secondary,
		secondarySize: secondarySize,
	}
	for style := Regular; style <= BoldItalic; style++ {
		fs.faces[0][style] = newFace(primary.Source(style), primarySize)
		if secondary != nil {
			fs.faces[1][style] = newFace(secondary.Source(style), secondarySize)
		}
	}
	return fs, nil
}

// DefaultFontSet returns the embedded Go Mono family at size with no
// secondary family.
func DefaultFontSet(size float64) (*FontSet, error) {
	fam, err := DefaultFamily()
	if err != nil {
		return nil, err
	}
	return NewFontSet(fam, size, nil, 0)
}

// Face selects the face for a run by style and script class.
func (fs *FontSet) Face(style FontStyle, ascii bool) *Face {
	if style > BoldItalic {
		style = Regular
	}
	if ascii || fs.secondary == nil {
		return fs.faces[0][style]
	}
	return fs.faces[1][style]
}

// Fallback returns the Regular face of the family that face belongs to.
func (fs *FontSet) Fallback(face *Face) *Face {
	for i := range fs.faces {
		for _, f := range fs.faces[i] {
			if f == face {
				return fs.faces[i][Regular]
			}
		}
	}
	return fs.faces[0][Regular]
}

// HasSecondary reports whether a secondary family is configured.
func (fs *FontSet) HasSecondary() bool {
	return fs.secondary != nil
}

// Height returns the line height in pixels: the tallest Regular face of
// the configured families.
func (fs *FontSet) Height() int {
	h := fs.faces[0][Regular].Height()
	if fs.secondary != nil {
		h = max(h, fs.faces[1][Regular].Height())
	}
	return h
}

// DescentPx returns the primary Regular descent in pixels. Glyph baselines
// sit this far above the bottom of the line band.
func (fs *FontSet) DescentPx() int {
	return fs.faces[0][Regular].DescentPx()
}
