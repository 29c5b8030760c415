package text

// BuiltinShaper maps each rune to one glyph with its own fixed advance.
// It performs no ligature substitution, kerning or reordering, which is
// what monospace code rendering usually wants.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	if text == "" || face == nil {
		return nil, nil
	}

	result := make([]ShapedGlyph, 0, len(text))
	cluster := 0
	for _, r := range text {
		gid, ok := face.GlyphIndex(r)
		if !ok {
			slogger().Debug("text: no glyph for rune, skipping", "rune", string(r), "font", face.Source().Name())
			cluster++
			continue
		}
		result = append(result, ShapedGlyph{
			GID:     gid,
			Cluster: cluster,
			Advance: face.Advance(gid),
		})
		cluster++
	}
	return result, nil
}
