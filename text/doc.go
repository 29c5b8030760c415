// Package text turns highlighted source lines into positioned glyph runs.
//
// The pipeline mirrors the separation used throughout codeshot:
//
//   - FontSource: heavyweight parsed font file, shared and read-only
//   - Face: a FontSource at a specific point size (metrics, advances, masks)
//   - Family: the four style variants of one typeface, falling back to Regular
//   - FontSet: a primary family plus an optional secondary family for non-ASCII text
//   - Shaper: turns a run of text into glyph ids (BuiltinShaper or GoTextShaper)
//   - Layouter: splits spans into script runs and positions them on a line
//
// # Example usage
//
//	fonts, err := text.DefaultFontSet(26)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l := text.NewLayouter(fonts, nil)
//	cmds, width := l.Layout(line, 25, 25)
//	for _, cmd := range cmds {
//	    l.Draw(img, cmd)
//	}
//
// Font and shaping failures never abort a line: a run falls back to the
// Regular style of its family, and characters without a glyph are skipped.
package text
