package text

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
)

// Family groups the style variants of one typeface.
// Missing variants resolve to the Regular source.
type Family struct {
	sources [4]*FontSource
}

// NewFamily creates a family from its Regular source.
func NewFamily(regular *FontSource) (*Family, error) {
	if regular == nil {
		return nil, ErrNoRegular
	}
	f := &Family{}
	f.sources[Regular] = regular
	return f, nil
}

// With registers the source for a style and returns the family.
// A nil source is ignored, so the style keeps falling back to Regular.
func (f *Family) With(style FontStyle, src *FontSource) *Family {
	if src != nil && int(style) < len(f.sources) {
		f.sources[style] = src
	}
	return f
}

// Source returns the source for style, or the Regular source when the
// family lacks that variant.
func (f *Family) Source(style FontStyle) *FontSource {
	if int(style) < len(f.sources) && f.sources[style] != nil {
		return f.sources[style]
	}
	return f.sources[Regular]
}

// Has reports whether the family carries its own variant for style.
func (f *Family) Has(style FontStyle) bool {
	return int(style) < len(f.sources) && f.sources[style] != nil
}

// Name returns the family name of the Regular source.
func (f *Family) Name() string {
	return f.sources[Regular].Name()
}

// DefaultFamily returns the embedded Go Mono family with all four styles.
func DefaultFamily() (*Family, error) {
	data := [4][]byte{
		Regular:    gomono.TTF,
		Italic:     gomonoitalic.TTF,
		Bold:       gomonobold.TTF,
		BoldItalic: gomonobolditalic.TTF,
	}

	f := &Family{}
	for style, ttf := range data {
		src, err := NewFontSource(ttf)
		if err != nil {
			return nil, fmt.Errorf("text: embedded %s font: %w", FontStyle(style), err)
		}
		f.sources[style] = src
	}
	return f, nil
}

// LoadFamily loads a family from font files. Empty paths are skipped;
// the Regular path is required.
func LoadFamily(regular, italic, bold, boldItalic string) (*Family, error) {
	src, err := NewFontSourceFromFile(regular)
	if err != nil {
		return nil, err
	}
	f, err := NewFamily(src)
	if err != nil {
		return nil, err
	}

	variants := []struct {
		style FontStyle
		path  string
	}{{Italic, italic}, {Bold, bold}, {BoldItalic, boldItalic}}
	for _, v := range variants {
		style, path := v.style, v.path
		if path == "" {
			continue
		}
		src, err := NewFontSourceFromFile(path)
		if err != nil {
			slogger().Warn("text: style variant unavailable, using regular",
				"style", style.String(), "path", path, "err", err)
			continue
		}
		f.With(style, src)
	}
	return f, nil
}
