package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// Use it when ligatures (=>, !=, ->) and kerning matter; code fonts such as
// Fira Code only show their ligatures through a real shaper.
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// read-only and cached per FontSource; a lightweight font.Face is created
// per Shape call. HarfbuzzShaper instances are pooled because they carry
// mutable buffers.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	if text == "" || face == nil {
		return nil, nil
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrShaping, face.Source().Name(), err)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs), nil
}

// getOrCreateFont returns a cached go-text font.Font for the given source.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	parsed, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}

	s.fontCache[source] = parsed.Font
	return parsed.Font, nil
}

// detectScript returns the script of the first non-space rune.
// Runs are already split by script class before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output to ShapedGlyphs, dropping .notdef.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, 0, len(glyphs))
	for _, g := range glyphs {
		if g.GlyphID == 0 {
			continue
		}
		result = append(result, ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph ids are 16-bit
			Cluster: g.TextIndex(),
			XOffset: g.XOffset.Round(),
			YOffset: -g.YOffset.Round(),
			Advance: g.Advance.Ceil(),
		})
	}
	return result
}

