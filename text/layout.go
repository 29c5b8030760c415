package text

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// PositionedGlyph is a shaped glyph placed relative to its command's origin.
type PositionedGlyph struct {
	GID GlyphID
	X   int
	Y   int
}

// GlyphCommand is one run of text with a single style and script class,
// ready to draw. X and Y are the top-left of the run inside its line band.
type GlyphCommand struct {
	X, Y   int
	Color  color.NRGBA
	Style  FontStyle
	Text   string
	Face   *Face
	Glyphs []PositionedGlyph

	advance int
}

// Width returns the horizontal extent of the run in pixels.
func (c GlyphCommand) Width() int {
	return c.advance
}

// Layouter turns styled lines into glyph commands.
//
// Layouter holds no mutable state after construction and is safe for
// concurrent use as long as its Shaper is.
type Layouter struct {
	fonts   *FontSet
	shaper  Shaper
	builtin BuiltinShaper
}

// NewLayouter creates a Layouter. A nil shaper selects BuiltinShaper.
func NewLayouter(fonts *FontSet, shaper Shaper) *Layouter {
	l := &Layouter{fonts: fonts, shaper: shaper}
	if l.shaper == nil {
		l.shaper = &l.builtin
	}
	return l
}

// Fonts returns the font set used by the layouter.
func (l *Layouter) Fonts() *FontSet {
	return l.fonts
}

// LineHeight returns the pixel height of one line of text.
func (l *Layouter) LineHeight() int {
	return l.fonts.Height()
}

// Layout lays out one line starting at (x, y) and returns its commands
// together with the x coordinate just past the last glyph.
//
// Every span is split into runs of ASCII and non-ASCII runes; each run
// becomes one command using the primary or secondary family. Trailing
// newlines are ignored and empty runs emit nothing.
func (l *Layouter) Layout(line Line, x, y int) ([]GlyphCommand, int) {
	var cmds []GlyphCommand
	for _, span := range line {
		s := strings.TrimRight(norm.NFC.String(span.Text), "\r\n")
		for _, run := range splitRuns(s) {
			cmd := l.layoutRun(run.text, run.ascii, span.Style)
			if len(cmd.Glyphs) == 0 && cmd.advance == 0 {
				continue
			}
			cmd.X, cmd.Y = x, y
			cmd.Color = span.Foreground
			x += cmd.advance
			cmds = append(cmds, cmd)
		}
	}
	return cmds, x
}

// TextWidth returns the advance of s laid out in the primary family.
func (l *Layouter) TextWidth(s string, style FontStyle) int {
	_, w := l.Layout(Line{{Style: style, Text: s}}, 0, 0)
	return w
}

func (l *Layouter) layoutRun(s string, ascii bool, style FontStyle) GlyphCommand {
	face := l.fonts.Face(style, ascii)
	glyphs, err := l.shaper.Shape(s, face)
	if err != nil {
		fallback := l.fonts.Fallback(face)
		slogger().Warn("text: shaping failed, retrying with regular face",
			"font", face.Source().Name(), "style", style, "err", err)
		face = fallback
		glyphs, err = l.shaper.Shape(s, face)
	}
	if err != nil {
		slogger().Warn("text: shaping failed, using builtin shaper",
			"font", face.Source().Name(), "err", err)
		glyphs, _ = l.builtin.Shape(s, face)
	}

	cmd := GlyphCommand{
		Style:  style,
		Text:   s,
		Face:   face,
		Glyphs: make([]PositionedGlyph, 0, len(glyphs)),
	}
	pen := 0
	for _, g := range glyphs {
		cmd.Glyphs = append(cmd.Glyphs, PositionedGlyph{
			GID: g.GID,
			X:   pen + g.XOffset,
			Y:   g.YOffset,
		})
		pen += g.Advance
	}
	cmd.advance = pen
	return cmd
}

type run struct {
	text  string
	ascii bool
}

// splitRuns splits s into maximal runs of ASCII and non-ASCII runes.
func splitRuns(s string) []run {
	var runs []run
	start := 0
	for start < len(s) {
		ascii := s[start] < utf8.RuneSelf
		end := start
		for end < len(s) {
			r, size := utf8.DecodeRuneInString(s[end:])
			if (r < utf8.RuneSelf) != ascii {
				break
			}
			end += size
		}
		runs = append(runs, run{text: s[start:end], ascii: ascii})
		start = end
	}
	return runs
}
