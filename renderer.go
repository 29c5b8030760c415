package codeshot

import (
	"fmt"
	"strings"

	"github.com/gogpu/codeshot/internal/blend"
	"github.com/gogpu/codeshot/text"
)

// DrawableSet is the laid-out document: every glyph command plus the
// extents that size the canvas. It is computed before any pixel is written.
type DrawableSet struct {
	// MaxWidth is the rightmost pen position of any line or of the title bar.
	MaxWidth int

	// MaxLineIndex is the zero-based index of the last line.
	MaxLineIndex int

	// Commands are the code glyph runs in document order.
	Commands []text.GlyphCommand

	// Title holds the window title runs, if a title is configured.
	Title []text.GlyphCommand
}

// Renderer turns highlighted documents into screenshot images.
// A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	cfg      Config
	layouter *text.Layouter
}

// NewRenderer validates cfg and resolves its fonts.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fonts := cfg.Fonts
	if fonts == nil {
		var err error
		fonts, err = text.DefaultFontSet(defaultFontSize)
		if err != nil {
			return nil, fmt.Errorf("codeshot: default fonts: %w", err)
		}
	}

	cfg.HighlightLines = append([]int(nil), cfg.HighlightLines...)
	return &Renderer{
		cfg:      cfg,
		layouter: text.NewLayouter(fonts, cfg.Shaper),
	}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// FontHeight returns the pixel height of one line of text.
func (r *Renderer) FontHeight() int {
	return r.layouter.LineHeight()
}

// codePadTop is the extra space above the code taken by the title bar.
func (r *Renderer) codePadTop() int {
	if r.cfg.titleBar() {
		return titleBarHeight
	}
	return 0
}

// lineY returns the top of the band of line i.
func (r *Renderer) lineY(i int) int {
	return i*(r.FontHeight()+r.cfg.LinePad) + r.cfg.CodePad + r.codePadTop()
}

// gutterDigits returns the width in digits of the largest printed line
// number for a document of n lines.
func (r *Renderer) gutterDigits(n int) int {
	return decimalDigits(max(n, 1) + r.cfg.LineOffset - 1)
}

// gutterWidth returns how far the code is pushed right by the line numbers.
func (r *Renderer) gutterWidth(n int) int {
	if !r.cfg.LineNumber {
		return 0
	}
	zero := fmt.Sprintf("%*d", r.gutterDigits(n), 0)
	return 2*lineNumberPad + r.layouter.TextWidth(zero, text.Regular)
}

// Layout lays out every line of doc and the window title.
func (r *Renderer) Layout(doc Document, theme Theme) DrawableSet {
	var ds DrawableSet

	left := r.cfg.CodePad + r.gutterWidth(len(doc))
	for i, line := range doc {
		cmds, x := r.layouter.Layout(r.expandTabs(line), left, r.lineY(i))
		if len(cmds) > 0 {
			ds.MaxWidth = max(ds.MaxWidth, x)
		}
		ds.Commands = append(ds.Commands, cmds...)
	}
	ds.MaxLineIndex = max(len(doc)-1, 0)

	if r.cfg.WindowTitle != "" {
		offset := 0
		if r.cfg.WindowControls {
			offset = controlsWidth + titleBarPad
		}
		x0 := offset + titleBarPad
		y0 := titleBarPad + controlsHeight/2 - r.FontHeight()/2
		title := text.Line{{Foreground: theme.Foreground, Style: text.Bold, Text: r.cfg.WindowTitle}}
		cmds, x := r.layouter.Layout(title, x0, y0)
		ds.Title = cmds
		ds.MaxWidth = max(ds.MaxWidth, offset+(x-x0)+2*titleBarPad)
	}
	return ds
}

// CanvasSize returns the image size before any shadow is added.
func (r *Renderer) CanvasSize(ds DrawableSet) (w, h int) {
	w = max(ds.MaxWidth+r.cfg.CodePad, minCanvasWidth)
	h = r.lineY(ds.MaxLineIndex+1) + r.cfg.CodePad
	return w, h
}

// Render draws doc with theme. The layers are composited in order:
// background, highlighted lines, line numbers, code, window controls and
// title, rounded corners and finally the shadow.
func (r *Renderer) Render(doc Document, theme Theme) *Canvas {
	ds := r.Layout(doc, theme)
	w, h := r.CanvasSize(ds)
	Logger().Debug("codeshot: render",
		"lines", len(doc), "commands", len(ds.Commands), "width", w, "height", h)

	c := NewCanvas(w, h)
	c.Fill(theme.Background)

	r.drawHighlights(c, ds, theme)
	if r.cfg.LineNumber {
		r.drawLineNumbers(c, ds, len(doc), theme)
	}
	for _, cmd := range ds.Commands {
		r.layouter.Draw(c.NRGBA(), cmd)
	}
	if r.cfg.WindowControls {
		drawWindowControls(c)
	}
	for _, cmd := range ds.Title {
		r.layouter.Draw(c.NRGBA(), cmd)
	}
	if r.cfg.RoundCorner {
		roundCorners(c, cornerRadius)
	}
	if r.cfg.Shadow != nil {
		c = r.cfg.Shadow.Apply(c)
	}
	return c
}

func (r *Renderer) drawHighlights(c *Canvas, ds DrawableSet, theme Theme) {
	if len(r.cfg.HighlightLines) == 0 {
		return
	}
	band := NewCanvas(c.Width(), r.FontHeight()+r.cfg.LinePad)
	band.Fill(blend.Shift(theme.Background, highlightDelta))

	for _, n := range r.cfg.HighlightLines {
		if n < 1 || n > ds.MaxLineIndex+1 {
			continue
		}
		c.CompositeOver(band, 0, r.lineY(n-1))
	}
}

func (r *Renderer) drawLineNumbers(c *Canvas, ds DrawableSet, lines int, theme Theme) {
	col := blend.Shift(theme.Foreground, lineNumberDelta)
	digits := r.gutterDigits(lines)
	for i := 0; i <= ds.MaxLineIndex; i++ {
		num := text.Line{{Foreground: col, Text: fmt.Sprintf("%*d", digits, i+r.cfg.LineOffset)}}
		cmds, _ := r.layouter.Layout(num, r.cfg.CodePad, r.lineY(i))
		for _, cmd := range cmds {
			r.layouter.Draw(c.NRGBA(), cmd)
		}
	}
}

// expandTabs returns line with every tab replaced by TabWidth spaces.
func (r *Renderer) expandTabs(line Line) Line {
	tab := strings.Repeat(" ", r.cfg.TabWidth)
	var out Line
	for i, span := range line {
		if !strings.Contains(span.Text, "\t") {
			continue
		}
		if out == nil {
			out = append(Line(nil), line...)
		}
		span.Text = strings.ReplaceAll(span.Text, "\t", tab)
		out[i] = span
	}
	if out == nil {
		return line
	}
	return out
}

// decimalDigits returns the number of decimal digits in n, at least 1.
func decimalDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
