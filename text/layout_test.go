package text

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
)

var red = color.NRGBA{R: 255, A: 255}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayouter(testFontSet(t), nil)

	tests := []struct {
		name string
		line Line
	}{
		{"nil line", nil},
		{"empty span", Line{{Text: ""}}},
		{"newline only", Line{{Text: "\n"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, x := l.Layout(tt.line, 30, 7)
			if len(cmds) != 0 {
				t.Errorf("got %d commands, want 0", len(cmds))
			}
			if x != 30 {
				t.Errorf("x = %d, want 30", x)
			}
		})
	}
}

func TestLayoutSpans(t *testing.T) {
	fs := testFontSet(t)
	l := NewLayouter(fs, nil)
	boldWidth := l.TextWidth("func", Bold)
	restWidth := l.TextWidth(" main()", Regular)

	line := Line{
		{Foreground: red, Style: Bold, Text: "func"},
		{Foreground: color.NRGBA{A: 255}, Text: " main()\n"},
	}
	cmds, x := l.Layout(line, 10, 50)

	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	want := []struct {
		x     int
		text  string
		style FontStyle
	}{
		{10, "func", Bold},
		{10 + boldWidth, " main()", Regular},
	}
	for i, w := range want {
		c := cmds[i]
		if c.X != w.x || c.Y != 50 || c.Text != w.text || c.Style != w.style {
			t.Errorf("cmd %d = {X:%d Y:%d %q %v}, want {X:%d Y:50 %q %v}",
				i, c.X, c.Y, c.Text, c.Style, w.x, w.text, w.style)
		}
	}
	if cmds[0].Color != red {
		t.Errorf("cmd 0 color = %v, want %v", cmds[0].Color, red)
	}
	if cmds[0].Face != fs.Face(Bold, true) {
		t.Error("cmd 0 not laid out with the bold face")
	}
	if x != 10+boldWidth+restWidth {
		t.Errorf("x = %d, want %d", x, 10+boldWidth+restWidth)
	}
}

func TestLayoutCursorMonotonic(t *testing.T) {
	l := NewLayouter(testFontSet(t), nil)

	line := Line{{Text: "a"}, {Text: "é世"}, {Text: "b\tc"}, {Text: ""}, {Text: "ü"}}
	cmds, end := l.Layout(line, 0, 0)

	x := 0
	for i, c := range cmds {
		if c.X != x {
			t.Errorf("cmd %d at x=%d, want %d", i, c.X, x)
		}
		if c.Width() < 0 {
			t.Errorf("cmd %d has negative width", i)
		}
		for j := 1; j < len(c.Glyphs); j++ {
			if c.Glyphs[j].X < c.Glyphs[j-1].X {
				t.Errorf("cmd %d glyph %d moved left", i, j)
			}
		}
		x += c.Width()
	}
	if end != x {
		t.Errorf("end = %d, want %d", end, x)
	}
}

func TestLayoutSplitsScripts(t *testing.T) {
	mono, err := DefaultFamily()
	if err != nil {
		t.Fatal(err)
	}
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	prop, err := NewFamily(src)
	if err != nil {
		t.Fatal(err)
	}
	fs, err := NewFontSet(mono, 26, prop, 26)
	if err != nil {
		t.Fatal(err)
	}
	l := NewLayouter(fs, nil)

	cmds, _ := l.Layout(Line{{Text: "ab\u00e9cd"}}, 0, 0)

	got := make([]string, len(cmds))
	for i, c := range cmds {
		got[i] = c.Text
		wantFace := fs.Face(Regular, c.Text != "\u00e9")
		if c.Face != wantFace {
			t.Errorf("run %q used %s", c.Text, c.Face.Source().Name())
		}
	}
	if diff := cmp.Diff([]string{"ab", "\u00e9", "cd"}, got); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutSkipsUnrenderableRun(t *testing.T) {
	l := NewLayouter(testFontSet(t), nil)

	cmds, x := l.Layout(Line{{Text: "a世b"}}, 0, 0)
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if x != 2*l.TextWidth("a", Regular) {
		t.Errorf("x = %d, want two advances", x)
	}
}

func TestLayoutNormalizesNFC(t *testing.T) {
	l := NewLayouter(testFontSet(t), nil)

	cmds, _ := l.Layout(Line{{Text: "é"}}, 0, 0)
	var glyphs int
	for _, c := range cmds {
		glyphs += len(c.Glyphs)
	}
	if glyphs != 1 {
		t.Errorf("decomposed é produced %d glyphs, want 1", glyphs)
	}
}

func TestLayoutShapingFallback(t *testing.T) {
	fs := testFontSet(t)
	bold := fs.Face(Bold, true)
	regular := fs.Face(Regular, true)

	t.Run("regular face", func(t *testing.T) {
		s := &failingShaper{fail: map[*Face]bool{bold: true}}
		l := NewLayouter(fs, s)

		cmds, _ := l.Layout(Line{{Style: Bold, Text: "x"}}, 0, 0)
		if len(cmds) != 1 || cmds[0].Face != regular {
			t.Fatalf("expected one command on the regular face, got %+v", cmds)
		}
		if cmds[0].Style != Bold {
			t.Errorf("Style = %v, want the span's style", cmds[0].Style)
		}
		if s.calls != 2 {
			t.Errorf("shaper calls = %d, want 2", s.calls)
		}
	})

	t.Run("builtin shaper", func(t *testing.T) {
		s := &failingShaper{fail: map[*Face]bool{bold: true, regular: true}}
		l := NewLayouter(fs, s)

		cmds, x := l.Layout(Line{{Style: Bold, Text: "xy"}}, 0, 0)
		if len(cmds) != 1 || len(cmds[0].Glyphs) != 2 {
			t.Fatalf("expected builtin shaping to recover, got %+v", cmds)
		}
		if x != 2*regular.Advance(cmds[0].Glyphs[0].GID) {
			t.Errorf("x = %d", x)
		}
	})
}

func TestTextWidth(t *testing.T) {
	l := NewLayouter(testFontSet(t), NewGoTextShaper())

	w1 := l.TextWidth("0", Regular)
	if w1 <= 0 {
		t.Fatalf("TextWidth(\"0\") = %d", w1)
	}
	if w := l.TextWidth("000", Regular); w != 3*w1 {
		t.Errorf("TextWidth(\"000\") = %d, want %d", w, 3*w1)
	}
	if w := l.TextWidth("", Bold); w != 0 {
		t.Errorf("TextWidth(\"\") = %d, want 0", w)
	}
}
