package codeshot

import (
	"image/color"
	"testing"
)

var testTheme = Theme{
	Foreground: color.NRGBA{0xF8, 0xF8, 0xF2, 0xFF},
	Background: color.NRGBA{0x28, 0x2A, 0x36, 0xFF},
}

// sampleDoc returns a three-line highlighted document.
func sampleDoc() Document {
	fg := testTheme.Foreground
	kw := color.NRGBA{0xFF, 0x79, 0xC6, 0xFF}
	return Document{
		{{Foreground: kw, Style: Bold, Text: "fn"}, {Foreground: fg, Text: " main() {"}},
		{{Foreground: fg, Text: "    println!();"}},
		{{Foreground: fg, Text: "}"}},
	}
}

// plainDoc returns n lines of short text.
func plainDoc(n int) Document {
	doc := make(Document, n)
	for i := range doc {
		doc[i] = Line{{Foreground: testTheme.Foreground, Text: "x := 1"}}
	}
	return doc
}

// plainConfig is DefaultConfig without any chrome.
func plainConfig() Config {
	cfg := DefaultConfig()
	cfg.WindowControls = false
	cfg.RoundCorner = false
	return cfg
}

func newTestRenderer(t *testing.T, cfg Config) *Renderer {
	t.Helper()

	r, err := NewRenderer(cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

// solidCanvas returns a w×h canvas filled with c.
func solidCanvas(w, h int, c color.NRGBA) *Canvas {
	out := NewCanvas(w, h)
	out.Fill(c)
	return out
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}
