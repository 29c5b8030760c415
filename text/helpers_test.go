package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFontSet returns the embedded Go Mono font set at size 26.
func testFontSet(t *testing.T) *FontSet {
	t.Helper()

	fs, err := DefaultFontSet(26)
	if err != nil {
		t.Fatalf("DefaultFontSet: %v", err)
	}
	return fs
}

// testFace returns a Go Regular face at the given size.
func testFace(t *testing.T, size float64) *Face {
	t.Helper()

	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	face, err := src.Face(size)
	if err != nil {
		t.Fatalf("Face(%v): %v", size, err)
	}
	return face
}

// failingShaper fails for every face in fail and delegates otherwise.
type failingShaper struct {
	fail  map[*Face]bool
	calls int
}

func (s *failingShaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	s.calls++
	if s.fail[face] {
		return nil, ErrShaping
	}
	var b BuiltinShaper
	return b.Shape(text, face)
}
