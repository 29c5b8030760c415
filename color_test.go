package codeshot

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#abb8c3", color.NRGBA{0xAB, 0xB8, 0xC3, 0xFF}},
		{"abb8c3", color.NRGBA{0xAB, 0xB8, 0xC3, 0xFF}},
		{"#FF5F56", color.NRGBA{0xFF, 0x5F, 0x56, 0xFF}},
		{"#fff", color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"#f008", color.NRGBA{0xFF, 0x00, 0x00, 0x88}},
		{"#282A3680", color.NRGBA{0x28, 0x2A, 0x36, 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "#12345z", "red"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	mustPanic(t, "MustParseHex(\"nope\")", func() { MustParseHex("nope") })
}

func TestMapStyle(t *testing.T) {
	if MapStyle(true, true) != BoldItalic || MapStyle(false, false) != Regular {
		t.Error("MapStyle does not match the text package")
	}
}
