package codeshot

import (
	"image/color"
	"testing"
)

// countColor counts pixels of exactly col.
func countColor(c *Canvas, col color.NRGBA) int {
	n := 0
	for y := range c.Height() {
		for x := range c.Width() {
			if c.NRGBAAt(x, y) == col {
				n++
			}
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(2, 3, 4, 2, black)
	if n := countColor(c, black); n != 8 {
		t.Errorf("filled %d pixels, want 8", n)
	}

	c = NewCanvas(10, 10)
	c.FillRect(-5, 8, 7, 10, black)
	if n := countColor(c, black); n != 4 {
		t.Errorf("clipped rect filled %d pixels, want 4", n)
	}
}

func TestFillRectReplacesAlpha(t *testing.T) {
	c := solidCanvas(2, 2, white)
	c.FillRect(0, 0, 1, 1, transparent)
	if got := c.NRGBAAt(0, 0); got != transparent {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

func TestHLine(t *testing.T) {
	c := NewCanvas(5, 2)
	c.HLine(3, 1, 1, black)
	for x := range 5 {
		want := x >= 1 && x <= 3
		if got := c.NRGBAAt(x, 1) == black; got != want {
			t.Errorf("pixel %d set = %v, want %v", x, got, want)
		}
	}
	c.HLine(-10, 10, 5, black)
	c.HLine(-10, 10, -1, black)
}

func TestFillCircle(t *testing.T) {
	tests := []struct {
		r         int
		min, most int
	}{
		{0, 1, 1},
		{1, 5, 9},
		{10, 280, 370},
	}
	for _, tt := range tests {
		c := NewCanvas(41, 41)
		c.FillCircle(20, 20, tt.r, black)
		n := countColor(c, black)
		if n < tt.min || n > tt.most {
			t.Errorf("r=%d filled %d pixels, want [%d,%d]", tt.r, n, tt.min, tt.most)
		}

		// The disk is symmetric about both axes through its center.
		for y := range 41 {
			for x := range 41 {
				p := c.NRGBAAt(x, y)
				if p != c.NRGBAAt(40-x, y) || p != c.NRGBAAt(x, 40-y) {
					t.Fatalf("r=%d: asymmetric at (%d,%d)", tt.r, x, y)
				}
			}
		}
	}
}

func TestFillCircleClipped(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillCircle(0, 0, 5, black)
	if c.NRGBAAt(0, 0) != black || c.NRGBAAt(9, 9) != transparent {
		t.Error("clipped circle drew the wrong pixels")
	}
	c.FillCircle(5, 5, -1, white)
	if countColor(c, white) != 0 {
		t.Error("negative radius drew pixels")
	}
}
