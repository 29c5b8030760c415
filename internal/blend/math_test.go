package blend

import "testing"

// TestDiv255 checks Alvy Ray Smith's formula against integer division
// for every product of two bytes.
func TestDiv255(t *testing.T) {
	for x := 0; x <= 255*255; x++ {
		if got := int(div255(uint16(x))); got != x/255 {
			t.Fatalf("div255(%d) = %d, want %d", x, got, x/255)
		}
	}
}

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{128, 128, 64},
		{200, 100, 78},
		{1, 255, 1},
		{127, 127, 63},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddClamp(t *testing.T) {
	tests := []struct {
		v     byte
		delta int
		want  byte
	}{
		{10, 40, 50},
		{230, 40, 255},
		{255, 40, 255},
		{30, -20, 10},
		{10, -20, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := addClamp(tt.v, tt.delta); got != tt.want {
			t.Errorf("addClamp(%d, %d) = %d, want %d", tt.v, tt.delta, got, tt.want)
		}
	}
}
