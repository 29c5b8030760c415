package codeshot

import (
	"image"
	"image/color"
)

// FillRect sets the w×h rectangle at (x, y) to col, clipped to the canvas.
// The pixels are replaced, not blended.
func (c *Canvas) FillRect(x, y, w, h int, col color.NRGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	for j := r.Min.Y; j < r.Max.Y; j++ {
		c.HLine(r.Min.X, r.Max.X-1, j, col)
	}
}

// HLine sets the pixels from x0 to x1 inclusive on row y to col,
// clipped to the canvas.
func (c *Canvas) HLine(x0, x1, y int, col color.NRGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= c.Height() {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.Width()-1)
	for x := x0; x <= x1; x++ {
		o := c.img.PixOffset(x, y)
		p := c.img.Pix[o : o+4 : o+4]
		p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
	}
}

// FillCircle fills a disk of radius r centered at (cx, cy) with col using
// the midpoint circle algorithm, one horizontal span per scanline pair.
// The pixels are replaced, not blended.
func (c *Canvas) FillCircle(cx, cy, r int, col color.NRGBA) {
	if r < 0 {
		return
	}
	x, y := 0, r
	p := 1 - r
	for x <= y {
		c.HLine(cx-x, cx+x, cy+y, col)
		c.HLine(cx-y, cx+y, cy+x, col)
		c.HLine(cx-x, cx+x, cy-y, col)
		c.HLine(cx-y, cx+y, cy-x, col)

		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}
