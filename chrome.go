package codeshot

import (
	"image/color"
)

// controlColors are the fill and outline colors of the close, minimize and
// zoom buttons.
var controlColors = [3][2]color.NRGBA{
	{MustParseHex("#FF5F56"), MustParseHex("#E0443E")},
	{MustParseHex("#FFBD2E"), MustParseHex("#DEA123")},
	{MustParseHex("#27C93F"), MustParseHex("#1AAB29")},
}

// drawWindowControls paints the three window buttons into the title bar.
//
// The buttons are drawn at three times their size on a strip filled with
// the canvas background made transparent, then scaled down so the circle
// edges come out anti-aliased, and composited at (titleBarPad, titleBarPad).
func drawWindowControls(c *Canvas) {
	const s = supersampleScale

	bg := c.NRGBAAt(37, 37)
	bg.A = 0

	strip := NewCanvas(controlsWidth*s, controlsHeight*s)
	strip.Fill(bg)

	step := controlsRadius * 2
	spacer := step * 2
	cy := controlsHeight / 2
	for i, col := range controlColors {
		cx := i*spacer + step
		strip.FillCircle(cx*s, cy*s, (controlsRadius+1)*s, col[1])
		strip.FillCircle(cx*s, cy*s, controlsRadius*s, col[0])
	}

	c.CompositeOver(strip.Resize(controlsWidth, controlsHeight), titleBarPad, titleBarPad)
}

// roundCorners replaces the four corners of c with quarter circles of
// radius r filled with the canvas's bottom-right pixel, so the rounded
// edge blends into whatever is already there.
//
// The circle is drawn at twice the size with a one pixel margin and scaled
// down for anti-aliasing. Pixels outside the circle stay transparent.
func roundCorners(c *Canvas, r int) {
	w, h := c.Width(), c.Height()
	if r <= 0 || w < r || h < r {
		return
	}

	circle := NewCanvas((r+1)*4, (r+1)*4)
	circle.Fill(color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	circle.FillCircle((r+1)*2, (r+1)*2, r*2, c.NRGBAAt(w-1, h-1))
	circle = circle.Resize((r+1)*2, (r+1)*2)

	c.CopyFrom(circle.Crop(1, 1, r, r), 0, 0)
	c.CopyFrom(circle.Crop(r+1, 1, r, r), w-r, 0)
	c.CopyFrom(circle.Crop(1, r+1, r, r), 0, h-r)
	c.CopyFrom(circle.Crop(r+1, r+1, r, r), w-r, h-r)
}
