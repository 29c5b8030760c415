package text

import (
	"image"
	"image/color"
)

// Draw renders a glyph command onto dst.
//
// Each glyph's coverage mask is placed on the line's baseline, which sits
// font-height minus descent below cmd.Y. A coverage value v blends the
// destination toward the command color on all four channels:
// dst = dst*(1-v) + color*v. Pixels outside dst are clipped.
func (l *Layouter) Draw(dst *image.NRGBA, cmd GlyphCommand) {
	if dst == nil || cmd.Face == nil {
		return
	}
	baseline := cmd.Y + l.fonts.Height() - l.fonts.DescentPx()
	for _, g := range cmd.Glyphs {
		mask := cmd.Face.Mask(g.GID)
		if mask == nil {
			continue
		}
		drawMask(dst, mask, image.Pt(cmd.X+g.X, baseline+g.Y), cmd.Color)
	}
}

// drawMask blends col into dst through mask, with the mask's origin at at.
func drawMask(dst *image.NRGBA, mask *image.Alpha, at image.Point, col color.NRGBA) {
	area := mask.Bounds().Add(at).Intersect(dst.Rect)
	if area.Empty() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			v := uint32(mask.AlphaAt(x-at.X, y-at.Y).A)
			if v == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			p := dst.Pix[i : i+4 : i+4]
			p[0] = lerp8(p[0], col.R, v)
			p[1] = lerp8(p[1], col.G, v)
			p[2] = lerp8(p[2], col.B, v)
			p[3] = lerp8(p[3], col.A, v)
		}
	}
}

// lerp8 returns d*(255-v)/255 + c*v/255, rounded.
func lerp8(d, c uint8, v uint32) uint8 {
	return uint8((uint32(d)*(255-v) + uint32(c)*v + 127) / 255) //nolint:gosec // result <= 255
}
