package blend

import "image/color"

// Over composites src over dst with straight alpha.
//
// An opaque source replaces the destination and a fully transparent one
// leaves it untouched. Otherwise:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
func Over(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}

	sa := uint32(src.A)
	da := uint32(dst.A)
	// Destination weight scaled by 255: dstA*(255-srcA).
	dw := da * (255 - sa)
	oa := sa*255 + dw // outA * 255
	if oa == 0 {
		return color.NRGBA{}
	}

	ch := func(s, d uint8) uint8 {
		num := uint32(s)*sa*255 + uint32(d)*dw
		return uint8((num + oa/2) / oa) //nolint:gosec // weighted mean of bytes
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: byte(sa) + mulDiv255(dst.A, 255-src.A),
	}
}

// OverRow composites a packed RGBA8 row src over dst in place.
// Both slices must have the same length, a multiple of four.
func OverRow(dst, src []uint8) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		switch src[i+3] {
		case 0:
			continue
		case 255:
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]
		c := Over(
			color.NRGBA{R: d[0], G: d[1], B: d[2], A: d[3]},
			color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]},
		)
		d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
	}
}
