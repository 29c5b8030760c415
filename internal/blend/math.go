package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8 (Alvy Ray Smith).
// Exact for every product of two bytes.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255, truncating.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// addClamp adds a signed delta to a byte, saturating at 0 and 255.
func addClamp(v byte, delta int) byte {
	s := int(v) + delta
	switch {
	case s < 0:
		return 0
	case s > 255:
		return 255
	default:
		return byte(s)
	}
}
