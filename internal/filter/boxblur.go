package filter

import (
	"math"

	"github.com/gogpu/codeshot/internal/parallel"
)

// Passes is the number of box passes used to approximate a Gaussian.
const Passes = 3

// BoxSizes returns the n box widths whose successive application
// approximates a Gaussian of standard deviation sigma.
//
// The ideal width is sqrt(12σ²/n + 1). The lower width wl is its floor
// forced to odd, the upper width is wl+2, and the first m boxes use wl with
// m chosen so the summed variance matches σ².
func BoxSizes(sigma float64, n int) []int {
	if n <= 0 {
		return nil
	}
	nf := float64(n)
	ideal := math.Sqrt(12*sigma*sigma/nf + 1)

	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	wl = max(wl, 1)
	wu := wl + 2

	wlf := float64(wl)
	m := int(math.Round((12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)))
	m = min(max(m, 0), n)

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// BoxBlur blurs an RGBA8 buffer of width×height pixels with sigma and
// returns the result in a new buffer.
//
// A non-positive sigma returns pix itself without allocating, as does a
// buffer too short for the given size. pix is never modified.
func BoxBlur(pix []uint8, width, height int, sigma float64) []uint8 {
	if sigma <= 0 || width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return pix
	}

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	cur := pix
	for _, size := range BoxSizes(sigma, Passes) {
		r := (size - 1) / 2
		if r == 0 {
			continue
		}
		cur = horizontalPass(pool, cur, width, height, r)
		cur = verticalPass(pool, cur, width, height, r)
	}

	if len(cur) > 0 && &cur[0] == &pix[0] {
		return append([]uint8(nil), pix...)
	}
	return cur
}

// horizontalPass box-blurs every row with radius r. Each task writes the
// row of out it was handed and nothing else.
func horizontalPass(pool *parallel.WorkerPool, src []uint8, width, height, r int) []uint8 {
	stride := width * 4
	out := make([]uint8, len(src))
	pool.ForEach(height, func(y int) {
		row := out[y*stride : (y+1)*stride : (y+1)*stride]
		boxLine(row, src, y*stride, 4, width, r)
	})
	return out
}

// verticalPass box-blurs every column with radius r. Each task fills its
// own column buffer; columns are interleaved into the result after the join.
func verticalPass(pool *parallel.WorkerPool, src []uint8, width, height, r int) []uint8 {
	stride := width * 4
	cols := make([][]uint8, width)
	pool.ForEach(width, func(x int) {
		col := make([]uint8, height*4)
		boxLine(col, src, x*4, stride, height, r)
		cols[x] = col
	})

	out := make([]uint8, len(src))
	for x, col := range cols {
		for y := range height {
			copy(out[y*stride+x*4:y*stride+x*4+4], col[y*4:y*4+4])
		}
	}
	return out
}

// boxLine computes a running-sum box average of radius r over n pixels of
// src, starting at byte offset off and step bytes apart, into the packed
// RGBA dst. Indices outside [0, n) sample the nearest edge pixel.
func boxLine(dst, src []uint8, off, step, n, r int) {
	w := 2*r + 1
	half := w / 2
	at := func(i int) int {
		return off + clampInt(i, 0, n-1)*step
	}

	var sum [4]int
	for j := -r; j <= r; j++ {
		p := at(j)
		sum[0] += int(src[p])
		sum[1] += int(src[p+1])
		sum[2] += int(src[p+2])
		sum[3] += int(src[p+3])
	}

	for i := range n {
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8((sum[0] + half) / w) //nolint:gosec // average of bytes
		d[1] = uint8((sum[1] + half) / w) //nolint:gosec // average of bytes
		d[2] = uint8((sum[2] + half) / w) //nolint:gosec // average of bytes
		d[3] = uint8((sum[3] + half) / w) //nolint:gosec // average of bytes

		in, out := at(i+r+1), at(i-r)
		sum[0] += int(src[in]) - int(src[out])
		sum[1] += int(src[in+1]) - int(src[out+1])
		sum[2] += int(src[in+2]) - int(src[out+2])
		sum[3] += int(src[in+3]) - int(src[out+3])
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
