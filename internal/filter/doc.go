// Package filter implements the box-blur approximation of a Gaussian blur
// used for drop shadows.
//
// Three box passes of analytically chosen widths give a close Gaussian
// approximation in time linear in the pixel count, independent of sigma:
//   - each pass runs a horizontal then a vertical running sum
//   - samples past the image edge repeat the nearest edge pixel
//   - channels are blurred straight (not premultiplied by alpha)
//
// Rows and columns of a pass are independent and run on a worker pool;
// every task writes only the row or column it owns.
package filter
