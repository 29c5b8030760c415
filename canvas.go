package codeshot

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/codeshot/internal/blend"
	"github.com/gogpu/codeshot/internal/filter"
)

// Canvas is a rectangular buffer of straight-alpha RGBA8 pixels with its
// origin at (0, 0). It implements image.Image.
//
// A Canvas is not safe for concurrent mutation.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas creates a transparent canvas of the given size.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// NewCanvasFromImage copies img into a new canvas.
func NewCanvasFromImage(img image.Image) *Canvas {
	if src, ok := img.(*Canvas); ok {
		return src.Clone()
	}

	b := img.Bounds()
	c := NewCanvas(b.Dx(), b.Dy())
	if src, ok := img.(*image.NRGBA); ok {
		// Straight-alpha source: copy rows so transparent pixels keep their color.
		for y := range b.Dy() {
			o := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(c.img.Pix[y*c.img.Stride:], src.Pix[o:o+b.Dx()*4])
		}
		return c
	}
	draw.Draw(c.img, c.img.Rect, img, b.Min, draw.Src)
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Pix returns the pixel data, four bytes per pixel, row-major.
// The slice aliases the canvas.
func (c *Canvas) Pix() []uint8 {
	return c.img.Pix
}

// NRGBA returns the canvas as an *image.NRGBA sharing its pixels.
func (c *Canvas) NRGBA() *image.NRGBA {
	return c.img
}

// NRGBAAt returns the pixel at (x, y), or transparent black outside the canvas.
func (c *Canvas) NRGBAAt(x, y int) color.NRGBA {
	return c.img.NRGBAAt(x, y)
}

// Set stores a pixel. Points outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	c.img.SetNRGBA(x, y, col)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.NRGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.NRGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	out := NewCanvas(c.Width(), c.Height())
	copy(out.img.Pix, c.img.Pix)
	return out
}

// CompositeOver alpha-composites src onto c with its top-left at (x, y).
// Opaque source pixels replace the destination and transparent ones leave
// it untouched.
//
// src must lie entirely inside c; anything else is a sizing bug and panics.
func (c *Canvas) CompositeOver(src *Canvas, x, y int) {
	c.mustContain(src, x, y, "CompositeOver")
	c.paste(src, x, y, blend.ModeOver)
}

// CopyFrom replaces the pixels under src, alpha included, with src's
// pixels placed at (x, y). src must lie entirely inside c.
func (c *Canvas) CopyFrom(src *Canvas, x, y int) {
	c.mustContain(src, x, y, "CopyFrom")
	c.paste(src, x, y, blend.ModeSource)
}

func (c *Canvas) mustContain(src *Canvas, x, y int, op string) {
	r := src.img.Rect.Add(image.Pt(x, y))
	if !r.In(c.img.Rect) {
		panic(fmt.Sprintf("codeshot: %s: %v does not fit in %dx%d canvas", op, r, c.Width(), c.Height()))
	}
}

func (c *Canvas) paste(src *Canvas, x, y int, mode blend.Mode) {
	w := src.Width() * 4
	for j := range src.Height() {
		s := src.img.Pix[j*src.img.Stride : j*src.img.Stride+w]
		o := c.img.PixOffset(x, y+j)
		d := c.img.Pix[o : o+w]
		if mode == blend.ModeSource {
			copy(d, s)
		} else {
			blend.OverRow(d, s)
		}
	}
}

// Crop returns a copy of the w×h region at (x, y), clipped to the canvas.
func (c *Canvas) Crop(x, y, w, h int) *Canvas {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	out := NewCanvas(r.Dx(), r.Dy())
	for j := range r.Dy() {
		o := c.img.PixOffset(r.Min.X, r.Min.Y+j)
		copy(out.img.Pix[j*out.img.Stride:], c.img.Pix[o:o+r.Dx()*4])
	}
	return out
}

// Resize returns the canvas scaled to w×h with bilinear filtering.
func (c *Canvas) Resize(w, h int) *Canvas {
	out := NewCanvas(w, h)
	draw.BiLinear.Scale(out.img, out.img.Rect, c.img, c.img.Rect, draw.Src, nil)
	return out
}

// Blur replaces the canvas contents with a box-blur approximation of a
// Gaussian blur of standard deviation sigma. A non-positive sigma is a no-op.
func (c *Canvas) Blur(sigma float64) {
	if sigma <= 0 {
		return
	}
	Logger().Debug("codeshot: blur",
		"width", c.Width(), "height", c.Height(), "sigma", sigma,
		"boxes", filter.BoxSizes(sigma, filter.Passes))
	c.img.Pix = filter.BoxBlur(c.img.Pix, c.Width(), c.Height(), sigma)
}
