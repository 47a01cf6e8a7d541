package core

import "image"

// Framebuffer is a fixed-size grid of packed pixels in row-major order.
// The demo loop overwrites it every frame, so presenters must copy or fully
// consume it before the next step.
type Framebuffer struct {
	width  int
	height int
	pix    []Color
}

// NewFramebuffer creates a black framebuffer with the given pixel dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Bounds returns the pixel rectangle covered by the framebuffer.
func (f *Framebuffer) Bounds() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// Pix returns the underlying pixel slice. Writes go straight to the buffer.
func (f *Framebuffer) Pix() []Color {
	return f.pix
}

// At returns the pixel at (x, y). Panics when out of bounds.
func (f *Framebuffer) At(x, y int) Color {
	return f.pix[x+y*f.width]
}

// Set writes the pixel at (x, y). Panics when out of bounds.
func (f *Framebuffer) Set(x, y int, c Color) {
	f.pix[x+y*f.width] = c
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c Color) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// WriteRGBA copies the framebuffer into dst as opaque 8-bit RGBA.
// dst must hold at least 4*Width*Height bytes.
func (f *Framebuffer) WriteRGBA(dst []byte) {
	for i, c := range f.pix {
		r, g, b := c.RGB()
		o := i * 4
		dst[o+0] = r
		dst[o+1] = g
		dst[o+2] = b
		dst[o+3] = 0xff
	}
}

// Image returns a copy of the framebuffer as an image.RGBA.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	f.WriteRGBA(img.Pix)
	return img
}
