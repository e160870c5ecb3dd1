package bitmap

import (
	"image"
	"image/color"
)

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		pixels: make([]byte, 2*r.Dx()*r.Dy()),
		stride: 2 * r.Dx(),
		bounds: r,
	}
}

// RGB565 is a packed 16-bit framebuffer image. It implements the
// draw.Image interface.
//
// Pixels are stored big-endian, two bytes each, row-major:
//
//    bit 76543210  76543210
//        RRRRRGGG  GGGBBBBB
//       high byte  low byte
//
// This matches the raw buffer layout of the display controller, which
// expects the high byte first on the wire.
type RGB565 struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB565) Bounds() image.Rectangle {
	return d.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB565) ColorModel() color.Model {
	return Model
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB565) At(x, y int) color.Color {
	return d.Pixel(x, y)
}

// Pixel returns the packed value at (x, y), or zero outside the bounds.
func (d *RGB565) Pixel(x, y int) Pixel {
	if x < d.bounds.Min.X || x >= d.bounds.Max.X ||
		y < d.bounds.Min.Y || y >= d.bounds.Max.Y {
		return Pixel(0)
	}
	i := (y-d.bounds.Min.Y)*d.stride + 2*(x-d.bounds.Min.X)
	return Pixel(d.pixels[i])<<8 | Pixel(d.pixels[i+1])
}

// Set implements the draw.Image interface.
func (d *RGB565) Set(x, y int, c color.Color) {
	d.SetPixel(x, y, FromColor(c))
}

// SetPixel writes a packed value at (x, y). Writes outside the bounds
// are dropped.
func (d *RGB565) SetPixel(x, y int, p Pixel) {
	if x < d.bounds.Min.X || x >= d.bounds.Max.X ||
		y < d.bounds.Min.Y || y >= d.bounds.Max.Y {
		return
	}
	i := (y-d.bounds.Min.Y)*d.stride + 2*(x-d.bounds.Min.X)
	d.pixels[i] = byte(p >> 8)
	d.pixels[i+1] = byte(p)
}

// RawBuffer exposes the backing byte buffer. Callers must treat it as
// read-only; writes belong to Set/SetPixel.
func (d *RGB565) RawBuffer() []byte {
	return d.pixels
}
