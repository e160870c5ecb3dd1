package display

import (
	"image"
	"image/color"

	"gfxscreen/pkg/bitmap"
)

func NewFramebuffer(nativeW, nativeH int) *Framebuffer {
	return &Framebuffer{
		buf:     bitmap.NewRGB565(image.Rect(0, 0, nativeW, nativeH)),
		nativeW: nativeW,
		nativeH: nativeH,
	}
}

// Framebuffer is an in-memory Display over a packed RGB565 buffer kept
// in native hardware orientation. Logical coordinates are remapped per
// the current rotation on every access, the same way the display
// controller addresses its RAM.
type Framebuffer struct {
	buf      *bitmap.RGB565
	nativeW  int
	nativeH  int
	rotation Rotation
}

func (f *Framebuffer) SetRotation(r Rotation) {
	f.rotation = r
}

func (f *Framebuffer) Rotation() Rotation {
	return f.rotation
}

func (f *Framebuffer) NativeWidth() int {
	return f.nativeW
}

func (f *Framebuffer) NativeHeight() int {
	return f.nativeH
}

func (f *Framebuffer) Width() int {
	if f.rotation == Rotate90 || f.rotation == Rotate270 {
		return f.nativeH
	}
	return f.nativeW
}

func (f *Framebuffer) Height() int {
	if f.rotation == Rotate90 || f.rotation == Rotate270 {
		return f.nativeW
	}
	return f.nativeH
}

func (f *Framebuffer) RawBuffer() []byte {
	return f.buf.RawBuffer()
}

// mapNative transforms logical coordinates into native hardware
// coordinates for the current rotation.
func (f *Framebuffer) mapNative(x, y int) (int, int) {
	switch f.rotation {
	case Rotate90:
		x, y = y, x
		x = f.nativeW - x - 1
	case Rotate180:
		x = f.nativeW - x - 1
		y = f.nativeH - y - 1
	case Rotate270:
		x, y = y, x
		y = f.nativeH - y - 1
	}
	return x, y
}

func (f *Framebuffer) SetPixel(x, y int, c color.Color) {
	nx, ny := f.mapNative(x, y)
	f.buf.SetPixel(nx, ny, bitmap.FromColor(c))
}

// PixelAt returns the packed value at logical (x, y).
func (f *Framebuffer) PixelAt(x, y int) bitmap.Pixel {
	nx, ny := f.mapNative(x, y)
	return f.buf.Pixel(nx, ny)
}

func (f *Framebuffer) HorizontalLine(x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		f.SetPixel(x+i, y, c)
	}
}

func (f *Framebuffer) VerticalLine(x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		f.SetPixel(x, y+i, c)
	}
}

func (f *Framebuffer) FilledRectangle(x, y, w, h int, c color.Color) {
	for i := 0; i < h; i++ {
		f.HorizontalLine(x, y+i, w, c)
	}
}

func (f *Framebuffer) Fill(c color.Color) {
	p := bitmap.FromColor(c)
	for y := 0; y < f.nativeH; y++ {
		for x := 0; x < f.nativeW; x++ {
			f.buf.SetPixel(x, y, p)
		}
	}
}

// Image exposes the framebuffer as an image over the native layout, for
// encoding and snapshots.
func (f *Framebuffer) Image() *bitmap.RGB565 {
	return f.buf
}

// Bounds implements image.Image over the logical (rotated) geometry.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width(), f.Height())
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return bitmap.Model
}

// At implements image.Image over logical coordinates.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.PixelAt(x, y)
}
