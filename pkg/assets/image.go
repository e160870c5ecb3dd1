package assets

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"gfxscreen/pkg/bitmap"
)

// Format tags the pixel layout of an asset.
type Format int

const (
	// FormatGray is 8-bit grayscale, one byte per pixel.
	FormatGray Format = iota
	// FormatRGB565 is packed 16-bit color, two bytes per pixel,
	// big-endian, matching the framebuffer layout.
	FormatRGB565
)

// Image is a decoded asset ready for sampling by mask effects: row-major
// pixel data of a known format and size.
type Image struct {
	format Format
	width  int
	height int
	pix    []byte
}

func (i *Image) Format() Format {
	return i.format
}

func (i *Image) Width() int {
	return i.width
}

func (i *Image) Height() int {
	return i.height
}

func (i *Image) Data() []byte {
	return i.pix
}

// NewGray builds a grayscale asset from raw row-major bytes, one per
// pixel.
func NewGray(w, h int, pix []byte) *Image {
	return &Image{format: FormatGray, width: w, height: h, pix: pix}
}

// NewRGB565 builds a packed-color asset from raw row-major bytes, two
// per pixel, big-endian.
func NewRGB565(w, h int, pix []byte) *Image {
	return &Image{format: FormatRGB565, width: w, height: h, pix: pix}
}

// FromImage converts a decoded image into asset form.
func FromImage(src image.Image, format Format) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	a := &Image{
		format: format,
		width:  w,
		height: h,
	}

	switch format {
	case FormatGray:
		a.pix = make([]byte, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				a.pix[y*w+x] = g.Y
			}
		}
	case FormatRGB565:
		a.pix = make([]byte, w*h*2)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := bitmap.FromColor(src.At(b.Min.X+x, b.Min.Y+y))
				i := (y*w + x) * 2
				a.pix[i] = byte(p >> 8)
				a.pix[i+1] = byte(p)
			}
		}
	}

	return a
}

// Fit scales and center-crops an image to the given size before
// conversion, so a mask covers the intended region of the display.
func Fit(src image.Image, w, h int, format Format) *Image {
	return FromImage(imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos), format)
}
