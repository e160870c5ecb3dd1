package bitmap

import (
	"image"
)

// Encode converts an image to the little-endian RGB565 stream the USB
// display protocol expects. The in-memory RGB565 buffer is big-endian,
// so each pixel is byte-swapped on the way out.
func Encode(src image.Image) []byte {
	if d, ok := src.(*RGB565); ok {
		return swapped(d.pixels)
	}

	b := src.Bounds()
	d := NewRGB565(b)

	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			d.Set(x, y, src.At(x, y))
		}
	}

	return swapped(d.pixels)
}

func swapped(pixels []byte) []byte {
	out := make([]byte, len(pixels))
	for i := 0; i+1 < len(pixels); i += 2 {
		out[i] = pixels[i+1]
		out[i+1] = pixels[i]
	}
	return out
}
