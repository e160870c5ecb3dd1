package bitmap

import "image/color"

// Channel masks of the packed RGB565 layout:
//
//    bit 15         0
//        RRRRRGGGGGGBBBBB
const (
	MaskR = 0xF800
	MaskG = 0x07E0
	MaskB = 0x001F
)

// Pixel is a packed 16-bit RGB565 color value. Red occupies the high
// 5 bits, green the middle 6, blue the low 5. Every Pixel is normalized
// by construction; no out-of-range channel is representable.
type Pixel uint16

// Pack truncates 8-bit channels to their native 5/6/5 widths and repacks.
func Pack(r, g, b uint8) Pixel {
	return Pixel(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the packed channels back to 8 bits using bit replication,
// so a full channel maps to 255 instead of 248/252. Plain left-shift
// scaling loses brightness at the top of the range.
func (p Pixel) RGB() (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F

	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return
}

// RGBA implements the color.Color interface.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.RGB()
	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	a = 0xFFFF
	return
}

// FromColor converts any color.Color to a packed Pixel. A Pixel input is
// returned unchanged.
func FromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to the Pixel color model.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})
