package gfx

import (
	"gfxscreen/pkg/assets"
	"gfxscreen/pkg/bitmap"
)

// Built-in effects. Each returns an immutable Effect ready to be added
// to a pipeline. All channel math is fixed-point over the native 5/6-bit
// magnitudes; the shift-based truncation is part of the contract.

// Invert returns the bitwise complement of the incoming color.
func Invert() Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		return ^fg
	})
}

// Alpha blends fg over bg with a fixed opacity (0 transparent, 255 opaque).
func Alpha(alpha uint8) Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		return blendAlpha(fg, bg, alpha)
	})
}

// Additive adds fg and bg with per-channel saturation. Channels are
// summed in isolation so an overflowing channel never carries into its
// neighbor; overflow is detected by wraparound comparison against the
// foreground's own channel value and clamped to the channel maximum.
func Additive() Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		r := ((uint16(fg) & bitmap.MaskR) + (uint16(bg) & bitmap.MaskR)) & bitmap.MaskR
		g := ((uint16(fg) & bitmap.MaskG) + (uint16(bg) & bitmap.MaskG)) & bitmap.MaskG
		b := ((uint16(fg) & bitmap.MaskB) + (uint16(bg) & bitmap.MaskB)) & bitmap.MaskB

		if r < uint16(fg)&bitmap.MaskR {
			r = bitmap.MaskR
		}
		if g < uint16(fg)&bitmap.MaskG {
			g = bitmap.MaskG
		}
		if b < uint16(fg)&bitmap.MaskB {
			b = bitmap.MaskB
		}

		return bitmap.Pixel(r | g | b)
	})
}

// Subtract darkens the background by fg, clamped at black.
func Subtract() Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		r := int(bg>>11) - int(fg>>11)
		g := int((bg>>5)&0x3F) - int((fg>>5)&0x3F)
		b := int(bg&0x1F) - int(fg&0x1F)

		if r < 0 {
			r = 0
		}
		if g < 0 {
			g = 0
		}
		if b < 0 {
			b = 0
		}

		return bitmap.Pixel(r<<11 | g<<5 | b)
	})
}

// Grayscale desaturates the background. intensity runs from 0 (original
// color) to 255 (fully achromatic).
func Grayscale(intensity uint8) Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		r8, g8, b8 := bg.RGB()
		r := int32(r8)
		g := int32(g8)
		b := int32(b8)

		// ITU-R BT.709 luminance, integer approximation.
		lum := (r*54 + g*183 + b*19) >> 8

		if intensity == 255 {
			return bitmap.Pixel((lum>>3)<<11 | (lum>>2)<<5 | lum>>3)
		}

		resR := r + ((int32(intensity) * (lum - r)) >> 8)
		resG := g + ((int32(intensity) * (lum - g)) >> 8)
		resB := b + ((int32(intensity) * (lum - b)) >> 8)
		return bitmap.Pixel((resR>>3)<<11 | (resG>>2)<<5 | resB>>3)
	})
}

// ImageMask uses an image as a per-pixel opacity map, anchored at
// (relX, relY). Grayscale assets supply opacity directly; RGB565 assets
// use a fast luminance approximation. Pixels outside the image leave the
// background untouched.
func ImageMask(img *assets.Image, relX, relY int) Effect {
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		rx := x - relX
		ry := y - relY

		if img == nil || rx < 0 || rx >= img.Width() || ry < 0 || ry >= img.Height() {
			return bg
		}

		var opacity uint8

		if img.Format() == assets.FormatGray {
			opacity = img.Data()[ry*img.Width()+rx]
		} else {
			idx := (ry*img.Width() + rx) * 2
			data := img.Data()
			msb := data[idx]   // RRRRRGGG
			lsb := data[idx+1] // GGGBBBBB

			// Shift-only channel extraction. Bit replication is skipped
			// here: a maximum opacity of 248/252 is invisible for
			// masking and saves cycles in the hot loop.
			r := msb & 0xF8
			g := (msb&0x07)<<5 | (lsb&0xE0)>>3
			b := lsb << 3

			// Weighted average approximating BT.709:
			// 0.25*R + 0.625*G + 0.125*B
			opacity = uint8((uint32(r)*2 + uint32(g)*5 + uint32(b)) >> 3)
		}

		return blendAlpha(fg, bg, opacity)
	})
}

// blendAlpha interpolates fg and bg per channel in 5/6-bit space with an
// 8-bit alpha denominator. The >>8 truncation (not rounding) is the
// hardware-cheap fixed-point form the rest of the engine relies on.
func blendAlpha(fg, bg bitmap.Pixel, alpha uint8) bitmap.Pixel {
	a := uint32(alpha)
	inv := 255 - a

	fgR := uint32(fg>>11) & 0x1F
	fgG := uint32(fg>>5) & 0x3F
	fgB := uint32(fg) & 0x1F

	bgR := uint32(bg>>11) & 0x1F
	bgG := uint32(bg>>5) & 0x3F
	bgB := uint32(bg) & 0x1F

	r := (fgR*a + bgR*inv) >> 8
	g := (fgG*a + bgG*inv) >> 8
	b := (fgB*a + bgB*inv) >> 8

	return bitmap.Pixel(r<<11 | g<<5 | b)
}
