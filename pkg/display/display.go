package display

import "image/color"

// Rotation is the logical orientation of the display relative to the
// native (hardware) pixel layout.
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// Surface is the minimal drawing capability the shape algorithms need.
// Both the real display and the blending proxy implement it, so generic
// drawing code works identically against either.
type Surface interface {
	SetPixel(x, y int, c color.Color)
	HorizontalLine(x, y, w int, c color.Color)
	VerticalLine(x, y, h int, c color.Color)
	FilledRectangle(x, y, w, h int, c color.Color)
	Fill(c color.Color)
	Width() int
	Height() int
}

// Display is the real-surface contract: a Surface plus access to the
// native geometry and the raw framebuffer needed for background reads.
//
// RawBuffer returns packed big-endian RGB565 bytes in native
// (pre-rotation) row-major order, NativeWidth*NativeHeight*2 bytes, or
// nil when no backing buffer exists.
type Display interface {
	Surface

	NativeWidth() int
	NativeHeight() int
	Rotation() Rotation
	RawBuffer() []byte
}
