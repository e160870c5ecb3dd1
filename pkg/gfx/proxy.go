package gfx

import (
	"image/color"

	"gfxscreen/pkg/bitmap"
	"gfxscreen/pkg/display"
)

// blendFunc is the closure bound to a proxy for one draw call. It reads
// the background when the pipeline needs it and runs the chain.
type blendFunc func(x, y int, fg bitmap.Pixel) bitmap.Pixel

// proxy is a drop-in stand-in for the real display. Every elementary
// pixel write is routed through the blend closure before being
// forwarded, which makes arbitrary shape code blend-aware without
// touching it. Proxies are created per draw call and discarded after.
type proxy struct {
	real  display.Display
	blend blendFunc
}

func (p *proxy) SetPixel(x, y int, c color.Color) {
	fg := bitmap.FromColor(c)
	p.real.SetPixel(x, y, p.blend(x, y, fg))
}

// Line and rectangle primitives must not delegate to the real surface:
// its optimized versions would bypass the blend closure. Decompose to
// per-pixel writes instead.

func (p *proxy) HorizontalLine(x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		p.SetPixel(x+i, y, c)
	}
}

func (p *proxy) VerticalLine(x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		p.SetPixel(x, y+i, c)
	}
}

func (p *proxy) FilledRectangle(x, y, w, h int, c color.Color) {
	for i := 0; i < h; i++ {
		p.HorizontalLine(x, y+i, w, c)
	}
}

// Fill bypasses blending: a full-surface fill replaces everything, so
// there is nothing meaningful to blend against.
func (p *proxy) Fill(c color.Color) {
	p.real.Fill(c)
}

func (p *proxy) Width() int {
	return p.real.Width()
}

func (p *proxy) Height() int {
	return p.real.Height()
}
