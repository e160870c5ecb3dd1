package gfx

import (
	"go.uber.org/zap"

	"gfxscreen/pkg/bitmap"
	"gfxscreen/pkg/display"
)

func NewCanvas(disp display.Display, logger *zap.Logger) *Canvas {
	return &Canvas{
		disp:     disp,
		pipeline: NewPipeline(),
		logger:   logger,
	}
}

// Canvas ties a pipeline to a real display and decides, per draw call,
// whether the drawing code runs directly against the display or through
// a blending proxy.
type Canvas struct {
	disp     display.Display
	pipeline *Pipeline
	logger   *zap.Logger
}

func (c *Canvas) Pipeline() *Pipeline {
	return c.pipeline
}

func (c *Canvas) Display() display.Display {
	return c.disp
}

// Clear resets the pipeline to its empty default state.
func (c *Canvas) Clear() *Canvas {
	c.pipeline.Clear()
	return c
}

// With resets the pipeline and configures it from args. Arguments may be
// Effect values or []Effect slices; if the final argument is a
// func(display.Surface) the call runs in scoped mode: the block executes
// under the configured pipeline and the pipeline is cleared again on
// every exit path. Without a trailing block the pipeline stays active
// for subsequent draw calls (setter mode) until cleared explicitly.
func (c *Canvas) With(args ...any) *Canvas {
	c.pipeline.Clear()

	var block func(display.Surface)

	for i, arg := range args {
		switch v := arg.(type) {
		case Effect:
			c.pipeline.Add(v)
		case []Effect:
			c.pipeline.Add(v...)
		case func(display.Surface):
			if i == len(args)-1 {
				block = v
			} else {
				c.logger.Warn("draw block must be the final argument, ignored")
			}
		default:
			c.logger.With(zap.Any("arg", arg)).Warn("unsupported effect argument, ignored")
		}
	}

	if block != nil {
		defer c.pipeline.Clear()
		c.Draw(block)
	}

	return c
}

// Draw executes a drawing block under the current pipeline. An empty
// pipeline runs the block directly against the real display: no
// background reads, no proxy overhead. Otherwise a proxy bound to a
// fresh blend closure lives for exactly this call.
func (c *Canvas) Draw(fn func(display.Surface)) *Canvas {
	if c.pipeline.Len() == 0 {
		fn(c.disp)
		return c
	}

	blend := func(x, y int, fg bitmap.Pixel) bitmap.Pixel {
		var bg bitmap.Pixel
		if c.pipeline.ReadsBackground() {
			bg = c.readRawPixel(x, y)
			if c.pipeline.BackgroundAsSource() {
				fg = bg
			}
		}
		return c.pipeline.Apply(x, y, fg, bg)
	}

	fn(&proxy{real: c.disp, blend: blend})
	return c
}

// readRawPixel reads the packed background color at logical (x, y) from
// the display's raw buffer, mapping the coordinate back into the native
// hardware layout first. A missing buffer yields black.
func (c *Canvas) readRawPixel(x, y int) bitmap.Pixel {
	buf := c.disp.RawBuffer()
	if buf == nil {
		return 0x0000
	}

	nativeW := c.disp.NativeWidth()

	switch c.disp.Rotation() {
	case display.Rotate90:
		x, y = y, x
		x = nativeW - x - 1
	case display.Rotate180:
		nativeH := c.disp.NativeHeight()
		x = nativeW - x - 1
		y = nativeH - y - 1
	case display.Rotate270:
		nativeH := c.disp.NativeHeight()
		x, y = y, x
		y = nativeH - y - 1
	}

	pos := (y*nativeW + x) * 2
	if pos < 0 || pos+1 >= len(buf) {
		return 0x0000
	}

	return bitmap.Pixel(buf[pos])<<8 | bitmap.Pixel(buf[pos+1])
}
