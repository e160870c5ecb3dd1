package gfx

import (
	"image/color"
	"testing"

	"go.uber.org/zap"

	"gfxscreen/pkg/bitmap"
	"gfxscreen/pkg/display"
)

func testCanvas(w, h int) (*Canvas, *display.Framebuffer) {
	fb := display.NewFramebuffer(w, h)
	return NewCanvas(fb, zap.NewNop()), fb
}

func TestDrawEmptyPipelineRunsDirect(t *testing.T) {
	c, fb := testCanvas(4, 4)

	c.Draw(func(s display.Surface) {
		if s != display.Surface(fb) {
			t.Error("empty pipeline must hand the real display to the block")
		}
	})
}

func TestDrawNonEmptyPipelineUsesProxy(t *testing.T) {
	c, fb := testCanvas(4, 4)
	c.Pipeline().Add(Invert())

	c.Draw(func(s display.Surface) {
		if s == display.Surface(fb) {
			t.Error("a non-empty pipeline must interpose a proxy")
		}
		if s.Width() != 4 || s.Height() != 4 {
			t.Error("proxy must report the display geometry")
		}
	})
}

func TestWithSetterMode(t *testing.T) {
	c, _ := testCanvas(4, 4)

	c.With(Alpha(128))
	if c.Pipeline().Len() != 1 {
		t.Fatal("setter mode must leave the pipeline configured")
	}

	// A later With replaces the configuration instead of stacking it.
	c.With(Invert(), Alpha(64))
	if c.Pipeline().Len() != 2 {
		t.Fatal("With must reset before configuring")
	}

	c.Clear()
	if c.Pipeline().Len() != 0 {
		t.Fatal("Clear must empty the pipeline")
	}
}

func TestWithScopedMode(t *testing.T) {
	c, fb := testCanvas(4, 4)

	ran := false
	c.With(Invert(), func(s display.Surface) {
		ran = true
		s.SetPixel(1, 1, bitmap.Pixel(0x0000))
	})

	if !ran {
		t.Fatal("scoped block did not run")
	}
	if c.Pipeline().Len() != 0 {
		t.Error("scoped mode must clear the pipeline on exit")
	}
	if got := fb.PixelAt(1, 1); got != 0xFFFF {
		t.Errorf("scoped draw not blended: got %#04x, want 0xFFFF", got)
	}
}

func TestWithEffectSlice(t *testing.T) {
	c, _ := testCanvas(4, 4)

	c.With([]Effect{Invert(), Alpha(32)})
	if c.Pipeline().Len() != 2 {
		t.Errorf("slice argument added %d effects, want 2", c.Pipeline().Len())
	}
}

func TestWithIgnoresUnsupportedArgs(t *testing.T) {
	c, _ := testCanvas(4, 4)

	c.With("not an effect", 42, Invert())
	if c.Pipeline().Len() != 1 {
		t.Errorf("unsupported args must be skipped, pipeline has %d effects", c.Pipeline().Len())
	}
}

func TestBlendReadsBackground(t *testing.T) {
	c, fb := testCanvas(4, 4)
	fb.Fill(bitmap.Pixel(0x001F))

	c.With(Additive()).FilledRectangle(0, 0, 2, 2, bitmap.Pixel(0xF800))

	if got := fb.PixelAt(1, 1); got != 0xF81F {
		t.Errorf("additive over blue = %#04x, want 0xF81F", got)
	}
	if got := fb.PixelAt(3, 3); got != 0x001F {
		t.Errorf("outside the rectangle = %#04x, want untouched 0x001F", got)
	}
}

func TestBlendBackgroundAsSource(t *testing.T) {
	c, fb := testCanvas(4, 4)
	fb.SetPixel(2, 2, bitmap.Pixel(0xF800))

	// The drawn color is irrelevant: the background feeds the chain.
	c.With(BackgroundAsSource(Invert())).SetPixel(2, 2, bitmap.Pixel(0xFFFF))

	if got := fb.PixelAt(2, 2); got != 0x07FF {
		t.Errorf("inverted background = %#04x, want 0x07FF", got)
	}
}

func TestBackgroundReadUnderRotation(t *testing.T) {
	for _, rot := range []display.Rotation{display.Rotate0, display.Rotate90, display.Rotate180, display.Rotate270} {
		c, fb := testCanvas(4, 4)
		fb.SetRotation(rot)
		fb.SetPixel(1, 2, bitmap.Pixel(0x001F))

		c.With(Additive()).SetPixel(1, 2, bitmap.Pixel(0xF800))

		if got := fb.PixelAt(1, 2); got != 0xF81F {
			t.Errorf("rotation %d: blend = %#04x, want 0xF81F", rot, got)
		}
	}
}

func TestProxyDecomposesLines(t *testing.T) {
	c, fb := testCanvas(4, 4)
	fb.Fill(bitmap.Pixel(0x001F))

	c.With(Additive()).HorizontalLine(0, 1, 4, bitmap.Pixel(0xF800))

	for x := 0; x < 4; x++ {
		if got := fb.PixelAt(x, 1); got != 0xF81F {
			t.Errorf("line pixel %d = %#04x, want 0xF81F", x, got)
		}
	}
	if got := fb.PixelAt(0, 0); got != 0x001F {
		t.Errorf("adjacent row touched: %#04x", got)
	}
}

func TestFillBypassesBlending(t *testing.T) {
	c, fb := testCanvas(4, 4)
	fb.Fill(bitmap.Pixel(0x001F))

	c.With(Invert()).Fill(bitmap.Pixel(0xF800))

	if got := fb.PixelAt(0, 0); got != 0xF800 {
		t.Errorf("Fill through a pipeline = %#04x, want the raw color 0xF800", got)
	}
}

// recordingDisplay captures pixel writes and reports no raw buffer, the
// situation for remote or write-only displays.
type recordingDisplay struct {
	w, h int
	last bitmap.Pixel
}

func (d *recordingDisplay) SetPixel(x, y int, c color.Color) { d.last = bitmap.FromColor(c) }
func (d *recordingDisplay) HorizontalLine(x, y, w int, c color.Color) {}
func (d *recordingDisplay) VerticalLine(x, y, h int, c color.Color)   {}
func (d *recordingDisplay) FilledRectangle(x, y, w, h int, c color.Color) {}
func (d *recordingDisplay) Fill(c color.Color)     {}
func (d *recordingDisplay) Width() int             { return d.w }
func (d *recordingDisplay) Height() int            { return d.h }
func (d *recordingDisplay) NativeWidth() int       { return d.w }
func (d *recordingDisplay) NativeHeight() int      { return d.h }
func (d *recordingDisplay) Rotation() display.Rotation { return display.Rotate0 }
func (d *recordingDisplay) RawBuffer() []byte      { return nil }

func TestMissingRawBufferReadsBlack(t *testing.T) {
	rec := &recordingDisplay{w: 4, h: 4, last: 0xABCD}
	c := NewCanvas(rec, zap.NewNop())

	// Alpha 0 yields the background, which must be black without a buffer.
	c.With(Alpha(0)).SetPixel(1, 1, bitmap.Pixel(0xFFFF))

	if rec.last != 0x0000 {
		t.Errorf("forwarded pixel = %#04x, want black background", rec.last)
	}
}
