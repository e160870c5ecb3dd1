package gfx

import "gfxscreen/pkg/bitmap"

// BlendFunc computes a new packed color for one pixel. fg is the color
// being drawn (or the output of the previous pipeline step), bg the
// color already present in the framebuffer at (x, y).
type BlendFunc func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel

// Effect is one step of the blending pipeline: a BlendFunc plus its
// capability descriptor. Effects are immutable once built; the pipeline
// owns the instances it is given.
type Effect struct {
	fn           BlendFunc
	noBackground bool
	bgAsSource   bool
}

// Option configures an Effect at construction time.
type Option func(e *Effect)

// WithoutBackground declares that the effect never reads bg. The
// pipeline may then skip the framebuffer read for the whole chain,
// which saves the most expensive part of the per-pixel path.
func WithoutBackground() Option {
	return func(e *Effect) {
		e.noBackground = true
	}
}

// AsBackgroundSource declares that the effect wants the current
// background fed as its foreground input. This is a functional flag, so
// it re-enables the background read even if another option disabled it.
func AsBackgroundSource() Option {
	return func(e *Effect) {
		e.bgAsSource = true
		e.noBackground = false
	}
}

func NewEffect(fn BlendFunc, opts ...Option) Effect {
	e := Effect{fn: fn}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NeedsBackground reports whether the effect reads bg. Defaults to true.
func (e Effect) NeedsBackground() bool {
	return !e.noBackground
}

// BackgroundAsSource reports whether the effect replaces its fg input
// with bg. Defaults to false.
func (e Effect) BackgroundAsSource() bool {
	return e.bgAsSource
}

// Blend runs the effect for one pixel. The bg-as-source override is
// local to this step: the next step still receives this step's output.
func (e Effect) Blend(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
	if e.bgAsSource {
		return e.fn(x, y, bg, bg)
	}
	return e.fn(x, y, fg, bg)
}

// NoBackground chains effects in foreground order and marks the result
// as not needing the background.
func NoBackground(effects ...Effect) Effect {
	return NewEffect(chain(effects), WithoutBackground())
}

// BackgroundAsSource chains effects with the background pixel as the
// initial foreground and marks the result accordingly.
func BackgroundAsSource(effects ...Effect) Effect {
	fn := chain(effects)
	return NewEffect(func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		return fn(x, y, bg, bg)
	}, AsBackgroundSource())
}

func chain(effects []Effect) BlendFunc {
	return func(x, y int, fg, bg bitmap.Pixel) bitmap.Pixel {
		out := fg
		for _, e := range effects {
			out = e.fn(x, y, out, bg)
		}
		return out
	}
}
