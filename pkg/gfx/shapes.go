package gfx

import (
	"image/color"

	"github.com/samber/lo"

	"gfxscreen/pkg/display"
)

// GradientDirection selects the axis a gradient runs along.
type GradientDirection int

const (
	GradientHorizontal GradientDirection = iota
	GradientVertical
)

// The shape algorithms are stateless and work against any Surface, so
// they draw identically on the real display and on a blending proxy.

// RoundRectangle draws a filled rectangle with rounded corners. The
// body is drawn as three non-overlapping rectangles; overlapping them
// would double-apply a translucent blend. Corners are filled with a
// scanline sweep.
func RoundRectangle(it display.Surface, x, y, w, h, r int, c color.Color) {
	if r <= 0 {
		it.FilledRectangle(x, y, w, h, c)
		return
	}

	// The radius cannot exceed half of the shorter side.
	maxR := lo.Ternary(w < h, w, h) >> 1
	if r > maxR {
		r = maxR
	}

	r2 := r * r
	doubleR := r << 1

	it.FilledRectangle(x, y+r, w, h-doubleR, c)   // middle body
	it.FilledRectangle(x+r, y, w-doubleR, r, c)   // top bar
	it.FilledRectangle(x+r, y+h-r, w-doubleR, r, c) // bottom bar

	for dy := 0; dy < r; dy++ {
		dyDist := r - dy - 1
		dy2 := dyDist * dyDist

		// Find the first column inside the arc, then draw the rest of
		// the row as one run for all four corners.
		for dx := 0; dx < r; dx++ {
			dxDist := r - dx - 1

			if dxDist*dxDist+dy2 <= r2 {
				lineLen := r - dx

				it.FilledRectangle(x+dx, y+dy, lineLen, 1, c)       // top left
				it.FilledRectangle(x+w-r, y+dy, lineLen, 1, c)      // top right
				it.FilledRectangle(x+dx, y+h-1-dy, lineLen, 1, c)   // bottom left
				it.FilledRectangle(x+w-r, y+h-1-dy, lineLen, 1, c)  // bottom right

				break
			}
		}
	}
}

// RectangleGradient draws a linear gradient between c1 and c2, one whole
// line per step.
func RectangleGradient(it display.Surface, x, y, w, h int, c1, c2 color.Color, dir GradientDirection) {
	if dir == GradientHorizontal {
		for dx := 0; dx < w; dx++ {
			t := lo.Ternary(w > 1, float64(dx)/float64(w-1), 0)
			it.VerticalLine(x+dx, y, h, lerpColor(c1, c2, t))
		}
	} else {
		for dy := 0; dy < h; dy++ {
			t := lo.Ternary(h > 1, float64(dy)/float64(h-1), 0)
			it.HorizontalLine(x, y+dy, w, lerpColor(c1, c2, t))
		}
	}
}

// RoundRectangleGradient combines the corner exclusion test with
// per-pixel interpolation. Per-line drawing is not possible here, the
// corners mask pixels independently.
func RoundRectangleGradient(it display.Surface, x, y, w, h, r int, c1, c2 color.Color, dir GradientDirection) {
	r2 := r * r

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			draw := true
			if dx < r && dy < r && (r-dx)*(r-dx)+(r-dy)*(r-dy) > r2 {
				draw = false
			} else if dx >= w-r && dy < r && (dx-(w-r-1))*(dx-(w-r-1))+(r-dy)*(r-dy) > r2 {
				draw = false
			} else if dx < r && dy >= h-r && (r-dx)*(r-dx)+(dy-(h-r-1))*(dy-(h-r-1)) > r2 {
				draw = false
			} else if dx >= w-r && dy >= h-r && (dx-(w-r-1))*(dx-(w-r-1))+(dy-(h-r-1))*(dy-(h-r-1)) > r2 {
				draw = false
			}

			if draw {
				var t float64
				if dir == GradientHorizontal {
					t = lo.Ternary(w > 1, float64(dx)/float64(w-1), 0)
				} else {
					t = lo.Ternary(h > 1, float64(dy)/float64(h-1), 0)
				}

				it.SetPixel(x+dx, y+dy, lerpColor(c1, c2, lo.Clamp(t, 0, 1)))
			}
		}
	}
}

// Ellipse draws a filled ellipse centered at (x, y) using the standard
// membership test (dx²/rx²)+(dy²/ry²) <= 1.
func Ellipse(it display.Surface, x, y, rx, ry int, c color.Color) {
	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if float64(dx*dx)/rx2+float64(dy*dy)/ry2 <= 1.0 {
				it.SetPixel(x+dx, y+dy, c)
			}
		}
	}
}

// EllipseGradient draws a filled ellipse with t normalized from the
// signed offset range to [0, 1] along the chosen axis.
func EllipseGradient(it display.Surface, x, y, rx, ry int, c1, c2 color.Color, dir GradientDirection) {
	rx2 := float64(rx * rx)
	ry2 := float64(ry * ry)

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if float64(dx*dx)/rx2+float64(dy*dy)/ry2 <= 1.0 {
				var t float64
				if dir == GradientHorizontal {
					t = lo.Ternary(rx > 0, float64(dx+rx)/float64(2*rx), 0)
				} else {
					t = lo.Ternary(ry > 0, float64(dy+ry)/float64(2*ry), 0)
				}

				it.SetPixel(x+dx, y+dy, lerpColor(c1, c2, lo.Clamp(t, 0, 1)))
			}
		}
	}
}

// lerpColor interpolates two colors per 8-bit channel, truncating to
// integer exactly like the fixed-point effects do.
func lerpColor(c1, c2 color.Color, t float64) color.Color {
	r1, g1, b1, _ := c1.RGBA()
	r2, g2, b2, _ := c2.RGBA()

	r := uint8(float64(r1>>8) + t*(float64(r2>>8)-float64(r1>>8)))
	g := uint8(float64(g1>>8) + t*(float64(g2>>8)-float64(g1>>8)))
	b := uint8(float64(b1>>8) + t*(float64(b2>>8)-float64(b1>>8)))

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Canvas entry points. Every shape call routes through Draw, so the
// dispatch rule decides between the real display and a proxy; callers
// never address either directly.

func (c *Canvas) FilledRectangle(x, y, w, h int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		it.FilledRectangle(x, y, w, h, col)
	})
}

func (c *Canvas) RoundRectangle(x, y, w, h, r int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		RoundRectangle(it, x, y, w, h, r, col)
	})
}

func (c *Canvas) GradientRectangle(x, y, w, h int, c1, c2 color.Color, dir GradientDirection) *Canvas {
	return c.Draw(func(it display.Surface) {
		RectangleGradient(it, x, y, w, h, c1, c2, dir)
	})
}

func (c *Canvas) RoundGradientRectangle(x, y, w, h, r int, c1, c2 color.Color, dir GradientDirection) *Canvas {
	return c.Draw(func(it display.Surface) {
		RoundRectangleGradient(it, x, y, w, h, r, c1, c2, dir)
	})
}

// FilledCircle is an ellipse with equal radii.
func (c *Canvas) FilledCircle(x, y, r int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		Ellipse(it, x, y, r, r, col)
	})
}

func (c *Canvas) GradientCircle(x, y, r int, c1, c2 color.Color, dir GradientDirection) *Canvas {
	return c.Draw(func(it display.Surface) {
		EllipseGradient(it, x, y, r, r, c1, c2, dir)
	})
}

func (c *Canvas) FilledEllipse(x, y, rx, ry int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		Ellipse(it, x, y, rx, ry, col)
	})
}

func (c *Canvas) GradientEllipse(x, y, rx, ry int, c1, c2 color.Color, dir GradientDirection) *Canvas {
	return c.Draw(func(it display.Surface) {
		EllipseGradient(it, x, y, rx, ry, c1, c2, dir)
	})
}

func (c *Canvas) HorizontalLine(x, y, w int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		it.HorizontalLine(x, y, w, col)
	})
}

func (c *Canvas) VerticalLine(x, y, h int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		it.VerticalLine(x, y, h, col)
	})
}

func (c *Canvas) SetPixel(x, y int, col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		it.SetPixel(x, y, col)
	})
}

func (c *Canvas) Fill(col color.Color) *Canvas {
	return c.Draw(func(it display.Surface) {
		it.Fill(col)
	})
}
