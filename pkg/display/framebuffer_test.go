package display

import (
	"testing"

	"gfxscreen/pkg/bitmap"
)

func TestFramebufferLogicalDimensions(t *testing.T) {
	tests := []struct {
		name     string
		rotation Rotation
		w, h     int
	}{
		{"Rotate0", Rotate0, 4, 6},
		{"Rotate90", Rotate90, 6, 4},
		{"Rotate180", Rotate180, 4, 6},
		{"Rotate270", Rotate270, 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFramebuffer(4, 6)
			f.SetRotation(tt.rotation)

			if f.Width() != tt.w || f.Height() != tt.h {
				t.Errorf("dimensions = %dx%d, want %dx%d", f.Width(), f.Height(), tt.w, tt.h)
			}
			if f.NativeWidth() != 4 || f.NativeHeight() != 6 {
				t.Error("native dimensions must not change with rotation")
			}
		})
	}
}

func TestFramebufferRoundTripAllRotations(t *testing.T) {
	for _, rot := range []Rotation{Rotate0, Rotate90, Rotate180, Rotate270} {
		f := NewFramebuffer(4, 6)
		f.SetRotation(rot)

		for y := 0; y < f.Height(); y++ {
			for x := 0; x < f.Width(); x++ {
				want := bitmap.Pixel(y*f.Width() + x + 1)
				f.SetPixel(x, y, want)
				if got := f.PixelAt(x, y); got != want {
					t.Fatalf("rotation %d: (%d,%d) = %#04x, want %#04x", rot, x, y, got, want)
				}
			}
		}
	}
}

func TestFramebufferNativeMapping(t *testing.T) {
	tests := []struct {
		name     string
		rotation Rotation
		x, y     int
		pos      int
	}{
		// Native 4x6: two bytes per native pixel, row-major.
		{"Identity", Rotate0, 1, 0, 2},
		{"Quarter turn", Rotate90, 0, 0, 6},   // native (3, 0)
		{"Half turn", Rotate180, 0, 0, 46},    // native (3, 5)
		{"Three quarters", Rotate270, 0, 0, 40}, // native (0, 5)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFramebuffer(4, 6)
			f.SetRotation(tt.rotation)
			f.SetPixel(tt.x, tt.y, bitmap.Pixel(0x1234))

			raw := f.RawBuffer()
			if raw[tt.pos] != 0x12 || raw[tt.pos+1] != 0x34 {
				t.Errorf("pixel landed at the wrong native position, raw[%d:%d] = % x",
					tt.pos, tt.pos+2, raw[tt.pos:tt.pos+2])
			}
		})
	}
}

func TestFramebufferHalfTurnIsInvolution(t *testing.T) {
	f := NewFramebuffer(4, 6)
	f.SetRotation(Rotate180)

	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			nx, ny := f.mapNative(x, y)
			if mx, my := f.mapNative(nx, ny); mx != x || my != y {
				t.Fatalf("half turn applied twice moved (%d,%d) to (%d,%d)", x, y, mx, my)
			}
		}
	}
}

func TestFramebufferQuarterTurnsInvertOnSquare(t *testing.T) {
	// 90 and 270 degrees only undo each other when the buffer is square;
	// on other geometries the composed mapping shifts by the dimension
	// difference.
	f90 := NewFramebuffer(5, 5)
	f90.SetRotation(Rotate90)
	f270 := NewFramebuffer(5, 5)
	f270.SetRotation(Rotate270)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			nx, ny := f90.mapNative(x, y)
			if mx, my := f270.mapNative(nx, ny); mx != x || my != y {
				t.Fatalf("quarter turns did not cancel at (%d,%d): got (%d,%d)", x, y, mx, my)
			}
		}
	}
}

func TestFramebufferFill(t *testing.T) {
	f := NewFramebuffer(3, 3)
	f.SetRotation(Rotate90)
	f.Fill(bitmap.Pixel(0xA5A5))

	raw := f.RawBuffer()
	for i := 0; i < len(raw); i += 2 {
		if raw[i] != 0xA5 || raw[i+1] != 0xA5 {
			t.Fatalf("byte pair %d = % x, want a5 a5", i, raw[i:i+2])
		}
	}
}

func TestFramebufferImageInterface(t *testing.T) {
	f := NewFramebuffer(4, 6)
	f.SetRotation(Rotate90)

	b := f.Bounds()
	if b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("Bounds = %v, want the logical 6x4 geometry", b)
	}

	f.SetPixel(2, 1, bitmap.Pixel(0xF800))
	r, g, bl, _ := f.At(2, 1).RGBA()
	if r != 0xFFFF || g != 0 || bl != 0 {
		t.Errorf("At(2,1) = %d,%d,%d, want pure red", r, g, bl)
	}
}
