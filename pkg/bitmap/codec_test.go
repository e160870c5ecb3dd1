package bitmap

import (
	"image/color"
	"testing"
)

func TestPixelRGB(t *testing.T) {
	tests := []struct {
		name    string
		pixel   Pixel
		r, g, b uint8
	}{
		{"Black", 0x0000, 0, 0, 0},
		{"White", 0xFFFF, 255, 255, 255},
		{"Pure red", 0xF800, 255, 0, 0},
		{"Pure green", 0x07E0, 0, 255, 0},
		{"Pure blue", 0x001F, 0, 0, 255},
		{"Mid gray", 0x8410, 132, 130, 132},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.pixel.RGB()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("RGB() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestPackTruncates(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Pixel
	}{
		{"White", 255, 255, 255, 0xFFFF},
		{"Black", 0, 0, 0, 0x0000},
		{"Red", 255, 0, 0, 0xF800},
		{"Truncation drops low bits", 7, 3, 7, 0x0000},
		{"High bits survive", 8, 4, 8, 0x0821},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack(%d, %d, %d) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// Every packed value must survive a round trip through the 8-bit
// expansion: bit replication keeps the high bits intact, so truncating
// again reproduces the exact 5/6/5 pattern.
func TestCodecRoundTrip(t *testing.T) {
	for c := 0; c <= 0xFFFF; c++ {
		p := Pixel(c)
		r, g, b := p.RGB()
		if back := Pack(r, g, b); back != p {
			t.Fatalf("round trip of %#04x produced %#04x", p, back)
		}
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Pixel
	}{
		{"RGBA white", color.RGBA{255, 255, 255, 255}, 0xFFFF},
		{"RGBA red", color.RGBA{255, 0, 0, 255}, 0xF800},
		{"Gray16 black", color.Gray16{0}, 0x0000},
		{"Pixel passthrough", Pixel(0x1234), 0x1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}
