package snapshot

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"gfxscreen/pkg/bitmap"
	"gfxscreen/pkg/display"
)

const (
	fileHeaderSize = 14
	dibHeaderSize  = 40
	masksSize      = 12
	headerSize     = fileHeaderSize + dibHeaderSize + masksSize

	// 72 dots/inch x 39.37 inch/meter
	pixelsPerMeter = 2835
)

// Take copies the display's raw buffer into a standalone snapshot. The
// framebuffer stores pixels big-endian; BMP wants them little-endian, so
// every pixel is byte-swapped during the copy.
func Take(d display.Display) (*Snapshot, error) {
	raw := d.RawBuffer()
	if raw == nil {
		return nil, errors.New("display has no raw buffer")
	}

	pixels := make([]byte, len(raw))
	for i := 0; i+1 < len(raw); i += 2 {
		pixels[i] = raw[i+1]
		pixels[i+1] = raw[i]
	}

	return &Snapshot{
		width:  d.NativeWidth(),
		height: d.NativeHeight(),
		pixels: pixels,
	}, nil
}

// Snapshot is a frozen copy of the framebuffer in BMP pixel order.
type Snapshot struct {
	width  int
	height int
	pixels []byte
}

func (s *Snapshot) Width() int {
	return s.width
}

func (s *Snapshot) Height() int {
	return s.height
}

// rowSize is the padded BMP row length. 16bpp rows pad to a 4-byte
// boundary, which is a no-op for even widths.
func (s *Snapshot) rowSize() int {
	return (s.width*2 + 3) &^ 3
}

// header builds the fixed 14+40+12-byte little-endian BMP header:
// 16 bits/pixel, BI_BITFIELDS compression, explicit RGB565 channel
// masks, negative height for top-down row order.
func (s *Snapshot) header() []byte {
	imageSize := uint32(s.rowSize() * s.height)

	var buf bytes.Buffer

	// BITMAPFILEHEADER
	_ = binary.Write(&buf, binary.LittleEndian, uint16(0x4D42)) // "BM"
	_ = binary.Write(&buf, binary.LittleEndian, uint32(headerSize)+imageSize)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(headerSize))

	// BITMAPINFOHEADER
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dibHeaderSize))
	_ = binary.Write(&buf, binary.LittleEndian, int32(s.width))
	_ = binary.Write(&buf, binary.LittleEndian, int32(-s.height))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // planes
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(3)) // BI_BITFIELDS
	_ = binary.Write(&buf, binary.LittleEndian, imageSize)
	_ = binary.Write(&buf, binary.LittleEndian, int32(pixelsPerMeter))
	_ = binary.Write(&buf, binary.LittleEndian, int32(pixelsPerMeter))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0)) // colors used
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0)) // colors important

	// RGB565 channel masks
	_ = binary.Write(&buf, binary.LittleEndian, uint32(bitmap.MaskR))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(bitmap.MaskG))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(bitmap.MaskB))

	return buf.Bytes()
}

// WriteTo streams the snapshot as a complete BMP file.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	var written int64

	n, err := w.Write(s.header())
	written += int64(n)
	if err != nil {
		return written, err
	}

	rowBytes := s.width * 2
	pad := make([]byte, s.rowSize()-rowBytes)

	for y := 0; y < s.height; y++ {
		n, err := w.Write(s.pixels[y*rowBytes : (y+1)*rowBytes])
		written += int64(n)
		if err != nil {
			return written, err
		}

		if len(pad) > 0 {
			n, err := w.Write(pad)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// Encode returns the snapshot as BMP bytes.
func (s *Snapshot) Encode() []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize + s.rowSize()*s.height)
	_, _ = s.WriteTo(&buf)
	return buf.Bytes()
}
