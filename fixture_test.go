package gifdecode

import (
	"bytes"
	"compress/lzw"
	"testing"
)

var (
	white  = RGB{255, 255, 255}
	red    = RGB{255, 0, 0}
	green  = RGB{0, 255, 0}
	blue   = RGB{0, 0, 255}
	yellow = RGB{255, 255, 0}
	cyan   = RGB{0, 255, 255}

	// index 0 is the background in most fixtures
	testPalette = Palette{white, red, green, blue}
)

func opaque(c RGB) Pixel {
	return Pixel{RGB: c, Opaque: true}
}

func fill(n int, index byte) []byte {
	return bytes.Repeat([]byte{index}, n)
}

// tableBits is the packed size field for a color table of len(p) entries.
func tableBits(p Palette) byte {
	n := 0
	for 1<<(n+1) < len(p) {
		n++
	}
	return byte(n)
}

func encodeIndices(t *testing.T, litWidth int, indices []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.LSB, litWidth)
	if _, err := w.Write(indices); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// gifBuilder writes GIF files block by block.
type gifBuilder struct {
	t      *testing.T
	buf    bytes.Buffer
	global Palette
}

func newGIFBuilder(t *testing.T, width, height int, global Palette, background byte) *gifBuilder {
	b := &gifBuilder{t: t, global: global}
	b.buf.WriteString("GIF89a")
	b.u16(width)
	b.u16(height)
	packed := byte(0)
	if global != nil {
		packed = 0x80 | tableBits(global)
	}
	b.buf.WriteByte(packed)
	b.buf.WriteByte(background)
	b.buf.WriteByte(0)
	b.palette(global)
	return b
}

func (b *gifBuilder) u16(v int) {
	b.buf.WriteByte(byte(v))
	b.buf.WriteByte(byte(v >> 8))
}

func (b *gifBuilder) palette(p Palette) {
	data, _ := p.MarshalBinary()
	b.buf.Write(data)
}

func (b *gifBuilder) subBlocks(data []byte) {
	for len(data) > 0 {
		n := min(255, len(data))
		b.buf.WriteByte(byte(n))
		b.buf.Write(data[:n])
		data = data[n:]
	}
	b.buf.WriteByte(0)
}

func (b *gifBuilder) raw(p ...byte) *gifBuilder {
	b.buf.Write(p)
	return b
}

// graphicsControl adds a GCE; transparent < 0 means no transparent color.
func (b *gifBuilder) graphicsControl(disposal DisposalMethod, delay uint16, transparent int) *gifBuilder {
	packed := byte(disposal) << 2
	index := byte(0)
	if transparent >= 0 {
		packed |= 1
		index = byte(transparent)
	}
	b.buf.Write([]byte{EXTENSION_BLOCK, GRAPHICS_CONTROL_BLOCK, 4, packed, byte(delay), byte(delay >> 8), index, 0})
	return b
}

// image adds an image block; a nil local palette draws with the global one.
func (b *gifBuilder) image(left, top, width, height int, local Palette, indices []byte) *gifBuilder {
	b.buf.WriteByte(IMAGE_DESCRIPTOR)
	b.u16(left)
	b.u16(top)
	b.u16(width)
	b.u16(height)

	active := b.global
	if local != nil {
		b.buf.WriteByte(0x80 | tableBits(local))
		b.palette(local)
		active = local
	} else {
		b.buf.WriteByte(0)
	}

	litWidth := max(2, int(tableBits(active))+1)
	b.buf.WriteByte(byte(litWidth))
	b.subBlocks(encodeIndices(b.t, litWidth, indices))
	return b
}

func (b *gifBuilder) comment(parts ...string) *gifBuilder {
	b.buf.Write([]byte{EXTENSION_BLOCK, COMMENT_BLOCK})
	for _, p := range parts {
		b.buf.WriteByte(byte(len(p)))
		b.buf.WriteString(p)
	}
	b.buf.WriteByte(0)
	return b
}

func (b *gifBuilder) netscape(loops int) *gifBuilder {
	b.buf.Write([]byte{EXTENSION_BLOCK, APPLICATION_BLOCK, APPLICATION_BLOCK_SIZE})
	b.buf.WriteString("NETSCAPE2.0")
	b.buf.Write([]byte{3, 1, byte(loops), byte(loops >> 8), 0})
	return b
}

// bytes returns the file so far, without a trailer.
func (b *gifBuilder) bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

func (b *gifBuilder) trailer() []byte {
	b.buf.WriteByte(TRAILER)
	return b.bytes()
}

func mustDecode(t *testing.T, data []byte) *GIF {
	t.Helper()
	g, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return g
}

// checkFrame compares every pixel of f with want, given row by row.
func checkFrame(t *testing.T, f *Frame, want []Pixel) {
	t.Helper()
	if len(f.Pixels) != len(want) {
		t.Fatalf("frame has %d pixels, want %d", len(f.Pixels), len(want))
	}
	for i := range want {
		if f.Pixels[i] != want[i] {
			t.Fatalf("pixel (%d,%d) = %+v, want %+v", i%f.Width, i/f.Width, f.Pixels[i], want[i])
		}
	}
}
