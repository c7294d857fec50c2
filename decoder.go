package gifdecode

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// GIF is a decoded GIF: its header, global color table, and every frame
// composited to full canvas size.
type GIF struct {
	Header           Header
	GlobalColorTable Palette // nil when the file has none

	Frames []*Frame

	// Blocks lists the tags of the blocks walked, in order. See FormatStructure.
	Blocks []BlockTag

	LoopCount int // from the NETSCAPE2.0 extension, -1 if none
	Comments  []string

	// Status tells whether the trailer was reached. When it is not
	// StatusComplete, Frames holds the frames decoded before the stop and Err
	// describes it.
	Status Status
	stop   *DecodeError
}

func (g *GIF) Width() int {
	return int(g.Header.ScreenWidth)
}

func (g *GIF) Height() int {
	return int(g.Header.ScreenHeight)
}

// Err returns a *DecodeError when decoding stopped before the trailer.
func (g *GIF) Err() error {
	if g.stop == nil {
		return nil
	}
	return g.stop
}

// decoder is the state of one decode. Nothing in it is shared between calls.
type decoder struct {
	r    *blockReader
	g    *GIF
	gc   graphicsControl
	comp *compositor
	lzw  lzwDecoder

	// reused between image blocks
	stream  []byte
	indices []byte
}

// Decode decodes a complete GIF held in data with DefaultOptions.
func Decode(data []byte) (*GIF, error) {
	return DecodeWithOptions(data, nil)
}

// DecodeWithOptions decodes a complete GIF held in data. A bad signature
// or a header cut short is an error. A block stream that stops early is not,
// unless opts.Strict is set: the frames decoded so far are returned and
// GIF.Status says why decoding stopped. Options nil means DefaultOptions.
func DecodeWithOptions(data []byte, opts *Options) (*GIF, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	header, err := readHeader(data, opts)
	if err != nil {
		return nil, err
	}

	g := &GIF{
		Header:    *header,
		LoopCount: -1,
	}
	d := &decoder{
		r:    newBlockReader(data, HEADER_SIZE),
		g:    g,
		comp: newCompositor(g.Width(), g.Height(), header.BackgroundColor),
	}

	if header.HasGlobalColorTable() {
		g.GlobalColorTable, err = d.r.readPalette(header.GlobalColorTableEntries())
		if err != nil {
			d.fail(HEADER_SIZE, 0, err)
			return d.result(opts)
		}
	}

	d.walk()
	return d.result(opts)
}

func (d *decoder) result(opts *Options) (*GIF, error) {
	if opts.Strict && d.g.stop != nil {
		return d.g, d.g.stop
	}
	return d.g, nil
}

// fail records why the block at offset ended decoding.
func (d *decoder) fail(offset int, block BlockTag, err error) {
	status := StatusTruncated
	switch {
	case errors.Is(err, ErrUnsupported):
		status = StatusUnsupported
	case errors.Is(err, ErrMalformed):
		status = StatusMalformed
	}
	d.g.Status = status
	d.g.stop = &DecodeError{Offset: offset, Block: block, Err: status.err()}
}

// walk reads blocks until the trailer, or until one cannot be decoded.
func (d *decoder) walk() {
	for {
		offset := d.r.pos
		tag, err := d.r.readByte()
		if err != nil {
			d.fail(offset, 0, err)
			return
		}

		switch tag {
		case IMAGE_DESCRIPTOR:
			d.g.Blocks = append(d.g.Blocks, BlockTag(tag))
			if err := d.readImage(); err != nil {
				d.fail(offset, BlockTag(tag), err)
				return
			}
		case EXTENSION_BLOCK:
			label, err := d.r.readByte()
			if err != nil {
				d.fail(offset, BlockTag(tag), err)
				return
			}
			d.g.Blocks = append(d.g.Blocks, extensionTag(label))
			if err := d.readExtension(label); err != nil {
				d.fail(offset, extensionTag(label), err)
				return
			}
		case TRAILER:
			d.g.Blocks = append(d.g.Blocks, BlockTag(tag))
			d.g.Status = StatusComplete
			return
		default:
			// the byte is not a separator, so it has no tag of its own
			d.fail(offset, 0, ErrMalformed)
			return
		}
	}
}

// extensionTag keeps unknown labels out of the separator tag space.
func extensionTag(label byte) BlockTag {
	switch label {
	case GRAPHICS_CONTROL_BLOCK, APPLICATION_BLOCK, COMMENT_BLOCK, PLAINTEXT_BLOCK:
		return BlockTag(label)
	}
	return UNKNOWN_EXTENSION
}

func (d *decoder) readExtension(label byte) error {
	switch label {
	case GRAPHICS_CONTROL_BLOCK:
		return d.readGraphicsControl()
	case APPLICATION_BLOCK:
		return d.readApplication()
	case COMMENT_BLOCK:
		return d.readComment()
	case PLAINTEXT_BLOCK:
		return ErrUnsupported
	}
	return d.r.readSubBlocks(nil)
}

// readGraphicsControl reads the fixed size block, size byte and terminator
// included, and makes it the pending state for the next image.
func (d *decoder) readGraphicsControl() error {
	data, err := d.r.next(GRAPHICS_CONTROL_BLOCK_SIZE + 2)
	if err != nil {
		return err
	}

	block := GraphicsControlBlock{}
	if err := binary.Read(bytes.NewReader(data[1:1+GRAPHICS_CONTROL_BLOCK_SIZE]), binary.LittleEndian, &block); err != nil {
		return err
	}
	d.gc = block.state()
	return nil
}

func (d *decoder) readApplication() error {
	size, err := d.r.readByte()
	if err != nil {
		return err
	}
	identifier, err := d.r.next(int(size))
	if err != nil {
		return err
	}

	// NETSCAPE2.0 carries the loop count in its first sub-block: 1, lo, hi
	netscape := string(identifier) == "NETSCAPE2.0"
	first := true
	return d.r.readSubBlocks(func(block []byte) {
		if first && netscape && len(block) == 3 && block[0] == 1 {
			d.g.LoopCount = int(binary.LittleEndian.Uint16(block[1:]))
		}
		first = false
	})
}

func (d *decoder) readComment() error {
	size, err := d.r.peekByte()
	if err != nil {
		return err
	}
	if size == 0 {
		return ErrTruncated
	}

	var text []byte
	if err := d.r.readSubBlocks(func(block []byte) {
		text = append(text, block...)
	}); err != nil {
		return err
	}
	d.g.Comments = append(d.g.Comments, string(text))
	return nil
}

// readImage reads an image descriptor, its color table and data, and adds
// the composited frame.
func (d *decoder) readImage() error {
	data, err := d.r.next(IMAGE_DESCRIPTOR_SIZE)
	if err != nil {
		return err
	}
	desc := ImageDescriptor{}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &desc); err != nil {
		return err
	}

	palette := d.g.GlobalColorTable
	if desc.HasLocalColorTable() {
		d.g.Blocks = append(d.g.Blocks, LOCAL_COLOR_TABLE)
		palette, err = d.r.readPalette(desc.LocalColorTableEntries())
		if err != nil {
			return err
		}
	}
	transparent := -1
	if d.gc.transparent {
		transparent = int(d.gc.transparentIndex)
	}
	active := palette.withTransparency(transparent)

	d.g.Blocks = append(d.g.Blocks, IMAGE_DATA)
	minCodeSize, err := d.r.readByte()
	if err != nil {
		return err
	}
	if minCodeSize < 2 || minCodeSize > 8 {
		return ErrMalformed
	}

	d.stream = d.stream[:0]
	if err := d.r.readSubBlocks(func(block []byte) {
		d.stream = append(d.stream, block...)
	}); err != nil {
		return err
	}
	d.indices = d.lzw.decode(d.stream, int(minCodeSize), d.indices[:0])

	d.g.Frames = append(d.g.Frames, d.comp.compose(&desc, d.indices, active, d.gc))
	d.gc = graphicsControl{}
	return nil
}
