package gifdecode

import "image/color"

const (
	EXTENSION_BLOCK = 0x21

	GRAPHICS_CONTROL_BLOCK      = 0xF9
	GRAPHICS_CONTROL_BLOCK_SIZE = 0x04

	PLAINTEXT_BLOCK = 0x01

	APPLICATION_BLOCK      = 0xFF
	APPLICATION_BLOCK_SIZE = 0x0B

	COMMENT_BLOCK    = 0xFE
	IMAGE_DESCRIPTOR = 0x2C
	TRAILER          = 0x3B

	// not on the wire, only recorded in GIF.Blocks
	LOCAL_COLOR_TABLE = 0x2D
	IMAGE_DATA        = 0x2E
	UNKNOWN_EXTENSION = 0x20 // any label not listed above
)

const (
	HEADER_SIZE           = 13 // header (6) + logical screen descriptor (7)
	IMAGE_DESCRIPTOR_SIZE = 9  // without the 0x2C separator

	// GIF format specifies a maximum code of 4095, the largest 12-bit number
	MAX_CODE = 4095
)

/*
HeaderPacked {
	0-2: 	GlobalColorTableSize
	  3: 	ColorTableSortFlag   | Only valid under 89a, 87a always sets it to 0
	4-6:	ColorResolution
	  7:	GlobalColorTableFlag
}
*/

type Header struct {
	Signature [3]byte // "GIF"
	Version   [3]byte // "87a" or "89a"

	// Logical Screen Descriptor
	ScreenWidth     uint16
	ScreenHeight    uint16
	Packed          byte
	BackgroundColor byte // forced to 0 if GlobalColorTableFlag is unset
	AspectRatio     byte
}

// HasGlobalColorTable reports whether a global color table follows the
// logical screen descriptor.
func (h *Header) HasGlobalColorTable() bool {
	return h.Packed&0x80 != 0
}

// GlobalColorTableEntries is the number of entries in the global color
// table, 0 when there is none.
func (h *Header) GlobalColorTableEntries() int {
	if !h.HasGlobalColorTable() {
		return 0
	}
	return 1 << ((h.Packed & 7) + 1)
}

func (h *Header) VersionString() string {
	return string(h.Version[:])
}

// [OPTIONAL]
// Comes right after the logical screen descriptor
// Size of color table is always a power of 2, with a max of 256 entries in the table
// ColorTableEntries = 1 << ((Packed & 7) + 1)
// ColorTableSize = 3 * (1 << ((Packed & 7) + 1))
type RGB struct {
	Red   byte
	Green byte
	Blue  byte
}

type Palette []RGB

// Pixel is a single canvas cell. The zero Pixel is the transparent marker
// that an empty canvas is filled with.
type Pixel struct {
	RGB
	Opaque bool
}

// NRGBA converts p for use with the image packages.
func (p Pixel) NRGBA() color.NRGBA {
	if !p.Opaque {
		return color.NRGBA{R: p.Red, G: p.Green, B: p.Blue}
	}
	return color.NRGBA{R: p.Red, G: p.Green, B: p.Blue, A: 0xFF}
}

/*
ImageDescriptorPacked {
	7:   LocalColorTableFlag | this flag is set (1) if the image contains a local color table
	6:   InterlaceFlag       | this flag is set (1) if the image is interlaced
	5:   SortFlag            | this flag is set (1) if the color table is sorted by importance (frequency of occurrence). only available on 89a
	3-4: Reserved
	0-2: LocalColorTableEntrySize
}
*/

type ImageDescriptor struct {
	Left   uint16 // X position of image
	Top    uint16 // Y position of image
	Width  uint16 // width of image in pixels
	Height uint16 // height of image in pixels
	Packed byte   // image and color table data information
}

func (d *ImageDescriptor) HasLocalColorTable() bool {
	return d.Packed&0x80 != 0
}

func (d *ImageDescriptor) Interlaced() bool {
	return d.Packed&0x40 != 0
}

func (d *ImageDescriptor) LocalColorTableEntries() int {
	return 1 << ((d.Packed & 7) + 1)
}

/*
GraphicsControlPacked {
	0:   TransparentColorFlag
	1:   UserInputFlag
	2-4: DisposalMethod
	5-7: Reserved
}
*/

/********************/
/* EXTENSION BLOCKS */
/********************/

// Only available on 89a and comes right before the image it applies to
type GraphicsControlBlock struct {
	Packed                byte   // method of graphics disposal to use
	DelayTime             uint16 // delay to wait, in hundredths of a second
	TransparentColorIndex byte   // transparent color index
}

// DisposalMethod tells how the canvas is treated after a frame is shown.
type DisposalMethod byte

const (
	DisposalUnspecified DisposalMethod = iota // no action
	DisposalNone                              // leave the image in place
	DisposalBackground                        // restore the canvas to the background
	DisposalPrevious                          // restore the canvas to its state before the frame
)

func (m DisposalMethod) String() string {
	switch m {
	case DisposalUnspecified:
		return "unspecified"
	case DisposalNone:
		return "do not dispose"
	case DisposalBackground:
		return "restore to background"
	case DisposalPrevious:
		return "restore to previous"
	}
	return "reserved"
}

// graphicsControl is the state left by the last Graphics Control Extension.
// It applies to the next image only.
type graphicsControl struct {
	delayMs          uint32
	disposal         DisposalMethod
	transparent      bool
	transparentIndex byte
}

func (b *GraphicsControlBlock) state() graphicsControl {
	return graphicsControl{
		delayMs:          uint32(b.DelayTime) * 10,
		disposal:         DisposalMethod((b.Packed >> 2) & 7),
		transparent:      b.Packed&1 == 1,
		transparentIndex: b.TransparentColorIndex,
	}
}
