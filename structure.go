package gifdecode

import (
	"fmt"
	"strings"
)

// BlockTag identifies a block seen while walking the block stream. Extension
// blocks are recorded by their label, the rest by their separator byte.
type BlockTag byte

func (t BlockTag) String() string {
	switch t {
	case GRAPHICS_CONTROL_BLOCK:
		return "Graphics Control Extension"
	case APPLICATION_BLOCK:
		return "Application Extension"
	case COMMENT_BLOCK:
		return "Comment Extension"
	case PLAINTEXT_BLOCK:
		return "Plain Text Extension"
	case IMAGE_DESCRIPTOR:
		return "Image Descriptor"
	case LOCAL_COLOR_TABLE:
		return "Local Color Table"
	case IMAGE_DATA:
		return "Image Data"
	case TRAILER:
		return "Trailer"
	case UNKNOWN_EXTENSION:
		return "Unknown Extension"
	}
	return fmt.Sprintf("Block 0x%02X", byte(t))
}

// Names for the parts in front of the block stream, passed to StyleFunc.
const (
	PartHeader                  = "Header"
	PartLogicalScreenDescriptor = "Logical Screen Descriptor"
	PartGlobalColorTable        = "Global Color Table"
)

// StyleFunc decorates one part of a structure summary. tag is 0 for the
// parts in front of the block stream.
type StyleFunc func(tag BlockTag, name string) string

// FormatStructure renders the block layout of a GIF, one line per image,
// for example:
//
//	Header - Logical Screen Descriptor - Global Color Table
//	 - Graphics Control Extension - Image Descriptor - Image Data
//	 - Trailer
//
// style may be nil.
func FormatStructure(hasGlobalColorTable bool, tags []BlockTag, style StyleFunc) string {
	if style == nil {
		style = func(_ BlockTag, name string) string { return name }
	}

	var sb strings.Builder
	sb.WriteString(style(0, PartHeader))
	sb.WriteString(" - ")
	sb.WriteString(style(0, PartLogicalScreenDescriptor))
	if hasGlobalColorTable {
		sb.WriteString(" - ")
		sb.WriteString(style(0, PartGlobalColorTable))
	}
	sb.WriteString("\n")

	lineOpen := false
	for _, tag := range tags {
		sb.WriteString(" - ")
		sb.WriteString(style(tag, tag.String()))
		lineOpen = true
		if tag == IMAGE_DATA {
			sb.WriteString("\n")
			lineOpen = false
		}
	}
	if lineOpen {
		sb.WriteString("\n")
	}
	return sb.String()
}

// Structure is FormatStructure for g without styling.
func (g *GIF) Structure() string {
	return FormatStructure(g.Header.HasGlobalColorTable(), g.Blocks, nil)
}
