package gifdecode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// readHeader validates the signature and decodes the header and logical
// screen descriptor. The global color table, if any, starts at HEADER_SIZE
// and the block stream right after it.
func readHeader(data []byte, opts *Options) (*Header, error) {
	if n := min(len(data), 3); n == 0 || string(data[:n]) != "GIF"[:n] {
		return nil, fmt.Errorf("%w: signature %q", ErrFormat, data[:min(len(data), 6)])
	}
	if len(data) < HEADER_SIZE {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncated, len(data), HEADER_SIZE)
	}

	header := &Header{}
	if err := binary.Read(bytes.NewReader(data[:HEADER_SIZE]), binary.LittleEndian, header); err != nil {
		return nil, err
	}

	if opts.Strict {
		switch strings.ToLower(header.VersionString()) {
		case "87a", "89a":
		default:
			return nil, fmt.Errorf("%w: version %q", ErrFormat, header.VersionString())
		}
	}
	if exceedsPixels(int(header.ScreenWidth), int(header.ScreenHeight), opts.MaxPixels) {
		return nil, fmt.Errorf("%w: %dx%d, limit %d pixels", ErrTooLarge, header.ScreenWidth, header.ScreenHeight, opts.MaxPixels)
	}

	// the background index is meaningless without a global color table
	if !header.HasGlobalColorTable() {
		header.BackgroundColor = 0
	}
	return header, nil
}
