package gifdecode

import "io"

// blockReader is the cursor the whole decode walks with. The GIF is resident
// in data; pos is the offset of the next unread byte.
type blockReader struct {
	data []byte
	pos  int
}

func newBlockReader(data []byte, pos int) *blockReader {
	return &blockReader{
		data: data,
		pos:  pos,
	}
}

func (v *blockReader) readByte() (byte, error) {
	if v.pos >= len(v.data) {
		return 0, io.ErrUnexpectedEOF
	}
	b := v.data[v.pos]
	v.pos++
	return b, nil
}

// peekByte returns the byte at the cursor without consuming it.
func (v *blockReader) peekByte() (byte, error) {
	if v.pos >= len(v.data) {
		return 0, io.ErrUnexpectedEOF
	}
	return v.data[v.pos], nil
}

// next consumes n bytes and returns them. The slice aliases the input.
func (v *blockReader) next(n int) ([]byte, error) {
	if n < 0 || len(v.data)-v.pos < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := v.data[v.pos : v.pos+n]
	v.pos += n
	return b, nil
}

func (v *blockReader) skip(n int) error {
	_, err := v.next(n)
	return err
}

// readNextBlock reads one length-prefixed sub-block. It returns io.EOF at the
// zero-length block terminator.
func (v *blockReader) readNextBlock() ([]byte, error) {
	blockSize, err := v.readByte()
	if err != nil {
		return nil, err
	}
	if blockSize == 0 {
		return nil, io.EOF
	}
	return v.next(int(blockSize))
}

// readSubBlocks hands every sub-block payload to sink, up to and including
// the block terminator. A nil sink discards the data.
func (v *blockReader) readSubBlocks(sink func([]byte)) error {
	for {
		block, err := v.readNextBlock()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if sink != nil {
			sink(block)
		}
	}
}
