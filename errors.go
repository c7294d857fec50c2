package gifdecode

import (
	"errors"
	"fmt"
)

var (
	ErrFormat      = errors.New("gif: not a GIF file")
	ErrTruncated   = errors.New("gif: truncated block stream")
	ErrUnsupported = errors.New("gif: unsupported block")
	ErrMalformed   = errors.New("gif: malformed block")
	ErrTooLarge    = errors.New("gif: canvas too large")
)

// Status tells how decoding of the block stream ended.
type Status int

const (
	StatusComplete    Status = iota // the trailer was reached
	StatusTruncated                 // a sub-block could not be read
	StatusUnsupported               // a plain text extension was found
	StatusMalformed                 // an unknown block or an invalid LZW code size was found
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusTruncated:
		return "truncated"
	case StatusUnsupported:
		return "unsupported"
	case StatusMalformed:
		return "malformed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) err() error {
	switch s {
	case StatusTruncated:
		return ErrTruncated
	case StatusUnsupported:
		return ErrUnsupported
	case StatusMalformed:
		return ErrMalformed
	}
	return nil
}

// DecodeError describes where decoding stopped early.
type DecodeError struct {
	Offset int      // cursor position of the block that stopped decoding
	Block  BlockTag // that block's tag, 0 if none could be read
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Block == 0 {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v: %s at offset %d", e.Err, e.Block, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
