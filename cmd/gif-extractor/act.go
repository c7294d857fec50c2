package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/illusionman1212/gifdecode"
)

// an .act file is 256 RGB triplets, the number of colors in use and the
// transparent index (0xFFFF for none)
const actColors = 256

func encodeACT(p gifdecode.Palette) ([]byte, error) {
	if len(p) > actColors {
		return nil, fmt.Errorf("act: %d colors, at most %d fit", len(p), actColors)
	}
	rgb, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}

	data := make([]byte, actColors*3+4)
	copy(data, rgb)
	binary.BigEndian.PutUint16(data[actColors*3:], uint16(len(p)))
	binary.BigEndian.PutUint16(data[actColors*3+2:], 0xFFFF)
	return data, nil
}

func WriteToACT(p gifdecode.Palette, fileName string) error {
	data, err := encodeACT(p)
	if err != nil {
		return err
	}
	return os.WriteFile(fileName, data, os.FileMode(0644))
}
