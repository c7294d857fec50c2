package gifdecode

import "fmt"

func (v Palette) UnmarshalBinary(data []byte) error {
	if len(v)*3 != len(data) {
		return fmt.Errorf("len is not valid. required: %d, actual: %d", len(v)*3, len(data))
	}
	for i := 0; i < len(v); i++ {
		v[i].Red = data[i*3]
		v[i].Green = data[i*3+1]
		v[i].Blue = data[i*3+2]
	}
	return nil
}

func (v Palette) MarshalBinary() ([]byte, error) {
	data := make([]byte, len(v)*3)

	for i := 0; i < len(v); i++ {
		data[i*3] = v[i].Red
		data[i*3+1] = v[i].Green
		data[i*3+2] = v[i].Blue
	}

	return data, nil
}

// withTransparency builds the palette an image block draws with: every entry
// opaque except transparentIndex, if it is in range. Pass -1 for none.
func (v Palette) withTransparency(transparentIndex int) []Pixel {
	active := make([]Pixel, len(v))
	for i, c := range v {
		active[i] = Pixel{RGB: c, Opaque: i != transparentIndex}
	}
	return active
}

// readPalette reads a color table of the given number of entries at the
// cursor. Each call returns a fresh Palette.
func (v *blockReader) readPalette(entries int) (Palette, error) {
	data, err := v.next(entries * 3)
	if err != nil {
		return nil, err
	}
	palette := make(Palette, entries)
	if err := palette.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return palette, nil
}
