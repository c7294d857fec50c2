package gifdecode

import "image"

// compositor owns the working canvas. Every image block is drawn onto it and
// a copy becomes the block's Frame; the disposal method of that frame then
// decides what the next one is drawn over. The canvas is allocated by the
// first image block, so a GIF without images costs no pixel memory.
type compositor struct {
	width, height int
	background    byte

	canvas       []Pixel
	snapshot     []Pixel // canvas as it was before the current frame
	prevDisposal DisposalMethod
}

func newCompositor(width, height int, background byte) *compositor {
	return &compositor{
		width:        width,
		height:       height,
		background:   background,
		prevDisposal: DisposalBackground,
	}
}

// compose draws indices, row by row over desc's rectangle, and returns the
// resulting frame.
func (c *compositor) compose(desc *ImageDescriptor, indices []byte, palette []Pixel, gc graphicsControl) *Frame {
	left, top := int(desc.Left), int(desc.Top)
	w, h := int(desc.Width), int(desc.Height)

	if c.canvas == nil {
		c.canvas = make([]Pixel, c.width*c.height)
		c.snapshot = make([]Pixel, c.width*c.height)
	}

	// the part of the rectangle that lies on the canvas
	rows := min(h, c.height-top)
	cols := min(w, c.width-left)

	for row := 0; row < rows; row++ {
		y := top + row
		for col := 0; col < cols; col++ {
			x := left + col

			idx := c.background
			if i := row*w + col; i < len(indices) {
				idx = indices[i]
			}
			if int(idx) >= len(palette) {
				continue
			}
			p := palette[idx]
			// a transparent pixel lets the canvas show through, unless the
			// canvas was just cleared
			if !p.Opaque && c.prevDisposal != DisposalBackground {
				continue
			}
			c.canvas[y*c.width+x] = p
		}
	}

	frame := &Frame{
		Pixels:     append([]Pixel(nil), c.canvas...),
		DelayMs:    gc.delayMs,
		Width:      c.width,
		Height:     c.height,
		Bounds:     image.Rect(left, top, left+w, top+h),
		Disposal:   gc.disposal,
		Interlaced: desc.Interlaced(),
	}

	switch gc.disposal {
	case DisposalBackground:
		clear(c.canvas)
	case DisposalPrevious:
		copy(c.canvas, c.snapshot)
	}
	copy(c.snapshot, c.canvas)
	c.prevDisposal = gc.disposal

	return frame
}
