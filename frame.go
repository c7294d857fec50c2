package gifdecode

import (
	"image"
	"time"
)

// Frame is the canvas as it looked after one image block was drawn.
type Frame struct {
	Pixels  []Pixel // Width*Height, row major
	DelayMs uint32

	Width, Height int             // canvas size
	Bounds        image.Rectangle // the rectangle the image block covered

	Disposal   DisposalMethod
	Interlaced bool // stored interlaced; rows are kept in stored order
}

func (f *Frame) At(x, y int) Pixel {
	return f.Pixels[y*f.Width+x]
}

func (f *Frame) Delay() time.Duration {
	return time.Duration(f.DelayMs) * time.Millisecond
}

// Image converts the frame to an NRGBA image. Transparent pixels get alpha 0.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, p := range f.Pixels {
		c := p.NRGBA()
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = c.A
	}
	return img
}
