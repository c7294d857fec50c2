/*
Package gifdecode decodes GIF87a and GIF89a files held in memory into fully
composited frames.

Every image block is decompressed with GIF's LZW variant and drawn onto a
canvas the size of the logical screen. Transparent pixels let the canvas show
through and each frame's disposal method decides what the next frame is drawn
over, so every Frame is a complete picture of the animation at that point.

	g, err := gifdecode.Decode(data)
	if err != nil {
		return err // not a GIF, or the header is cut short
	}
	if g.Status != gifdecode.StatusComplete {
		log.Printf("partial gif: %v", g.Err())
	}
	for _, f := range g.Frames {
		show(f.Image(), f.Delay())
	}

Decoding stops early, keeping the frames decoded so far, when a sub-block is
cut short, when a Plain Text Extension is found, or when a block cannot be
recognised. Use StrictOptions to have DecodeWithOptions return that as an
error too.

Interlaced images are not reordered.
*/
package gifdecode
