package main

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

var filters = map[string]draw.Interpolator{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.BiLinear,
	"catmullrom": draw.CatmullRom,
}

func lookupFilter(name string) (draw.Interpolator, error) {
	filter, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q (nearest, bilinear, catmullrom)", name)
	}
	return filter, nil
}

// scaleFrame resamples src by factor. Both sides are kept at least 1 pixel.
func scaleFrame(src *image.NRGBA, factor float64, filter draw.Interpolator) *image.NRGBA {
	bounds := src.Bounds()
	width := max(1, int(math.Round(float64(bounds.Dx())*factor)))
	height := max(1, int(math.Round(float64(bounds.Dy())*factor)))

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	filter.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}
