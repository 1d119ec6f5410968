// Package filter is a CPU rendition of the edge-detection post-process, used
// to check captured frames against what the fragment shader produces.
package filter

import (
	"image"
	"image/color"
)

// Luminance weights of linear RGB (Rec. 709).
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

var (
	edgeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	flatColor = color.NRGBA{A: 0xff}
)

// Luminance returns the brightness of c in [0, 1].
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	return (lumR*float64(r) + lumG*float64(g) + lumB*float64(b)) / 0xffff
}

// EdgeDetect applies a 3x3 Sobel operator to the luminance of src. Pixels
// whose squared gradient magnitude exceeds threshold become white, all
// others opaque black. Samples past the border are clamped to the edge.
func EdgeDetect(src image.Image, threshold float64) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lum[y*w+x] = Luminance(src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	at := func(x, y int) float64 {
		x = clamp(x, 0, w-1)
		y = clamp(y, 0, h-1)
		return lum[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s00, s10, s20 := at(x-1, y-1), at(x-1, y), at(x-1, y+1)
			s01, s21 := at(x, y-1), at(x, y+1)
			s02, s12, s22 := at(x+1, y-1), at(x+1, y), at(x+1, y+1)

			sx := s00 + 2*s10 + s20 - (s02 + 2*s12 + s22)
			sy := s00 + 2*s01 + s02 - (s20 + 2*s21 + s22)

			if sx*sx+sy*sy > threshold {
				dst.SetNRGBA(x, y, edgeColor)
			} else {
				dst.SetNRGBA(x, y, flatColor)
			}
		}
	}
	return dst
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
