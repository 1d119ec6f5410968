package filter

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, Luminance(color.White), 1e-9)
	assert.InDelta(t, 0.0, Luminance(color.Black), 1e-9)
	assert.InDelta(t, 0.2126, Luminance(color.NRGBA{R: 0xff, A: 0xff}), 1e-9)
}

func TestEdgeDetectUniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(img, img.Bounds(), color.NRGBA{R: 120, G: 60, B: 200, A: 255})

	out := EdgeDetect(img, 0.2)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, flatColor, out.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestEdgeDetectVerticalBoundary(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 6))
	fill(img, image.Rect(0, 0, 5, 6), color.NRGBA{A: 255})
	fill(img, image.Rect(5, 0, 10, 6), color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	out := EdgeDetect(img, 0.2)
	for y := 0; y < 6; y++ {
		assert.Equal(t, edgeColor, out.NRGBAAt(4, y), "left of boundary row %d", y)
		assert.Equal(t, edgeColor, out.NRGBAAt(5, y), "right of boundary row %d", y)
		assert.Equal(t, flatColor, out.NRGBAAt(1, y), "far left row %d", y)
		assert.Equal(t, flatColor, out.NRGBAAt(8, y), "far right row %d", y)
	}
}

func TestEdgeDetectThreshold(t *testing.T) {
	// a faint step: gradient^2 = (4 * 0.1)^2 = 0.16
	img := image.NewNRGBA(image.Rect(0, 0, 6, 3))
	fill(img, image.Rect(0, 0, 3, 3), color.NRGBA{A: 255})
	v := uint8(0.1*255 + 0.5)
	fill(img, image.Rect(3, 0, 6, 3), color.NRGBA{R: v, G: v, B: v, A: 255})

	assert.Equal(t, flatColor, EdgeDetect(img, 0.2).NRGBAAt(2, 1))
	assert.Equal(t, edgeColor, EdgeDetect(img, 0.1).NRGBAAt(2, 1))
}

func TestEdgeDetectOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 14, 14))
	fill(img, img.Bounds(), color.NRGBA{G: 255, A: 255})

	out := EdgeDetect(img, 0.2)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	assert.Equal(t, flatColor, out.NRGBAAt(0, 0))
}
