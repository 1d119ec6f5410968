package capture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRGBAFlips(t *testing.T) {
	// 2x2, bottom row red, top row blue in GL order
	pix := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	img, err := FromRGBA(pix, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, img.NRGBAAt(1, 1))
}

func TestFromRGBASizeMismatch(t *testing.T) {
	_, err := FromRGBA(make([]byte, 15), 2, 2)
	assert.Error(t, err)
	_, err = FromRGBA(nil, 0, 2)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	at := time.Date(2024, 3, 9, 14, 5, 6, 7e6, time.UTC)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{G: 200, A: 255})

	path, err := Save(img, dir, "08-edgedetect", at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "08-edgedetect-20240309-140506.007.png"), path)

	back, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	r, g, b, a := back.At(2, 1).RGBA()
	assert.Equal(t, []uint32{0, 200 * 0x101, 0, 0xffff}, []uint32{r, g, b, a})
}
