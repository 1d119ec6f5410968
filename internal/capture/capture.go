// Package capture turns pixels read back from a GL framebuffer into image
// files.
package capture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// FromRGBA wraps tightly packed RGBA rows as returned by glReadPixels. GL
// rows start at the bottom of the framebuffer, so the result is flipped to
// put the first image row at the top.
func FromRGBA(pix []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("capture size %dx%d", width, height)
	}
	if len(pix) != 4*width*height {
		return nil, errors.Errorf("capture has %d bytes, want %d for %dx%d", len(pix), 4*width*height, width, height)
	}
	img := &image.NRGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return imaging.FlipV(img), nil
}

// FileName is the name a capture of program taken at t is saved under.
func FileName(program string, t time.Time) string {
	return fmt.Sprintf("%s-%s.png", program, t.Format("20060102-150405.000"))
}

// Save writes img as a PNG into dir and returns the path written.
func Save(img image.Image, dir, program string, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "capture dir")
	}
	path := filepath.Join(dir, FileName(program, t))
	if err := imaging.Save(img, path); err != nil {
		return "", errors.Wrap(err, "save capture")
	}
	return path, nil
}
