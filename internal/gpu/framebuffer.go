package gpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

// Framebuffer renders off screen into a color texture with a depth
// renderbuffer attached.
type Framebuffer struct {
	ID           uint32
	Texture      uint32
	Renderbuffer uint32
	Width        int32
	Height       int32
}

// NewFramebuffer creates a complete framebuffer of the given size. The
// default framebuffer is bound again on return.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{Width: int32(width), Height: int32(height)}
	gl.GenFramebuffers(1, &fb.ID)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	fb.attachTexture()
	fb.attachRenderbuffer()

	if err := statusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER)); err != nil {
		fb.Delete()
		return nil, err
	}
	return fb, nil
}

func (fb *Framebuffer) attachTexture() {
	gl.GenTextures(1, &fb.Texture)
	gl.BindTexture(gl.TEXTURE_2D, fb.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.Width, fb.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Texture, 0)
}

func (fb *Framebuffer) attachRenderbuffer() {
	gl.GenRenderbuffers(1, &fb.Renderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Renderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.Width, fb.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.Renderbuffer)
}

// Bind makes fb the draw and read target and sets the viewport to cover it.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	gl.Viewport(0, 0, fb.Width, fb.Height)
}

// Unbind returns to the default framebuffer. The caller restores the window
// viewport.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resize reallocates the attachments when the size changed and checks the
// framebuffer is still complete.
func (fb *Framebuffer) Resize(width, height int) error {
	if int32(width) == fb.Width && int32(height) == fb.Height {
		return nil
	}
	fb.Width, fb.Height = int32(width), int32(height)

	gl.BindTexture(gl.TEXTURE_2D, fb.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.Width, fb.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Renderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.Width, fb.Height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.ID)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return errors.Wrapf(statusError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER)), "resize to %dx%d", width, height)
}

// ReadPixels reads the color attachment as tightly packed RGBA rows,
// bottom row first.
func (fb *Framebuffer) ReadPixels() []byte {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.ID)
	defer gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	return ReadPixels(0, 0, int(fb.Width), int(fb.Height))
}

func (fb *Framebuffer) Delete() {
	gl.DeleteRenderbuffers(1, &fb.Renderbuffer)
	gl.DeleteTextures(1, &fb.Texture)
	gl.DeleteFramebuffers(1, &fb.ID)
	fb.ID, fb.Texture, fb.Renderbuffer = 0, 0, 0
}

// ReadPixels reads a rectangle of the current read framebuffer as tightly
// packed RGBA rows, bottom row first.
func ReadPixels(x, y, width, height int) []byte {
	pix := make([]byte, 4*width*height)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
