package gpu

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", errorName(gl.INVALID_OPERATION))
	assert.Equal(t, "GL_OUT_OF_MEMORY", errorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "0x9999", errorName(0x9999))
}

func TestStatusError(t *testing.T) {
	assert.NoError(t, statusError(gl.FRAMEBUFFER_COMPLETE))

	tests := []struct {
		status uint32
		want   string
	}{
		{gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT, "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT"},
		{gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"},
		{gl.FRAMEBUFFER_UNSUPPORTED, "GL_FRAMEBUFFER_UNSUPPORTED"},
		{0, "status 0x0"},
	}
	for _, tt := range tests {
		err := statusError(tt.status)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), tt.want)
		}
	}
}
