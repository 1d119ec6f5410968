package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
)

var errorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

var framebufferStatusNames = map[uint32]string{
	0x8219: `GL_FRAMEBUFFER_UNDEFINED`,
	0x8CD6: `GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT`,
	0x8CD7: `GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT`,
	0x8CDB: `GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER`,
	0x8CDC: `GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER`,
	0x8CDD: `GL_FRAMEBUFFER_UNSUPPORTED`,
	0x8D56: `GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE`,
	0x8DA8: `GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS`,
}

// statusError turns a glCheckFramebufferStatus result into an error, nil
// for GL_FRAMEBUFFER_COMPLETE.
func statusError(status uint32) error {
	if status == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	if name, ok := framebufferStatusNames[status]; ok {
		return errors.Errorf("framebuffer incomplete: %s", name)
	}
	return errors.Errorf("framebuffer incomplete: status 0x%x", status)
}

func errorName(code uint32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%x", code)
}

// CheckError drains the GL error queue. It returns nil when no error was
// recorded, otherwise an error naming every code that was.
func CheckError() error {
	var names []string
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		names = append(names, errorName(code))
		// a lost context keeps reporting GL_CONTEXT_LOST
		if code == 0x507 {
			break
		}
	}
	if len(names) == 0 {
		return nil
	}
	return errors.Errorf("GL_ERROR: %s", strings.Join(names, ", "))
}
