// Package gpu wraps the GL objects the tutorial programs allocate: vertex
// buffers, vertex arrays and off-screen framebuffers.
package gpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
)

// Buffer is a buffer object holding static vertex or index data.
type Buffer struct {
	ID     uint32
	Target uint32
	Len    int // elements, not bytes
}

// NewArrayBuffer copies float vertex data into a new GL_ARRAY_BUFFER.
func NewArrayBuffer(data []float32) *Buffer {
	b := &Buffer{Target: gl.ARRAY_BUFFER, Len: len(data)}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(b.Target, b.ID)
	gl.BufferData(b.Target, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(b.Target, 0)
	return b
}

// NewElementBuffer copies indices into a new GL_ELEMENT_ARRAY_BUFFER. It is
// left bound so a vertex array bound beforehand records it.
func NewElementBuffer(indices []uint32) *Buffer {
	b := &Buffer{Target: gl.ELEMENT_ARRAY_BUFFER, Len: len(indices)}
	gl.GenBuffers(1, &b.ID)
	gl.BindBuffer(b.Target, b.ID)
	gl.BufferData(b.Target, len(indices)*bytesUint32, gl.Ptr(indices), gl.STATIC_DRAW)
	return b
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.Target, b.ID)
}

func (b *Buffer) Delete() {
	gl.DeleteBuffers(1, &b.ID)
	b.ID = 0
}

// VertexArray records attribute layouts and the bound element buffer.
type VertexArray struct {
	ID uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.ID)
	return va
}

// Attrib points attribute index at buf, read as tightly packed float
// vectors of the given size, and enables it. The vertex array must be bound.
func (va *VertexArray) Attrib(index uint32, size int32, buf *Buffer) {
	buf.Bind()
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.ID)
}

func (va *VertexArray) Unbind() {
	gl.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.ID)
	va.ID = 0
}
