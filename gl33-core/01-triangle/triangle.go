// Draws a single white triangle from one vertex buffer.
package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/paperboard/gltutorials/internal/app"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
)

const vertexPositionSize = 3 // x,y,z

//	v0
//	| \
//	|  \
//	v1--v2
var triangle = []float32{
	-0.5, 0.5, 0, // v0 top-left
	-0.5, -0.5, 0, // v1 bottom-left
	0.5, -0.5, 0, // v2 bottom-right
}

type scene struct {
	program *glsl.Program
	vbo     *gpu.Buffer
	vao     *gpu.VertexArray
}

func (s *scene) Setup(ctx *app.Context) error {
	program, err := ctx.Program("simple")
	if err != nil {
		return err
	}
	s.program = program

	s.vbo = gpu.NewArrayBuffer(triangle)
	s.vao = gpu.NewVertexArray()
	s.vao.Bind()
	s.vao.Attrib(0, vertexPositionSize, s.vbo)
	s.vao.Unbind()
	return nil
}

func (s *scene) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.program.Use()
	s.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(s.vbo.Len/vertexPositionSize))
	s.vao.Unbind()
}

func (s *scene) Destroy() {
	s.vbo.Delete()
	s.vao.Delete()
}

func main() {
	app.Main(app.Options{Name: "01-triangle", Major: 3, Minor: 3}, &scene{})
}
