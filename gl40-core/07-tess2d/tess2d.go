// Tessellates a single quad patch and outlines the generated triangles.
package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gltutorials/internal/app"
	"github.com/paperboard/gltutorials/internal/camera"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
)

const (
	quadDistance = 5

	vertexPositionSize = 2 // x,y
	verticesPerPatch   = 4
)

// patch corners, counter-clockwise from bottom-left
var quad = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, 1,
}

type scene struct {
	cfg     *config.Config
	program *glsl.Program
	vbo     *gpu.Buffer
	vao     *gpu.VertexArray

	width, height int
}

func (s *scene) Setup(ctx *app.Context) error {
	s.cfg = ctx.Config
	s.width, s.height = ctx.Width, ctx.Height

	program, err := ctx.Program("tess2d")
	if err != nil {
		return err
	}
	s.program = program
	s.setupUniforms()

	s.vbo = gpu.NewArrayBuffer(quad)
	s.vao = gpu.NewVertexArray()
	s.vao.Bind()
	s.vao.Attrib(0, vertexPositionSize, s.vbo)
	s.vao.Unbind()

	gl.PatchParameteri(gl.PATCH_VERTICES, verticesPerPatch)
	return nil
}

func (s *scene) setupUniforms() {
	sc := s.cfg.Scene
	t := camera.Transforms{
		Model:      mgl32.Ident4(),
		View:       mgl32.Translate3D(0, 0, -quadDistance),
		Projection: camera.Projection(sc.FieldOfView, s.width, s.height, sc.Near, sc.Far),
	}

	s.program.Use()
	s.program.SetInt("outer_tess_level", int32(sc.TessOuter))
	s.program.SetInt("inner_tess_level", int32(sc.TessInner))
	s.program.SetMat4("mvp_mat", t.MVP())
	s.program.SetMat4("viewport_mat", camera.Viewport(s.width, s.height))
	s.program.SetFloat("line_width", sc.QuadLineWidth)
	s.program.SetVec4("line_color", sc.LineColor)
	s.program.SetVec4("quad_color", sc.QuadColor)
}

func (s *scene) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.program.Use()
	s.vao.Bind()
	gl.DrawArrays(gl.PATCHES, 0, int32(s.vbo.Len/vertexPositionSize))
	s.vao.Unbind()
}

func (s *scene) Resize(width, height int) {
	s.width, s.height = width, height
	s.setupUniforms()
}

func (s *scene) Reloaded(*glsl.Program) {
	s.setupUniforms()
}

func (s *scene) Destroy() {
	s.vbo.Delete()
	s.vao.Delete()
}

func main() {
	app.Main(app.Options{Name: "07-tess2d", Major: 4, Minor: 1}, &scene{})
}
