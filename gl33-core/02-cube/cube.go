// Draws an indexed cube with per-vertex colors under a perspective camera.
package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gltutorials/internal/app"
	"github.com/paperboard/gltutorials/internal/camera"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
	"github.com/paperboard/gltutorials/internal/mesh"
)

const (
	cubeLength   = 1
	cubeAngle    = 0.2 // radians about z
	cubeDistance = 5

	vertexPositionSize = 4 // x,y,z,w
	vertexColorSize    = 3 // r,g,b
)

// red, green, green, yellow on every face
var cubeColors = []float32{
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 0,
}

type scene struct {
	cfg     *config.Config
	program *glsl.Program
	cube    *mesh.Model

	positions *gpu.Buffer
	colors    *gpu.Buffer
	indices   *gpu.Buffer
	vao       *gpu.VertexArray

	width, height int
}

func (s *scene) Setup(ctx *app.Context) error {
	s.cfg = ctx.Config
	s.width, s.height = ctx.Width, ctx.Height

	program, err := ctx.Program("cube")
	if err != nil {
		return err
	}
	s.program = program
	s.setupCamera()

	s.cube = mesh.NewCube(cubeLength)
	s.positions = gpu.NewArrayBuffer(s.cube.PositionData4())
	s.colors = gpu.NewArrayBuffer(cubeColors)

	s.vao = gpu.NewVertexArray()
	s.vao.Bind()
	s.vao.Attrib(0, vertexPositionSize, s.positions)
	s.vao.Attrib(1, vertexColorSize, s.colors)
	s.indices = gpu.NewElementBuffer(s.cube.IndexData())
	s.vao.Unbind()
	return nil
}

func (s *scene) setupCamera() {
	sc := s.cfg.Scene
	s.program.Use()
	s.program.SetMat4("model_mat", mgl32.HomogRotate3DZ(cubeAngle))
	s.program.SetMat4("view_mat", mgl32.Translate3D(0, 0, -cubeDistance))
	s.program.SetMat4("proj_mat", camera.Projection(sc.FieldOfView, s.width, s.height, sc.Near, sc.Far))
}

func (s *scene) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.program.Use()
	s.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, s.cube.DrawCount(), gl.UNSIGNED_INT, gl.PtrOffset(0))
	s.vao.Unbind()
}

func (s *scene) Resize(width, height int) {
	s.width, s.height = width, height
	s.setupCamera()
}

func (s *scene) Reloaded(*glsl.Program) {
	s.setupCamera()
}

func (s *scene) Destroy() {
	s.positions.Delete()
	s.colors.Delete()
	s.indices.Delete()
	s.vao.Delete()
}

func main() {
	app.Main(app.Options{Name: "02-cube", Major: 3, Minor: 3}, &scene{})
}
