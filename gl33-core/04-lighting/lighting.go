// Draws an OBJ model with per-fragment Phong shading.
package main

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gltutorials/internal/app"
	"github.com/paperboard/gltutorials/internal/camera"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
	"github.com/paperboard/gltutorials/internal/mesh"
	"github.com/paperboard/gltutorials/internal/phong"
)

const (
	modelAngle = -1 // radians about x

	vertexPositionSize = 3 // x,y,z
	vertexNormalSize   = 3 // nx,ny,nz
)

type scene struct {
	cfg     *config.Config
	program *glsl.Program
	model   *mesh.Model

	positions *gpu.Buffer
	normals   *gpu.Buffer
	vao       *gpu.VertexArray

	width, height int
}

func (s *scene) Setup(ctx *app.Context) error {
	s.cfg = ctx.Config
	s.width, s.height = ctx.Width, ctx.Height

	model, err := mesh.LoadOBJ(ctx.Config.Assets.Model)
	if err != nil {
		return err
	}
	s.model = model
	slog.Info("loaded model", "path", ctx.Config.Assets.Model, "faces", model.FaceCount, "vertices", model.VertCount)

	program, err := ctx.Program("lighting")
	if err != nil {
		return err
	}
	s.program = program
	s.setupUniforms()

	s.positions = gpu.NewArrayBuffer(model.PositionData())
	s.normals = gpu.NewArrayBuffer(model.NormalData())

	s.vao = gpu.NewVertexArray()
	s.vao.Bind()
	s.vao.Attrib(0, vertexPositionSize, s.positions)
	s.vao.Attrib(1, vertexNormalSize, s.normals)
	s.vao.Unbind()
	return nil
}

func (s *scene) setupUniforms() {
	sc := s.cfg.Scene
	proj := camera.Projection(sc.FieldOfView, s.width, s.height, sc.Near, sc.Far)
	t := camera.LookDown(mgl32.HomogRotate3DX(modelAngle), sc.ViewDistance, proj)

	s.program.Use()
	phong.Apply(s.program, sc, t)
}

func (s *scene) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.program.Use()
	s.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, s.model.DrawCount())
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
	s.positions.Delete()
	s.normals.Delete()
	s.vao.Delete()
}

func main() {
	app.Main(app.Options{Name: "04-lighting", Major: 3, Minor: 3}, &scene{})
}
