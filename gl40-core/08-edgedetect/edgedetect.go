// Renders a Phong shaded model into an off-screen framebuffer, then draws
// that texture to the window through a Sobel edge-detection filter.
//
// F11 saves the off-screen render and a CPU-filtered copy of it.
package main

import (
	"image"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gltutorials/internal/app"
	"github.com/paperboard/gltutorials/internal/camera"
	"github.com/paperboard/gltutorials/internal/capture"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/filter"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
	"github.com/paperboard/gltutorials/internal/mesh"
	"github.com/paperboard/gltutorials/internal/phong"
)

const (
	modelAngle = -1 // radians about x

	vertexPositionSize = 3 // x,y,z
	vertexNormalSize   = 3 // nx,ny,nz
	vertexTexCoordSize = 2 // s,t
)

// full screen quad as two triangles
var (
	screenPositions = []float32{
		-1, -1, 0, 1, -1, 0, -1, 1, 0,
		-1, 1, 0, 1, -1, 0, 1, 1, 0,
	}
	screenTexCoords = []float32{
		0, 0, 1, 0, 0, 1,
		0, 1, 1, 0, 1, 1,
	}
)

type scene struct {
	ctx *app.Context
	cfg *config.Config

	render *glsl.Program // draws the model into fbo
	filter *glsl.Program // draws fbo to the screen
	fbo    *gpu.Framebuffer
	model  *mesh.Model

	modelPositions *gpu.Buffer
	modelNormals   *gpu.Buffer
	modelVAO       *gpu.VertexArray
	quadPositions  *gpu.Buffer
	quadTexCoords  *gpu.Buffer
	quadVAO        *gpu.VertexArray

	width, height int
	snapshot      bool
}

func (s *scene) Setup(ctx *app.Context) error {
	s.ctx = ctx
	s.cfg = ctx.Config
	s.width, s.height = ctx.Width, ctx.Height

	model, err := mesh.LoadOBJ(ctx.Config.Assets.Model)
	if err != nil {
		return err
	}
	s.model = model

	if s.render, err = ctx.Program("lighting"); err != nil {
		return err
	}
	if s.filter, err = ctx.Program("edgedetect"); err != nil {
		return err
	}

	if s.fbo, err = gpu.NewFramebuffer(s.width, s.height); err != nil {
		return err
	}

	s.setupRenderUniforms()
	s.setupFilterUniforms()

	s.modelPositions = gpu.NewArrayBuffer(model.PositionData())
	s.modelNormals = gpu.NewArrayBuffer(model.NormalData())
	s.modelVAO = gpu.NewVertexArray()
	s.modelVAO.Bind()
	s.modelVAO.Attrib(0, vertexPositionSize, s.modelPositions)
	s.modelVAO.Attrib(1, vertexNormalSize, s.modelNormals)
	s.modelVAO.Unbind()

	s.quadPositions = gpu.NewArrayBuffer(screenPositions)
	s.quadTexCoords = gpu.NewArrayBuffer(screenTexCoords)
	s.quadVAO = gpu.NewVertexArray()
	s.quadVAO.Bind()
	s.quadVAO.Attrib(0, vertexPositionSize, s.quadPositions)
	s.quadVAO.Attrib(1, vertexTexCoordSize, s.quadTexCoords)
	s.quadVAO.Unbind()
	return nil
}

func (s *scene) setupRenderUniforms() {
	sc := s.cfg.Scene
	proj := camera.Projection(sc.FieldOfView, s.width, s.height, sc.Near, sc.Far)
	t := camera.LookDown(mgl32.HomogRotate3DX(modelAngle), sc.ViewDistance, proj)

	s.render.Use()
	phong.Apply(s.render, sc, t)
}

func (s *scene) setupFilterUniforms() {
	s.filter.Use()
	s.filter.SetInt("render_texture", 0)
	s.filter.SetInt("texture_width", s.fbo.Width)
	s.filter.SetInt("texture_height", s.fbo.Height)
	s.filter.SetFloat("edge_threshold", s.cfg.Scene.EdgeThreshold)
}

func (s *scene) Draw() {
	// pass 1: model into the texture
	s.fbo.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.render.Use()
	s.modelVAO.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, s.model.DrawCount())
	s.modelVAO.Unbind()

	if s.snapshot {
		s.snapshot = false
		s.saveSnapshot()
	}
	s.fbo.Unbind()

	// pass 2: filtered texture onto the screen
	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.filter.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.fbo.Texture)
	s.quadVAO.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(s.quadPositions.Len/vertexPositionSize))
	s.quadVAO.Unbind()
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// saveSnapshot writes the unfiltered render and its CPU edge-detected copy.
// The framebuffer must be bound.
func (s *scene) saveSnapshot() {
	w, h := int(s.fbo.Width), int(s.fbo.Height)
	img, err := capture.FromRGBA(s.fbo.ReadPixels(), w, h)
	if err != nil {
		slog.Error("snapshot", "err", err)
		return
	}

	now := time.Now()
	dir := s.cfg.Capture.Dir
	shots := []struct {
		label string
		img   image.Image
	}{
		{s.ctx.Name + "-render", img},
		{s.ctx.Name + "-cpu", filter.EdgeDetect(img, float64(s.cfg.Scene.EdgeThreshold))},
	}
	for _, shot := range shots {
		path, err := capture.Save(shot.img, dir, shot.label, now)
		if err != nil {
			slog.Error("snapshot", "label", shot.label, "err", err)
			continue
		}
		slog.Info("saved snapshot", "path", path)
	}
}

func (s *scene) Key(key glfw.Key) {
	if key == glfw.KeyF11 {
		s.snapshot = true
	}
}

func (s *scene) Resize(width, height int) {
	s.width, s.height = width, height
	if err := s.fbo.Resize(width, height); err != nil {
		slog.Error("resize framebuffer", "err", err)
	}
	s.setupRenderUniforms()
	s.setupFilterUniforms()
}

func (s *scene) Reloaded(p *glsl.Program) {
	switch p {
	case s.render:
		s.setupRenderUniforms()
	case s.filter:
		s.setupFilterUniforms()
	}
}

func (s *scene) Destroy() {
	s.modelPositions.Delete()
	s.modelNormals.Delete()
	s.quadPositions.Delete()
	s.quadTexCoords.Delete()
	s.modelVAO.Delete()
	s.quadVAO.Delete()
	s.fbo.Delete()
}

func main() {
	app.Main(app.Options{Name: "08-edgedetect", Major: 4, Minor: 1}, &scene{})
}
