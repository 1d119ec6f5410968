// Package glsl compiles and links GLSL shader programs and uploads their
// uniforms. A current GL context is required for everything here.
package glsl

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/paperboard/gltutorials/internal/shaders"
)

var glStage = map[shaders.Stage]uint32{
	shaders.Vertex:      gl.VERTEX_SHADER,
	shaders.TessControl: gl.TESS_CONTROL_SHADER,
	shaders.TessEval:    gl.TESS_EVALUATION_SHADER,
	shaders.Geometry:    gl.GEOMETRY_SHADER,
	shaders.Fragment:    gl.FRAGMENT_SHADER,
}

// Program is a linked shader program.
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// Load reads the named program's stage sources from fsys and links them.
func Load(fsys fs.FS, name string) (*Program, error) {
	src, err := shaders.Sources(fsys, name)
	if err != nil {
		return nil, err
	}
	p, err := NewProgram(name, src)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewProgram compiles each stage, links them and deletes the shader objects.
func NewProgram(name string, sources map[shaders.Stage]string) (*Program, error) {
	var compiled []uint32
	cleanup := func() {
		for _, id := range compiled {
			gl.DeleteShader(id)
		}
	}
	defer cleanup()

	for _, stage := range shaders.Stages {
		source, ok := sources[stage]
		if !ok {
			continue
		}
		id, err := Compile(stage, source)
		if err != nil {
			return nil, errors.Wrapf(err, "program %q", name)
		}
		compiled = append(compiled, id)
	}

	program := gl.CreateProgram()
	for _, id := range compiled {
		gl.AttachShader(program, id)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	log := programLog(program)
	for _, id := range compiled {
		gl.DetachShader(program, id)
	}
	if status == gl.FALSE {
		gl.DeleteProgram(program)
		slog.Warn("link failed", "program", name, "log", log)
		return nil, errors.Errorf("failed to link program %q: %v", name, log)
	}
	if log != "" {
		slog.Debug("linked", "program", name, "log", log)
	}

	return &Program{ID: program, Name: name, uniforms: make(map[string]int32)}, nil
}

// Compile compiles one shader stage. On failure the info log is returned in
// the error and the shader object is deleted.
func Compile(stage shaders.Stage, source string) (uint32, error) {
	shaderType, ok := glStage[stage]
	if !ok {
		return 0, errors.Errorf("unknown shader stage %d", stage)
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	log := shaderLog(shader)
	if status == gl.FALSE {
		gl.DeleteShader(shader)
		slog.Warn("compile failed", "stage", stage.String(), "log", log)
		return 0, errors.Errorf("failed to compile %s shader: %v", stage, log)
	}
	if log != "" {
		slog.Debug("compiled", "stage", stage.String(), "log", log)
	}
	return shader, nil
}

// Reload relinks the program from fsys under the same name. The current
// program stays in use if the new sources fail to build.
func (p *Program) Reload(fsys fs.FS) error {
	np, err := Load(fsys, p.Name)
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.ID)
	p.ID = np.ID
	clear(p.uniforms)
	slog.Info("reloaded", "program", p.Name)
	return nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

// Uniform returns the location of a named uniform, -1 when the linker
// dropped it or it does not exist.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Debug("inactive uniform", "program", p.Name, "uniform", name)
	}
	p.uniforms[name] = loc
	return loc
}

// The setters below write to the program, which must be in use.

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.Uniform(name), 1, &v[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.Uniform(name), 1, &v[0])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
