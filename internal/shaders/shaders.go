// Package shaders provides the GLSL sources of the tutorial programs, either
// the copies embedded at build time or a directory on disk.
//
// A program is named by the base name of its files, one per stage:
//
//	lighting.vs    vertex
//	tess2d.tcs     tessellation control
//	tess2d.tes     tessellation evaluation
//	wireframe.gs   geometry
//	lighting.fs    fragment
package shaders

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Stage int

const (
	Vertex Stage = iota
	TessControl
	TessEval
	Geometry
	Fragment
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{Vertex, TessControl, TessEval, Geometry, Fragment}

var stageInfo = [...]struct {
	name string
	ext  string
}{
	Vertex:      {"vertex", ".vs"},
	TessControl: {"tessellation control", ".tcs"},
	TessEval:    {"tessellation evaluation", ".tes"},
	Geometry:    {"geometry", ".gs"},
	Fragment:    {"fragment", ".fs"},
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageInfo) {
		return "unknown"
	}
	return stageInfo[s].name
}

// Ext is the file extension holding the stage's source.
func (s Stage) Ext() string {
	if s < 0 || int(s) >= len(stageInfo) {
		return ""
	}
	return stageInfo[s].ext
}

// StageFromExt maps a file extension back to its stage.
func StageFromExt(ext string) (Stage, bool) {
	for _, s := range Stages {
		if stageInfo[s].ext == ext {
			return s, true
		}
	}
	return 0, false
}

//go:embed glsl
var embedded embed.FS

// FS returns the embedded sources when dir is empty, the directory otherwise.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "glsl")
	if err != nil {
		panic(err)
	}
	return sub
}

// Sources reads every stage file present for the named program. Vertex and
// fragment stages are required.
func Sources(fsys fs.FS, name string) (map[Stage]string, error) {
	src := make(map[Stage]string, len(Stages))
	for _, s := range Stages {
		data, err := fs.ReadFile(fsys, name+s.Ext())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s shader", s)
		}
		src[s] = string(data)
	}
	for _, s := range []Stage{Vertex, Fragment} {
		if _, ok := src[s]; !ok {
			return nil, errors.Errorf("program %q: missing %s", name, name+s.Ext())
		}
	}
	return src, nil
}

// ProgramName returns the program a shader file belongs to, or false if the
// file is not a shader source.
func ProgramName(file string) (string, bool) {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	if _, ok := StageFromExt(ext); !ok {
		return "", false
	}
	return base[:len(base)-len(ext)], true
}
