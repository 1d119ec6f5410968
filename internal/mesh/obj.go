package mesh

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var (
	ErrNoShape        = errors.New("obj: no faces")
	ErrMultipleShapes = errors.New("obj: does not support more than 1 shape")
	ErrDegenerateFace = errors.New("obj: face has fewer than 3 vertices")
)

// components each vertex statement is padded to before decoding
var recordSize = map[string]int{
	"v":  3,
	"vn": 3,
	"vt": 2,
}

// LoadOBJ reads a Wavefront OBJ file and flattens it with DecodeOBJ.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load model")
	}
	defer f.Close()

	m, err := DecodeOBJ(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

// DecodeOBJ parses a single-shape OBJ stream and expands its faces into a
// flat, non-indexed vertex stream: vertex i of the result is the i-th
// face-vertex reference after polygons are split into triangle fans.
// References without a normal or texture coordinate leave those attributes
// zero. Materials are not loaded.
func DecodeOBJ(r io.Reader) (*Model, error) {
	src, err := normalize(r)
	if err != nil {
		return nil, err
	}
	dec, err := obj.DecodeReader(src, strings.NewReader(""))
	if err != nil {
		return nil, errors.Wrap(err, "decode obj")
	}

	var shapes []*obj.Object
	for i := range dec.Objects {
		if len(dec.Objects[i].Faces) > 0 {
			shapes = append(shapes, &dec.Objects[i])
		}
	}
	switch len(shapes) {
	case 0:
		return nil, ErrNoShape
	case 1:
	default:
		return nil, errors.Wrapf(ErrMultipleShapes, "found %d", len(shapes))
	}

	return flatten(dec, shapes[0])
}

// normalize rewrites the stream into the form the decoder accepts: short
// v, vn and vt records get their missing trailing components as 0, and a
// face before any o statement opens an unnamed object. Faces with fewer
// than three vertices are rejected here so the error names the line.
func normalize(r io.Reader) (io.Reader, error) {
	var out bytes.Buffer
	haveObject := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v", "vn", "vt":
			n := recordSize[fields[0]]
			if len(fields) == 1 {
				return nil, errors.Errorf("obj line %d: %s has no values", line, fields[0])
			}
			for len(fields) < n+1 {
				fields = append(fields, "0")
			}
		case "o":
			haveObject = true
		case "f":
			if len(fields) < 4 {
				return nil, errors.Wrapf(ErrDegenerateFace, "obj line %d", line)
			}
			if !haveObject {
				out.WriteString("o default\n")
				haveObject = true
			}
		}
		out.WriteString(strings.Join(fields, " "))
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "obj read")
	}
	return &out, nil
}

func flatten(dec *obj.Decoder, s *obj.Object) (*Model, error) {
	nv := len(dec.Vertices) / 3
	nn := len(dec.Normals) / 3
	nt := len(dec.Uvs) / 2

	m := &Model{}
	for fi, face := range s.Faces {
		if len(face.Vertices) < 3 {
			return nil, errors.Wrapf(ErrDegenerateFace, "face %d", fi+1)
		}
		for _, v := range face.Vertices {
			if v < 0 || v >= nv {
				return nil, errors.Errorf("face %d: vertex index %d out of range (%d defined)", fi+1, v+1, nv)
			}
		}

		// fan around the first vertex
		for i := 2; i < len(face.Vertices); i++ {
			for _, k := range [3]int{0, i - 1, i} {
				v := face.Vertices[k]
				m.Positions = append(m.Positions, mgl32.Vec3{
					dec.Vertices[3*v], dec.Vertices[3*v+1], dec.Vertices[3*v+2],
				})

				var n mgl32.Vec3
				if k < len(face.Normals) {
					if ni := face.Normals[k]; ni >= 0 && ni < nn {
						n = mgl32.Vec3{dec.Normals[3*ni], dec.Normals[3*ni+1], dec.Normals[3*ni+2]}
					}
				}
				m.Normals = append(m.Normals, n)

				var t mgl32.Vec2
				if k < len(face.Uvs) {
					if ti := face.Uvs[k]; ti >= 0 && ti < nt {
						t = mgl32.Vec2{dec.Uvs[2*ti], dec.Uvs[2*ti+1]}
					}
				}
				m.TexCoords = append(m.TexCoords, t)
			}
			m.FaceCount++
		}
	}
	m.VertCount = len(m.Positions)
	return m, nil
}
