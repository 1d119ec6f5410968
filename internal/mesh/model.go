// Package mesh holds vertex data for the tutorial programs: the built-in
// cube and models flattened from Wavefront OBJ files.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model is per-vertex attribute data ready for upload. Indexed models draw
// Faces with glDrawElements; flattened models draw VertCount vertices with
// glDrawArrays and leave Faces empty.
type Model struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     [][3]uint32

	VertCount int
	FaceCount int
	Indexed   bool
}

// NewCube returns an axis-aligned cube centered at the origin. Each face has
// its own four vertices so normals stay flat.
//
//	   v6----- v5
//	  /|      /|
//	 v1------v0|
//	 | |     | |
//	 | v7----|-v4
//	 |/      |/
//	 v2------v3
func NewCube(length float32) *Model {
	n := length / 2

	positions := []mgl32.Vec3{
		// +yz plane
		{n, n, n}, {n, -n, n}, {n, -n, -n}, {n, n, -n},
		// -yz plane
		{-n, n, -n}, {-n, -n, -n}, {-n, -n, n}, {-n, n, n},
		// +xz plane
		{-n, n, -n}, {-n, n, n}, {n, n, n}, {n, n, -n},
		// -xz plane
		{n, -n, n}, {n, -n, -n}, {-n, -n, -n}, {-n, -n, n},
		// +xy plane
		{-n, n, n}, {-n, -n, n}, {n, -n, n}, {n, n, n},
		// -xy plane
		{n, n, -n}, {n, -n, -n}, {-n, -n, -n}, {-n, n, -n},
	}

	planeNormals := []mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}

	m := &Model{
		Positions: positions,
		Normals:   make([]mgl32.Vec3, 0, len(positions)),
		VertCount: len(positions),
		Indexed:   true,
	}
	for i, nrm := range planeNormals {
		for j := 0; j < 4; j++ {
			m.Normals = append(m.Normals, nrm)
		}
		base := uint32(i * 4)
		m.Faces = append(m.Faces,
			[3]uint32{base, base + 1, base + 3},
			[3]uint32{base + 3, base + 1, base + 2},
		)
	}
	m.FaceCount = len(m.Faces)
	return m
}

// PositionData returns positions as packed x,y,z floats.
func (m *Model) PositionData() []float32 {
	return flatten3(m.Positions)
}

// PositionData4 returns positions as packed x,y,z,w floats with w = 1.
func (m *Model) PositionData4() []float32 {
	data := make([]float32, 0, 4*len(m.Positions))
	for _, p := range m.Positions {
		data = append(data, p[0], p[1], p[2], 1)
	}
	return data
}

func (m *Model) NormalData() []float32 {
	return flatten3(m.Normals)
}

func (m *Model) TexCoordData() []float32 {
	data := make([]float32, 0, 2*len(m.TexCoords))
	for _, t := range m.TexCoords {
		data = append(data, t[0], t[1])
	}
	return data
}

// IndexData returns the face indices of an indexed model, three per face.
func (m *Model) IndexData() []uint32 {
	data := make([]uint32, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		data = append(data, f[0], f[1], f[2])
	}
	return data
}

// DrawCount is the number of vertices or indices a draw call consumes.
func (m *Model) DrawCount() int32 {
	if m.Indexed {
		return int32(3 * m.FaceCount)
	}
	return int32(m.VertCount)
}

func flatten3(vs []mgl32.Vec3) []float32 {
	data := make([]float32, 0, 3*len(vs))
	for _, v := range vs {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}
