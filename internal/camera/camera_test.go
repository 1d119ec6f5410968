package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec4(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-4), "want %v, got %v", want, got)
}

func TestViewport(t *testing.T) {
	vp := Viewport(1024, 768)

	assertVec4(t, mgl32.Vec4{0, 0, 0, 1}, vp.Mul4x1(mgl32.Vec4{-1, -1, -1, 1}))
	assertVec4(t, mgl32.Vec4{1024, 768, 1, 1}, vp.Mul4x1(mgl32.Vec4{1, 1, 1, 1}))
	assertVec4(t, mgl32.Vec4{512, 384, 0.5, 1}, vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1}))
}

func TestNormalMatrixRigid(t *testing.T) {
	// rotation plus translation: normals only rotate
	model := mgl32.HomogRotate3DX(-1)
	view := mgl32.Translate3D(0, 0, -50)

	n := NormalMatrix(view, model).Mat3()
	got := n.Mul3x1(mgl32.Vec3{0, 1, 0})
	want := model.Mat3().Mul3x1(mgl32.Vec3{0, 1, 0})
	assert.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v, got %v", want, got)
}

func TestNormalMatrixScale(t *testing.T) {
	// non-uniform scale keeps normals perpendicular to surfaces
	model := mgl32.Scale3D(2, 1, 1)
	n := NormalMatrix(mgl32.Ident4(), model).Mat3()

	tangent := model.Mat3().Mul3x1(mgl32.Vec3{1, -1, 0})
	normal := n.Mul3x1(mgl32.Vec3{1, 1, 0})
	assert.InDelta(t, 0, tangent.Dot(normal), 1e-5)
}

func TestProjection(t *testing.T) {
	p := Projection(45, 1024, 768, 0.1, 1000)
	want := mgl32.Perspective(mgl32.DegToRad(45), 1024.0/768.0, 0.1, 1000)
	assert.True(t, want.ApproxEqual(p))

	// a point on the near plane lands at NDC depth -1
	clip := p.Mul4x1(mgl32.Vec4{0, 0, -0.1, 1})
	assert.InDelta(t, -1, clip.Z()/clip.W(), 1e-4)
}

func TestTransforms(t *testing.T) {
	proj := Projection(45, 800, 600, 0.1, 1000)
	tr := LookDown(mgl32.Ident4(), 5, proj)

	assert.True(t, mgl32.Translate3D(0, 0, -5).ApproxEqual(tr.View))
	assert.True(t, proj.Mul4(tr.View).ApproxEqual(tr.MVP()))

	// origin projects to the center of the screen
	clip := tr.MVP().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-6)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-6)
	assert.True(t, mgl32.Ident3().ApproxEqual(tr.Normal().Mat3()))
}
