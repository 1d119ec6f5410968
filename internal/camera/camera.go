// Package camera builds the transform matrices the tutorial shaders take as
// uniforms.
//
// Object Space -> Eye Space -> Clip Space -> NDC Space -> Window Space
//
// The model matrix maps object coordinates to world coordinates, the view
// matrix world to eye coordinates (viewer at the origin looking down -z),
// and the projection matrix eye to clip coordinates. Dividing clip x,y,z by
// w gives normalized device coordinates in [-1, 1], which the viewport
// transform scales to window pixels.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection returns a perspective projection for a vertical field of view
// in degrees and a viewport of the given size.
func Projection(fovDeg float32, width, height int, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), float32(width)/float32(height), near, far)
}

// NormalMatrix transforms normals into eye space: the inverse transpose of
// the model-view matrix.
func NormalMatrix(view, model mgl32.Mat4) mgl32.Mat4 {
	return view.Mul4(model).Inv().Transpose()
}

// Viewport maps normalized device coordinates to window coordinates for a
// width x height viewport at the origin, with depth mapped to [0, 1].
func Viewport(width, height int) mgl32.Mat4 {
	w2 := float32(width) / 2
	h2 := float32(height) / 2
	return mgl32.Mat4{
		w2, 0, 0, 0,
		0, h2, 0, 0,
		0, 0, 0.5, 0,
		w2, h2, 0.5, 1,
	}
}

// Transforms is a model, view and projection matrix triple.
type Transforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// LookDown places the camera distance units in front of the origin looking
// down -z at a model with the given matrix.
func LookDown(model mgl32.Mat4, distance float32, projection mgl32.Mat4) Transforms {
	return Transforms{
		Model:      model,
		View:       mgl32.Translate3D(0, 0, -distance),
		Projection: projection,
	}
}

func (t Transforms) Normal() mgl32.Mat4 {
	return NormalMatrix(t.View, t.Model)
}

// MVP is projection * view * model.
func (t Transforms) MVP() mgl32.Mat4 {
	return t.Projection.Mul4(t.View).Mul4(t.Model)
}
