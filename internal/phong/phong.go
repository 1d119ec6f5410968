// Package phong uploads the transform and material uniforms shared by the
// lighting and wireframe shaders.
package phong

import (
	"github.com/paperboard/gltutorials/internal/camera"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/glsl"
)

// Apply sets the model, view, projection and normal matrices and the
// light and material parameters on p, which must be in use. The light
// position is given in eye space.
func Apply(p *glsl.Program, s config.Scene, t camera.Transforms) {
	SetTransforms(p, t)
	p.SetVec3("light_pos", s.LightPos)
	p.SetVec3("ambient_param", s.Ambient)
	p.SetVec3("diffuse_param", s.Diffuse)
	p.SetVec3("specular_param", s.Specular)
	p.SetFloat("shininess", s.Shininess)
}

func SetTransforms(p *glsl.Program, t camera.Transforms) {
	p.SetMat4("model_mat", t.Model)
	p.SetMat4("view_mat", t.View)
	p.SetMat4("proj_mat", t.Projection)
	p.SetMat4("normal_mat", t.Normal())
}
