package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tutorial.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, mgl32.Vec3{0, 10, 20}, cfg.Scene.LightPos)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cfg.Scene.Ambient)
	assert.Equal(t, float32(4), cfg.Scene.Shininess)
	assert.Equal(t, 8, cfg.Scene.TessOuter)
	assert.Equal(t, float32(2), cfg.Scene.QuadLineWidth)
	assert.Equal(t, float32(0.2), cfg.Scene.EdgeThreshold)
	assert.Equal(t, float32(45), cfg.Scene.FieldOfView)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640
title = "teapot"

[scene]
light_pos = [1.0, 2.0, 3.0]
edge_threshold = 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, "teapot", cfg.Window.Title)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cfg.Scene.LightPos)
	assert.Equal(t, float32(0.5), cfg.Scene.EdgeThreshold)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, cfg.Scene.Diffuse)
	assert.Equal(t, "assets/icosahedron.obj", cfg.Assets.Model)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[window]\ndepth = 3\n"},
		{"syntax", "[window\nwidth = 1\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"tess level", "[scene]\ntess_outer = 65\n"},
		{"negative threshold", "[scene]\nedge_threshold = -1.0\n"},
		{"negative quad line", "[scene]\nquad_line_width = -2.0\n"},
		{"zero fov", "[scene]\nfov = 0.0\n"},
		{"straight fov", "[scene]\nfov = 180.0\n"},
		{"zero view distance", "[scene]\nview_distance = 0.0\n"},
		{"clip planes", "[scene]\nnear = 10.0\nfar = 1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
