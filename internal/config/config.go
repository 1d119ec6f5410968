// Package config holds the window, asset and scene settings shared by the
// tutorial programs. Settings are read from an optional TOML file layered
// over built-in defaults.
package config

import (
	"bytes"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	maxTessLevel = 64 // GL_MAX_TESS_GEN_LEVEL lower bound guaranteed by GL 4.0
)

type Config struct {
	Window  Window  `toml:"window"`
	Assets  Assets  `toml:"assets"`
	Scene   Scene   `toml:"scene"`
	Capture Capture `toml:"capture"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Assets struct {
	Model   string `toml:"model"`   // Wavefront OBJ file for the lit programs
	Shaders string `toml:"shaders"` // directory of GLSL sources, empty = embedded copies
}

// Scene carries the uniform values the programs upload once after linking.
type Scene struct {
	LightPos     mgl32.Vec3 `toml:"light_pos"`
	Ambient      mgl32.Vec3 `toml:"ambient"`
	Diffuse      mgl32.Vec3 `toml:"diffuse"`
	Specular     mgl32.Vec3 `toml:"specular"`
	Shininess    float32    `toml:"shininess"`
	FieldOfView  float32    `toml:"fov"` // degrees
	Near         float32    `toml:"near"`
	Far          float32    `toml:"far"`
	ViewDistance float32    `toml:"view_distance"`

	LineWidth     float32    `toml:"line_width"`
	LineColor     mgl32.Vec4 `toml:"line_color"`
	QuadLineWidth float32    `toml:"quad_line_width"` // tessellated quad outline
	QuadColor     mgl32.Vec4 `toml:"quad_color"`

	TessOuter int `toml:"tess_outer"`
	TessInner int `toml:"tess_inner"`

	EdgeThreshold float32 `toml:"edge_threshold"`
}

type Capture struct {
	Dir string `toml:"dir"`
}

// Default returns the settings the tutorials were written against.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:  1024,
			Height: 768,
			Title:  "Hello, World!",
			VSync:  true,
		},
		Assets: Assets{
			Model: "assets/icosahedron.obj",
		},
		Scene: Scene{
			LightPos:      mgl32.Vec3{0, 10, 20},
			Ambient:       mgl32.Vec3{1, 0, 0},
			Diffuse:       mgl32.Vec3{1, 1, 1},
			Specular:      mgl32.Vec3{1, 1, 1},
			Shininess:     4,
			FieldOfView:   45,
			Near:          0.1,
			Far:           1000,
			ViewDistance:  50,
			LineWidth:     1,
			LineColor:     mgl32.Vec4{1, 0, 0, 1},
			QuadLineWidth: 2,
			QuadColor:     mgl32.Vec4{1, 1, 1, 1},
			TessOuter:     8,
			TessInner:     8,
			EdgeThreshold: 0.2,
		},
		Capture: Capture{
			Dir: ".",
		},
	}
}

// Load reads the TOML file at path over the defaults. An empty path yields
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.Wrapf(err, "parse %s:%d:%d", path, row, col)
		}
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Near <= 0 || c.Scene.Far <= c.Scene.Near {
		return errors.Errorf("clip planes near=%v far=%v out of order", c.Scene.Near, c.Scene.Far)
	}
	if c.Scene.FieldOfView <= 0 || c.Scene.FieldOfView >= 180 {
		return errors.Errorf("fov %v outside (0, 180) degrees", c.Scene.FieldOfView)
	}
	if c.Scene.ViewDistance <= 0 {
		return errors.Errorf("view_distance %v must be positive", c.Scene.ViewDistance)
	}
	if c.Scene.TessOuter < 1 || c.Scene.TessOuter > maxTessLevel {
		return errors.Errorf("tess_outer %d outside 1..%d", c.Scene.TessOuter, maxTessLevel)
	}
	if c.Scene.TessInner < 1 || c.Scene.TessInner > maxTessLevel {
		return errors.Errorf("tess_inner %d outside 1..%d", c.Scene.TessInner, maxTessLevel)
	}
	if c.Scene.EdgeThreshold < 0 {
		return errors.Errorf("edge_threshold %v is negative", c.Scene.EdgeThreshold)
	}
	if c.Scene.LineWidth < 0 {
		return errors.Errorf("line_width %v is negative", c.Scene.LineWidth)
	}
	if c.Scene.QuadLineWidth < 0 {
		return errors.Errorf("quad_line_width %v is negative", c.Scene.QuadLineWidth)
	}
	return nil
}
