// Package app runs a tutorial scene: it parses the common flags, opens the
// window and GL context and drives the draw loop.
package app

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/paperboard/gltutorials/internal/capture"
	"github.com/paperboard/gltutorials/internal/config"
	"github.com/paperboard/gltutorials/internal/glsl"
	"github.com/paperboard/gltutorials/internal/gpu"
	"github.com/paperboard/gltutorials/internal/logx"
	"github.com/paperboard/gltutorials/internal/shaders"
)

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

// Options name a program and the GL core version it needs.
type Options struct {
	Name  string
	Major int
	Minor int
}

// Scene is one tutorial program. Setup runs once with the context current,
// Draw every frame, Destroy after the window closed.
type Scene interface {
	Setup(ctx *Context) error
	Draw()
	Destroy()
}

// Resizer is implemented by scenes that depend on the framebuffer size.
type Resizer interface {
	Resize(width, height int)
}

// Reloader is implemented by scenes that upload uniforms once: after a
// program was relinked its uniforms are back to zero.
type Reloader interface {
	Reloaded(p *glsl.Program)
}

// KeyHandler receives key presses the runner does not handle itself.
type KeyHandler interface {
	Key(key glfw.Key)
}

// Context is what a scene gets to set itself up.
type Context struct {
	Name    string
	Config  *config.Config
	Shaders fs.FS
	Window  *glfw.Window

	// framebuffer size in pixels
	Width  int
	Height int

	programs []*glsl.Program
	capture  bool
}

// Program loads and links a shader program. Programs loaded here are
// relinked when their sources change on disk.
func (ctx *Context) Program(name string) (*glsl.Program, error) {
	p, err := glsl.Load(ctx.Shaders, name)
	if err != nil {
		return nil, err
	}
	slog.Info("linked", "program", name)
	ctx.programs = append(ctx.programs, p)
	return p, nil
}

// Capture reads back the current framebuffer and saves it as a PNG in the
// configured capture directory under the given label.
func (ctx *Context) Capture(label string, pix []byte, width, height int) (string, error) {
	img, err := capture.FromRGBA(pix, width, height)
	if err != nil {
		return "", err
	}
	path, err := capture.Save(img, ctx.Config.Capture.Dir, label, time.Now())
	if err != nil {
		return "", err
	}
	slog.Info("saved capture", "path", path)
	return path, nil
}

// Main parses the command line, runs scene and exits non-zero on failure.
func Main(opts Options, scene Scene) {
	flags := flag.NewFlagSet(opts.Name, flag.ExitOnError)
	configPath := flags.String("config", "", "TOML settings file")
	shaderDir := flags.String("shaders", "", "load shaders from `dir` and reload them on change")
	model := flags.String("model", "", "Wavefront OBJ model to draw")
	vv := flags.Bool("vv", false, "debug logging")
	v := flags.Bool("v", false, "info logging")
	q := flags.Bool("q", false, "only log errors")
	flags.Parse(os.Args[1:])

	logx.SetDefault(logx.LevelFromFlags(*vv, *v, *q))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	if *shaderDir != "" {
		cfg.Assets.Shaders = *shaderDir
	}
	if *model != "" {
		cfg.Assets.Model = *model
	}

	if err := Run(opts, cfg, scene); err != nil {
		slog.Error(opts.Name, "err", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

// Run opens the window, sets the scene up and draws it until the window is
// closed.
func Run(opts Options, cfg *config.Config, scene Scene) error {
	// initialize glfw
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Println("GLSL version", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	ctx := &Context{
		Name:    opts.Name,
		Config:  cfg,
		Shaders: shaders.FS(cfg.Assets.Shaders),
		Window:  window,
	}
	ctx.Width, ctx.Height = window.GetFramebufferSize()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(ctx.Width), int32(ctx.Height))
	gl.ClearColor(0, 0, 0, 1)

	var watcher *shaders.Watcher
	if cfg.Assets.Shaders != "" {
		watcher, err = shaders.NewWatcher(cfg.Assets.Shaders)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	if err := scene.Setup(ctx); err != nil {
		return errors.Wrapf(err, "setup %s", opts.Name)
	}
	defer func() {
		scene.Destroy()
		for _, p := range ctx.programs {
			p.Delete()
		}
	}()
	if err := gpu.CheckError(); err != nil {
		return errors.Wrap(err, "after setup")
	}

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF12:
			ctx.capture = true
		default:
			if kh, ok := scene.(KeyHandler); ok {
				kh.Key(key)
			}
		}
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		// minimized
		if width == 0 || height == 0 {
			return
		}
		ctx.Width, ctx.Height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		slog.Debug("resize", "width", width, "height", height)
		if r, ok := scene.(Resizer); ok {
			r.Resize(width, height)
		}
	})

	for !window.ShouldClose() {
		if watcher != nil {
			ctx.reload(watcher.Pending(), scene)
		}

		scene.Draw()

		if ctx.capture {
			ctx.capture = false
			pix := gpu.ReadPixels(0, 0, ctx.Width, ctx.Height)
			if _, err := ctx.Capture(opts.Name, pix, ctx.Width, ctx.Height); err != nil {
				slog.Error("capture", "err", err)
			}
		}

		// check for accumulated OpenGL errors
		if err := gpu.CheckError(); err != nil {
			return err
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (ctx *Context) reload(changed []string, scene Scene) {
	for _, name := range changed {
		for _, p := range ctx.programs {
			if p.Name != name {
				continue
			}
			if err := p.Reload(ctx.Shaders); err != nil {
				slog.Error("reload", "program", name, "err", err)
				continue
			}
			if r, ok := scene.(Reloader); ok {
				r.Reloaded(p)
			}
		}
	}
}
