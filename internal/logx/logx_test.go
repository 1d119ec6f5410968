package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), slog.LevelInfo)
	log := slog.New(h)

	log.Debug("hidden")
	log.Info("compiled shader", "stage", "vertex", "file", "lighting.vs")
	log.With("program", "wireframe").Warn("link log", "log", "unused varying")

	assert.Equal(t,
		"INFO  compiled shader stage=vertex file=lighting.vs\n"+
			"WARN  link log program=wireframe log=\"unused varying\"\n",
		buf.String())
}

func TestHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)), slog.LevelDebug)
	slog.New(h).WithGroup("fbo").Debug("resize", "width", 800, slog.Group("tex", "id", 3))

	assert.Equal(t, "DEBUG resize fbo.width=800 fbo.tex.id=3\n", buf.String())
}

func TestNewHandlerPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewHandler(&buf, slog.LevelError)).Error("boom")
	assert.Equal(t, "ERROR boom\n", buf.String())
}
