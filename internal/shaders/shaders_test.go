package shaders

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageExt(t *testing.T) {
	for _, s := range Stages {
		got, ok := StageFromExt(s.Ext())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := StageFromExt(".glsl")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Stage(42).String())
}

func TestProgramName(t *testing.T) {
	name, ok := ProgramName(filepath.Join("shaders", "tess2d.tcs"))
	assert.True(t, ok)
	assert.Equal(t, "tess2d", name)

	_, ok = ProgramName("README.md")
	assert.False(t, ok)
}

func TestEmbeddedPrograms(t *testing.T) {
	want := map[string][]Stage{
		"simple":     {Vertex, Fragment},
		"cube":       {Vertex, Fragment},
		"lighting":   {Vertex, Fragment},
		"wireframe":  {Vertex, Geometry, Fragment},
		"tess2d":     {Vertex, TessControl, TessEval, Geometry, Fragment},
		"edgedetect": {Vertex, Fragment},
	}
	fsys := FS("")
	for name, stages := range want {
		src, err := Sources(fsys, name)
		require.NoError(t, err, name)
		assert.Len(t, src, len(stages), name)
		for _, s := range stages {
			assert.Contains(t, src[s], "#version", "%s %s", name, s)
		}
	}
}

func TestSourcesMissingStage(t *testing.T) {
	fsys := fstest.MapFS{
		"only.vs": {Data: []byte("#version 330 core\n")},
	}
	_, err := Sources(fsys, "only")
	assert.ErrorContains(t, err, "only.fs")
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.Empty(t, w.Pending())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lighting.fs"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.vs"), []byte("x"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Pending()...)
		return len(uniq(got)) >= 2
	}, 5*time.Second, 10*time.Millisecond)

	assert.ElementsMatch(t, []string{"cube", "lighting"}, uniq(got))
}

func uniq(names []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
