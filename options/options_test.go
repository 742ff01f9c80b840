package options

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	o, err := Parse([]string{"-fragment", "julia.frag"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "julia.frag", *o.Fragment)
	assert.Equal(t, "julia.frag.tweak.yaml", *o.Sidecar)
	assert.Equal(t, "julia.frag", *o.Title)
	assert.Equal(t, 512, *o.Width)
	assert.Equal(t, 512, *o.Height)
	assert.False(t, *o.WebGL)
	assert.Equal(t, []string{"julia.frag"}, o.Sources())
}

func TestParsePositionalFragment(t *testing.T) {
	o, err := Parse([]string{"-watch", "blobs.frag"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "blobs.frag", *o.Fragment)
	assert.True(t, *o.Watch)
}

func TestParseShaderBase(t *testing.T) {
	o, err := Parse([]string{"-shader", "julia/julia", "-title", "Julia"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "julia/julia.f.glsl", *o.Fragment)
	assert.Equal(t, "julia/julia.v.glsl", *o.Vertex)
	assert.Equal(t, "julia/julia.tweak.yaml", *o.Sidecar)
	assert.Equal(t, "Julia", *o.Title)
	assert.Equal(t, []string{"julia/julia.v.glsl", "julia/julia.f.glsl"}, o.Sources())
}

func TestParseExpandsHome(t *testing.T) {
	o, err := Parse([]string{"-fragment", "~/shaders/a.frag"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotContains(t, *o.Fragment, "~")
	assert.True(t, filepath.IsAbs(*o.Fragment))
}

func TestParseRequiresFragment(t *testing.T) {
	_, err := Parse(nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-help"}, &out)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, out.String(), "-fragment")
}

func TestParseRejectsBadSize(t *testing.T) {
	_, err := Parse([]string{"-fragment", "a.frag", "-width", "0"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestConfigFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweak.toml")
	cfg := `fragment = "plasma.frag"
width = 800
height = 600
webgl = true
title = "from config"
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	o, err := Parse([]string{"-config", path, "-width", "1024"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "plasma.frag", *o.Fragment)
	assert.Equal(t, 1024, *o.Width)
	assert.Equal(t, 600, *o.Height)
	assert.True(t, *o.WebGL)
	assert.Equal(t, "from config", *o.Title)
	assert.Equal(t, "plasma.frag.tweak.yaml", *o.Sidecar)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Parse([]string{"-config", filepath.Join(dir, "missing.toml")}, &bytes.Buffer{})
	assert.Error(t, err)

	path := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(path, []byte("fragment = \"a.frag\"\nfps = 60\n"), 0o644))
	_, err = Parse([]string{"-config", path}, &bytes.Buffer{})
	assert.Error(t, err)
}
