package bindings

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/shader"
)

const fragment = `#version 410 core
uniform float iTime;
uniform vec3 iResolution;
uniform float zoom = 1.0; // diff 0.1
uniform bool invert;
out vec4 fragColor;
void main() { fragColor = vec4(0.0); }
`

func TestOpenCreatesSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.frag.tweak.yaml")

	s, err := Open(path, shader.GenerateVertexShader(false), fragment)
	require.NoError(t, err)
	assert.Equal(t, []string{"invert", "zoom"}, s.Table.Names())
	assert.Equal(t, inputs.KeyQ, s.Table["zoom"].Controls[RoleIncrement])

	saved, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Table, saved)
}

func TestOpenKeepsEditsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.frag.tweak.yaml")

	s, err := Open(path, fragment)
	require.NoError(t, err)
	_, err = s.Dispatcher.KeyReleased(inputs.KeyW)
	require.NoError(t, err)
	require.NoError(t, Save(path, s.Table))

	again, err := Open(path, fragment)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), again.Table["invert"].Default)
	assert.Equal(t, s.Table, again.Table)
}

func TestSessionReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.frag.tweak.yaml")
	s, err := Open(path, fragment)
	require.NoError(t, err)
	s.Table["zoom"].Default = Float(4)

	edited := strings.Replace(fragment, "uniform bool invert;", "uniform int invert;", 1) + "uniform int level = 3;\n"
	require.NoError(t, s.Reload(edited))

	assert.Equal(t, Float(4), s.Table["zoom"].Default)
	assert.Equal(t, shader.KindInt, s.Table["invert"].Type)
	assert.Equal(t, inputs.KeyW, s.Table["invert"].Controls[RoleIncrement])
	assert.Equal(t, inputs.KeyS, s.Table["invert"].Controls[RoleDecrement])
	assert.Equal(t, Int(3), s.Table["level"].Default)

	// the dispatcher sees the same table
	name, err := s.Dispatcher.KeyReleased(s.Table["level"].Controls[RoleIncrement])
	require.NoError(t, err)
	assert.Equal(t, "level", name)
	assert.Equal(t, Int(4), s.Table["level"].Default)

	saved, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Int(3), saved["level"].Default)
}

func TestOpenUnsupportedKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.frag.tweak.yaml")
	_, err := Open(path, "uniform vec4 palette[4];\n")
	assert.ErrorIs(t, err, ErrNotImplemented)
}
