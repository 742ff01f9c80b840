package shader

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// ──────────────────────────────────── WebGL2 ────────────────────────────────────

// Translated to desktop GLSL together with the fragment shader in -webgl mode.
const vertexShaderSourceWebGL = `#version 300 es
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// GenerateVertexShader returns the fullscreen-quad vertex shader used when
// no vertex stage is supplied.
func GenerateVertexShader(webgl bool) string {
	if webgl {
		return vertexShaderSourceWebGL
	}
	return vertexShaderSourceGL
}

// Frame uniforms are fed by the viewer every frame and are never tweakable.
const (
	UniformTime       = "iTime"
	UniformTimeDelta  = "iTimeDelta"
	UniformResolution = "iResolution"
	UniformFrame      = "iFrame"
	UniformMouse      = "iMouse"
)

var builtins = map[string]bool{
	UniformTime:       true,
	UniformTimeDelta:  true,
	UniformResolution: true,
	UniformFrame:      true,
	UniformMouse:      true,
}

// IsBuiltin reports whether name is one of the frame uniforms.
func IsBuiltin(name string) bool {
	return builtins[name]
}

// Tweakable drops frame uniforms from decls.
func Tweakable(decls []Declaration) []Declaration {
	out := decls[:0:0]
	for _, d := range decls {
		if !IsBuiltin(d.Name) {
			out = append(out, d)
		}
	}
	return out
}
