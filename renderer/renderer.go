package renderer

import (
	"fmt"
	"log"
	"maps"
	"strings"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/richinsley/goshadertweak/bindings"
	"github.com/richinsley/goshadertweak/graphics"
	"github.com/richinsley/goshadertweak/shader"
	xlate "github.com/richinsley/goshadertweak/translator"
	"github.com/richinsley/goshadertweak/uniforms"
)

var glInitOnce sync.Once

// Renderer draws one fragment shader over a fullscreen quad.
type Renderer struct {
	context  graphics.Context
	quadVAO  uint32
	quadVBO  uint32
	program  uint32
	uniforms *UniformCache
	webgl    bool

	startTime float64
	lastTime  float64
	frame     int32
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// NewRenderer initializes GL on ctx, which must be current on the calling
// thread, and uploads the quad. webgl selects translation of WebGL2 sources.
func NewRenderer(ctx graphics.Context, webgl bool) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		webgl:   webgl,
	}
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.startTime = ctx.Time()
	r.lastTime = r.startTime
	return r, nil
}

// Load builds a program from the given sources. An empty vertex source
// selects the built-in fullscreen vertex shader. On failure the previous
// program stays active.
func (r *Renderer) Load(vertexSource, fragmentSource string) error {
	names := map[string]string{}
	if vertexSource == "" {
		vertexSource = shader.GenerateVertexShader(r.webgl)
	}

	// both stages go through the translator so varyings keep matching names
	if r.webgl {
		vs, err := xlate.Translate(vertexSource, "vertex")
		if err != nil {
			return err
		}
		fs, err := xlate.Translate(fragmentSource, "fragment")
		if err != nil {
			return err
		}
		vertexSource, fragmentSource = vs.Code, fs.Code
		maps.Copy(names, vs.Names)
		maps.Copy(names, fs.Names)
	}

	program, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.program = program
	r.uniforms = NewUniformCache(program, names)
	return nil
}

// RenderFrame pushes the frame uniforms and the current parameter values,
// then draws the quad. Call Load first.
func (r *Renderer) RenderFrame(t bindings.Table) {
	if r.program == 0 {
		return
	}
	now := r.context.Time()
	width, height := r.context.GetFramebufferSize()

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.program)

	uniforms.PushFrame(uniforms.Frame{
		Time:       float32(now - r.startTime),
		TimeDelta:  float32(now - r.lastTime),
		Frame:      r.frame,
		Resolution: [3]float32{float32(width), float32(height), 1},
		Mouse:      r.context.GetMouseInput(),
	}, r.uniforms)
	uniforms.Push(t, r.uniforms)

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	r.lastTime = now
	r.frame++
}

func (r *Renderer) Shutdown() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
