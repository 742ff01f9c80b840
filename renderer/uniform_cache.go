package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// UniformCache caches uniform locations of one program and implements
// uniforms.Sink. The program must be in use when values are set.
type UniformCache struct {
	locations map[string]int32
	program   uint32
	// names maps source names to the names in the compiled code, for
	// translated shaders. Missing entries are used as-is.
	names map[string]string
}

func NewUniformCache(program uint32, names map[string]string) *UniformCache {
	return &UniformCache{
		locations: make(map[string]int32),
		program:   program,
		names:     names,
	}
}

// GetLocation returns the cached uniform location or fetches and caches it.
func (uc *UniformCache) GetLocation(name string) int32 {
	if loc, exists := uc.locations[name]; exists {
		return loc
	}
	mapped := name
	if m, ok := uc.names[name]; ok {
		mapped = m
	}
	loc := gl.GetUniformLocation(uc.program, gl.Str(mapped+"\x00"))
	uc.locations[name] = loc
	return loc
}

func (uc *UniformCache) SetInt(name string, v int32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1i(loc, v)
	}
}

func (uc *UniformCache) SetFloat(name string, v float32) {
	if loc := uc.GetLocation(name); loc != -1 {
		gl.Uniform1f(loc, v)
	}
}

func (uc *UniformCache) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	uc.SetInt(name, i)
}

func (uc *UniformCache) SetVec(name string, v []float32) {
	loc := uc.GetLocation(name)
	if loc == -1 {
		return
	}
	switch len(v) {
	case 2:
		gl.Uniform2f(loc, v[0], v[1])
	case 3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case 4:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (uc *UniformCache) SetInts(name string, v []int32) {
	if loc := uc.GetLocation(name); loc != -1 && len(v) > 0 {
		gl.Uniform1iv(loc, int32(len(v)), &v[0])
	}
}

func (uc *UniformCache) SetFloats(name string, v []float32) {
	if loc := uc.GetLocation(name); loc != -1 && len(v) > 0 {
		gl.Uniform1fv(loc, int32(len(v)), &v[0])
	}
}
