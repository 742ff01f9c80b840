package uniforms

import (
	"github.com/richinsley/goshadertweak/bindings"
	"github.com/richinsley/goshadertweak/shader"
)

// Frame holds the per-frame uniforms fed by the viewer.
type Frame struct {
	Time       float32
	TimeDelta  float32
	Frame      int32
	Resolution [3]float32
	Mouse      [4]float32 // x, y, clickX, clickY
}

// Sink receives uniform values by name. Implementations ignore names the
// current program does not declare.
type Sink interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	// SetVec sets a vec2, vec3 or vec4 depending on len(v).
	SetVec(name string, v []float32)
	SetInts(name string, v []int32)
	SetFloats(name string, v []float32)
}

// PushFrame sends the frame uniforms to sink.
func PushFrame(f Frame, sink Sink) {
	sink.SetFloat(shader.UniformTime, f.Time)
	sink.SetFloat(shader.UniformTimeDelta, f.TimeDelta)
	sink.SetInt(shader.UniformFrame, f.Frame)
	sink.SetVec(shader.UniformResolution, f.Resolution[:])
	sink.SetVec(shader.UniformMouse, f.Mouse[:])
}

// Push sends the current value of every parameter in t to sink, in name
// order.
func Push(t bindings.Table, sink Sink) {
	for _, name := range t.Names() {
		switch v := t[name].Default.(type) {
		case bindings.Int:
			sink.SetInt(name, int32(v))
		case bindings.Float:
			sink.SetFloat(name, float32(v))
		case bindings.Bool:
			sink.SetBool(name, bool(v))
		case bindings.Vector:
			sink.SetVec(name, toFloat32(v))
		case bindings.IntArray:
			ints := make([]int32, len(v))
			for i, n := range v {
				ints[i] = int32(n)
			}
			sink.SetInts(name, ints)
		case bindings.FloatArray:
			sink.SetFloats(name, toFloat32(v))
		}
	}
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, f := range v {
		out[i] = float32(f)
	}
	return out
}
