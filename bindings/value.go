package bindings

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/richinsley/goshadertweak/shader"
)

// Value is the current value of a uniform. The concrete type is determined
// by the descriptor's kind:
//
//	int        Int
//	float      Float
//	bool       Bool
//	vec2..4    Vector
//	int[]      IntArray
//	float[]    FloatArray
type Value interface {
	isValue()
	String() string
}

type (
	Int        int64
	Float      float64
	Bool       bool
	Vector     []float64
	IntArray   []int64
	FloatArray []float64
)

func (Int) isValue()        {}
func (Float) isValue()      {}
func (Bool) isValue()       {}
func (Vector) isValue()     {}
func (IntArray) isValue()   {}
func (FloatArray) isValue() {}

func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return formatFloat(float64(v)) }
func (v Bool) String() string  { return strconv.FormatBool(bool(v)) }

func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = formatFloat(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (v IntArray) String() string {
	return abbreviate(len(v), func(i int) string { return strconv.FormatInt(v[i], 10) })
}

func (v FloatArray) String() string {
	return abbreviate(len(v), func(i int) string { return formatFloat(v[i]) })
}

// abbreviate prints short sequences in full and longer ones as the first
// three elements, an ellipsis and the last element.
func abbreviate(n int, elem func(int) string) string {
	if n <= 4 {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = elem(i)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("[%s, %s, %s, ..., %s]", elem(0), elem(1), elem(2), elem(n-1))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseInt reads a decimal integer literal; leading zeros do not mean
// octal. Float literals are truncated.
func parseInt(lit string) (Int, error) {
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer literal %q: %w", lit, err)
	}
	return Int(math.Trunc(f)), nil
}

func parseFloat(lit string) (Float, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float literal %q: %w", lit, err)
	}
	return Float(f), nil
}

// sequence returns 0, 1, ..., n-1 in the element type of an array kind.
func sequence(kind shader.Kind, n int) Value {
	switch kind {
	case shader.KindIntArray:
		v := make(IntArray, n)
		for i := range v {
			v[i] = int64(i)
		}
		return v
	case shader.KindFloatArray:
		v := make(FloatArray, n)
		for i := range v {
			v[i] = float64(i)
		}
		return v
	}
	return nil
}

// cloneValue returns a deep copy so descriptors never share slices.
func cloneValue(v Value) Value {
	switch v := v.(type) {
	case Vector:
		return append(Vector(nil), v...)
	case IntArray:
		return append(IntArray(nil), v...)
	case FloatArray:
		return append(FloatArray(nil), v...)
	}
	return v
}
