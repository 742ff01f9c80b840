package bindings

import (
	"errors"
	"fmt"
	"log"

	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/shader"
)

// ErrNotImplemented is returned for uniform kinds that are recognised but
// cannot be tweaked: bool and vector arrays.
var ErrNotImplemented = errors.New("not implemented")

// newDescriptor builds a fresh descriptor for decl, claiming keys through
// alloc.
func newDescriptor(decl shader.Declaration, alloc *Allocator) (*Descriptor, error) {
	d := &Descriptor{
		Type:     decl.Kind,
		Controls: make(map[Role]inputs.Key),
	}

	switch decl.Kind {
	case shader.KindInt:
		d.Default, d.Step = Int(0), Int(1)
		if decl.Default != "" {
			v, err := parseInt(decl.Default)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Name, err)
			}
			d.Default = v
		}
		if decl.Step != "" {
			v, err := parseInt(decl.Step)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Name, err)
			}
			d.Step = v
		}
		claim(alloc, decl.Name, d, RoleIncrement, RoleDecrement)

	case shader.KindFloat:
		d.Default, d.Step = Float(0), Float(1)
		if decl.Default != "" {
			v, err := parseFloat(decl.Default)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Name, err)
			}
			d.Default = v
		}
		if decl.Step != "" {
			v, err := parseFloat(decl.Step)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Name, err)
			}
			d.Step = v
		}
		claim(alloc, decl.Name, d, RoleIncrement, RoleDecrement)

	case shader.KindBool:
		// Any initializer token counts as true, including "false".
		d.Default = Bool(decl.Default != "")
		claim(alloc, decl.Name, d, RoleToggle)

	case shader.KindVec2, shader.KindVec3, shader.KindVec4:
		// Vectors are pushed to the shader but have no controls yet.
		d.Default = make(Vector, decl.Kind.Arity())

	case shader.KindIntArray, shader.KindFloatArray:
		d.Default = sequence(decl.Kind, decl.Size)
		claim(alloc, decl.Name, d, RoleShuffle)
		period := min(decl.Generator.Period, decl.Size)
		switch decl.Generator.Mode {
		case shader.GenerateLinear:
			d.Loop = period
			d.Default = tile(d.Default, period)
		case shader.GeneratePermutation:
			d.Loop = period
			seed := int64(1)
			if decl.Generator.Seed != nil {
				seed = *decl.Generator.Seed
			}
			d.Seed = &seed
			if err := Reshuffle(d); err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Name, err)
			}
		case shader.GenerateNone:
		}

	case shader.KindBoolArray, shader.KindVec2Array, shader.KindVec3Array, shader.KindVec4Array:
		return nil, fmt.Errorf("%s (line %d): %w: %s uniforms", decl.Name, decl.Line, ErrNotImplemented, decl.Kind)

	default:
		return nil, fmt.Errorf("%s: invalid uniform kind %s", decl.Name, decl.Kind)
	}

	return d, nil
}

// claim allocates each role in turn. Running out of keys leaves the role
// unbound; the parameter still reaches the shader with its default.
func claim(alloc *Allocator, name string, d *Descriptor, roles ...Role) {
	for _, role := range roles {
		if _, ok := alloc.Allocate(d, role); !ok {
			log.Printf("Warning: no free key left for %s of %s, leaving it unbound.", role, name)
		}
	}
}

// tile rewrites an index sequence so element i holds i mod period.
func tile(v Value, period int) Value {
	switch v := v.(type) {
	case IntArray:
		for i := range v {
			v[i] = int64(i % period)
		}
	case FloatArray:
		for i := range v {
			v[i] = float64(i % period)
		}
	}
	return v
}
