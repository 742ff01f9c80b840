package bindings

import (
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/shader"
)

// Role names what a bound key does to its parameter.
type Role string

const (
	RoleIncrement Role = "increment"
	RoleDecrement Role = "decrement"
	RoleToggle    Role = "toggle"
	RoleShuffle   Role = "shuffle"
)

// roleOrder is the order roles are listed in help text.
var roleOrder = []Role{RoleIncrement, RoleDecrement, RoleToggle, RoleShuffle}

// Descriptor is the persisted state of one tweakable uniform.
type Descriptor struct {
	Type    shader.Kind
	Default Value
	// Step is Int or Float for incrementable kinds and nil otherwise.
	Step     Value
	Controls map[Role]inputs.Key
	// Loop is the repeat period of a linear or permuted array.
	Loop int
	// Seed is set for permuted arrays.
	Seed *int64
}

// Clone returns a deep copy of d.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.Default = cloneValue(d.Default)
	c.Controls = maps.Clone(d.Controls)
	if d.Seed != nil {
		seed := *d.Seed
		c.Seed = &seed
	}
	return &c
}

// RoleOf returns the role k plays in d.
func (d *Descriptor) RoleOf(k inputs.Key) (Role, bool) {
	for role, key := range d.Controls {
		if key == k {
			return role, true
		}
	}
	return "", false
}

// descriptorDoc is the YAML shape of a Descriptor.
type descriptorDoc struct {
	Type     shader.Kind         `yaml:"type"`
	Default  any                 `yaml:"default"`
	Step     any                 `yaml:"step,omitempty"`
	Controls map[Role]inputs.Key `yaml:"controls,omitempty"`
	Loop     int                 `yaml:"loop,omitempty"`
	Seed     *int64              `yaml:"seed,omitempty"`
}

// descriptorNodes defers decoding of the values until the type is known.
type descriptorNodes struct {
	Type     shader.Kind         `yaml:"type"`
	Default  yaml.Node           `yaml:"default"`
	Step     yaml.Node           `yaml:"step"`
	Controls map[Role]inputs.Key `yaml:"controls"`
	Loop     int                 `yaml:"loop"`
	Seed     *int64              `yaml:"seed"`
}

func (d *Descriptor) MarshalYAML() (any, error) {
	doc := descriptorDoc{
		Type:     d.Type,
		Default:  plain(d.Default),
		Controls: d.Controls,
		Loop:     d.Loop,
		Seed:     d.Seed,
	}
	if d.Step != nil {
		doc.Step = plain(d.Step)
	}
	return doc, nil
}

func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var doc descriptorNodes
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if doc.Default.Kind == 0 {
		return fmt.Errorf("line %d: missing default", node.Line)
	}
	def, err := decodeValue(doc.Type, &doc.Default)
	if err != nil {
		return fmt.Errorf("line %d: default: %w", node.Line, err)
	}
	*d = Descriptor{
		Type:     doc.Type,
		Default:  def,
		Controls: doc.Controls,
		Loop:     doc.Loop,
		Seed:     doc.Seed,
	}
	if doc.Step.Kind != 0 {
		if d.Step, err = decodeStep(doc.Type, &doc.Step); err != nil {
			return fmt.Errorf("line %d: step: %w", node.Line, err)
		}
	}
	if d.Controls == nil {
		d.Controls = map[Role]inputs.Key{}
	}
	return nil
}

// plain converts a Value to the builtin type yaml.v3 encodes natively.
func plain(v Value) any {
	switch v := v.(type) {
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case Bool:
		return bool(v)
	case Vector:
		return []float64(v)
	case IntArray:
		return []int64(v)
	case FloatArray:
		return []float64(v)
	}
	return nil
}

func decodeValue(kind shader.Kind, n *yaml.Node) (Value, error) {
	switch kind {
	case shader.KindInt:
		var v int64
		err := n.Decode(&v)
		return Int(v), err
	case shader.KindFloat:
		var v float64
		err := n.Decode(&v)
		return Float(v), err
	case shader.KindBool:
		var v bool
		err := n.Decode(&v)
		return Bool(v), err
	case shader.KindVec2, shader.KindVec3, shader.KindVec4:
		var v []float64
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		if len(v) != kind.Arity() {
			return nil, fmt.Errorf("%s needs %d components, got %d", kind, kind.Arity(), len(v))
		}
		return Vector(v), nil
	case shader.KindIntArray:
		var v []int64
		err := n.Decode(&v)
		return IntArray(v), err
	case shader.KindFloatArray:
		var v []float64
		err := n.Decode(&v)
		return FloatArray(v), err
	case shader.KindBoolArray, shader.KindVec2Array, shader.KindVec3Array, shader.KindVec4Array:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, kind)
	}
	return nil, fmt.Errorf("invalid uniform kind %s", kind)
}

func decodeStep(kind shader.Kind, n *yaml.Node) (Value, error) {
	switch kind {
	case shader.KindInt, shader.KindFloat:
		return decodeValue(kind, n)
	}
	return nil, fmt.Errorf("%s does not take a step", kind)
}
